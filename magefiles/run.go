//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Run mg.Namespace

// Validates the shaders and starts the clock.
func (Run) Clock() error {
	mg.Deps(Build.Shaders)
	return sh.RunV("go", "run", "./cmd/clock")
}
