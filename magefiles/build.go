//go:build mage

package main

import (
	"os/exec"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Build mg.Namespace

// Builds bin/clock.
func (Build) Clock() error {
	return sh.RunV("go", "build", "-o", "bin/clock", "./cmd/clock")
}

// Validates the built-in GLSL sources with glslangValidator, if installed.
func (Build) Shaders() error {
	if _, err := exec.LookPath("glslangValidator"); err != nil {
		return nil
	}
	if err := sh.RunV("glslangValidator", "-S", "vert", "internal/shaders/vertex.glsl"); err != nil {
		return err
	}
	return sh.RunV("glslangValidator", "-S", "frag", "internal/shaders/fragment.glsl")
}
