package shaders

import "fmt"

// CompileError is returned when a shader stage cannot be read or compiled.
// Err is set for read failures, Log for compiler diagnostics.
type CompileError struct {
	Path  string
	Stage string
	Log   string
	Err   error
}

func (e *CompileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to read %s shader %q: %v", e.Stage, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to compile %s shader %q: %s", e.Stage, e.Path, e.Log)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}
