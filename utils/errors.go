package utils

import "fmt"

// WrapReadError returns a wrapped read error
func WrapReadError(err error) error {
	return fmt.Errorf("read error: %w", err)
}

// WrapWriteError returns a wrapped write error
func WrapWriteError(err error) error {
	return fmt.Errorf("write error: %w", err)
}

// WrapSeekError returns a wrapped seek error
func WrapSeekError(err error) error {
	return fmt.Errorf("seek error: %w", err)
}

// WrapCloseError returns a wrapped close error
func WrapCloseError(err error) error {
	return fmt.Errorf("close error: %w", err)
}

// WrapExistsError returns a wrapped exists error
func WrapExistsError(err error) error {
	return fmt.Errorf("exists error: %w", err)
}

// WrapOpenError returns a wrapped open error
func WrapOpenError(err error) error {
	return fmt.Errorf("open error: %w", err)
}

// WrapDeleteError returns a wrapped delete error
func WrapDeleteError(err error) error {
	return fmt.Errorf("delete error: %w", err)
}

// WrapRenameError returns a wrapped rename error
func WrapRenameError(err error) error {
	return fmt.Errorf("rename error: %w", err)
}

// WrapListError returns a wrapped list error
func WrapListError(err error) error {
	return fmt.Errorf("list error: %w", err)
}

// WrapCreateError returns a wrapped create error
func WrapCreateError(err error) error {
	return fmt.Errorf("create error: %w", err)
}
