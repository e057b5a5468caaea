package saver

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindPicker Kind = iota + 1
	KindCancelled
	KindFormat
	KindDecode
	KindDirectory
	KindWrite
)

func (k Kind) String() string {
	switch k {
	case KindPicker:
		return "picker"
	case KindCancelled:
		return "cancelled"
	case KindFormat:
		return "format"
	case KindDecode:
		return "decode"
	case KindDirectory:
		return "directory"
	case KindWrite:
		return "write"
	default:
		return "unknown"
	}
}

// Error is a failed save. Error() is the text shown to the user.
type Error struct {
	Kind     Kind
	Filename string
	Path     string
	Err      error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindCancelled:
		return "Folder selection cancelled by user"
	case KindFormat:
		return "Invalid image data format"
	case KindDecode:
		return "Failed to decode image: " + cause(e.Err)
	case KindDirectory:
		return "Failed to create folders: " + cause(e.Err)
	case KindWrite:
		return "Failed to write file: " + cause(e.Err)
	case KindPicker:
		return "Folder selection failed: " + cause(e.Err)
	default:
		return fmt.Sprintf("Failed to save image: %s", cause(e.Err))
	}
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the Kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var sErr *Error
	if errors.As(err, &sErr) {
		return sErr.Kind
	}
	return 0
}

func cause(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
