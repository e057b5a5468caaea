// Package picker asks the user where images should be written.
//
// Dialogs block until the user answers and have no timeout. Every
// implementation runs the dialog on a goroutine of its own so the caller
// only waits on a channel and can stop waiting when its context is done.
// Dialog-backed implementations live in the native and fynepicker
// subpackages so this package stays free of cgo.
package picker

import (
	"context"
	"errors"
)

// ErrCancelled is returned when the dialog is closed without a selection.
var ErrCancelled = errors.New("selection cancelled by user")

type Filter struct {
	Description string
	// Extensions without the leading dot, e.g. "jpg".
	Extensions []string
}

var JPEGFilter = Filter{Description: "JPEG image", Extensions: []string{"jpg", "jpeg"}}

type Picker interface {
	PickFolder(ctx context.Context) (string, error)
	PickSaveFile(ctx context.Context, suggestedName string, filter Filter) (string, error)
}

// Func adapts plain functions to Picker. A nil function reports ErrCancelled.
type Func struct {
	Folder   func(ctx context.Context) (string, error)
	SaveFile func(ctx context.Context, suggestedName string, filter Filter) (string, error)
}

func (f Func) PickFolder(ctx context.Context) (string, error) {
	if f.Folder == nil {
		return "", ErrCancelled
	}
	return f.Folder(ctx)
}

func (f Func) PickSaveFile(ctx context.Context, suggestedName string, filter Filter) (string, error) {
	if f.SaveFile == nil {
		return "", ErrCancelled
	}
	return f.SaveFile(ctx, suggestedName, filter)
}

type result struct {
	path string
	err  error
}

// Await starts show and waits for it to call done. show must call done
// exactly once. An empty path with no error counts as a cancellation.
func Await(ctx context.Context, show func(done func(path string, err error))) (string, error) {
	ch := make(chan result, 1)
	go show(func(path string, err error) {
		ch <- result{path: path, err: err}
	})

	select {
	case res := <-ch:
		if res.err == nil && res.path == "" {
			return "", ErrCancelled
		}
		return res.path, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// RunBlocking runs a synchronous dialog call through Await.
func RunBlocking(ctx context.Context, fn func() (string, error)) (string, error) {
	return Await(ctx, func(done func(string, error)) {
		done(fn())
	})
}
