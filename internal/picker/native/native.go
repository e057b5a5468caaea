// Package native shows the operating system's own file dialogs.
package native

import (
	"context"
	"errors"

	"image-saver/internal/picker"

	"github.com/sqweek/dialog"
)

type Picker struct {
	Title    string
	StartDir string
}

func New(startDir string) *Picker {
	return &Picker{Title: "Choose where to save images", StartDir: startDir}
}

func (p *Picker) PickFolder(ctx context.Context) (string, error) {
	return picker.RunBlocking(ctx, func() (string, error) {
		b := dialog.Directory().Title(p.Title)
		if p.StartDir != "" {
			b = b.SetStartDir(p.StartDir)
		}
		return translate(b.Browse())
	})
}

func (p *Picker) PickSaveFile(ctx context.Context, suggestedName string, filter picker.Filter) (string, error) {
	return picker.RunBlocking(ctx, func() (string, error) {
		b := dialog.File().Title(p.Title)
		if len(filter.Extensions) > 0 {
			b = b.Filter(filter.Description, filter.Extensions...)
		}
		if p.StartDir != "" {
			b = b.SetStartDir(p.StartDir)
		}
		if suggestedName != "" {
			b = b.SetStartFile(suggestedName)
		}
		return translate(b.Save())
	})
}

func translate(path string, err error) (string, error) {
	if errors.Is(err, dialog.ErrCancelled) {
		return "", picker.ErrCancelled
	}
	return path, err
}
