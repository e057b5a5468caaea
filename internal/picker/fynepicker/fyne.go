// Package fynepicker shows fyne file dialogs as a picker.Picker.
package fynepicker

import (
	"context"
	"strings"

	"image-saver/internal/picker"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// Picker shows fyne file dialogs on top of win. Dialogs are created on the
// fyne UI goroutine; callers wait on their own goroutine.
type Picker struct {
	win      fyne.Window
	startDir string
}

func New(win fyne.Window, startDir string) *Picker {
	return &Picker{win: win, startDir: strings.TrimSpace(startDir)}
}

func (p *Picker) PickFolder(ctx context.Context) (string, error) {
	return picker.Await(ctx, func(done func(string, error)) {
		fyne.Do(func() {
			d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
				if err != nil {
					done("", err)
					return
				}
				if uri == nil {
					done("", picker.ErrCancelled)
					return
				}
				done(uri.Path(), nil)
			}, p.win)
			p.setLocation(d)
			d.Show()
		})
	})
}

func (p *Picker) PickSaveFile(ctx context.Context, suggestedName string, filter picker.Filter) (string, error) {
	return picker.Await(ctx, func(done func(string, error)) {
		fyne.Do(func() {
			d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
				if err != nil {
					done("", err)
					return
				}
				if w == nil {
					done("", picker.ErrCancelled)
					return
				}
				path := w.URI().Path()
				_ = w.Close()
				done(path, nil)
			}, p.win)
			if suggestedName != "" {
				d.SetFileName(suggestedName)
			}
			if exts := dotted(filter.Extensions); len(exts) > 0 {
				d.SetFilter(storage.NewExtensionFileFilter(exts))
			}
			p.setLocation(d)
			d.Show()
		})
	})
}

func (p *Picker) setLocation(d *dialog.FileDialog) {
	if p.startDir == "" {
		return
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(p.startDir))
	if err != nil {
		return
	}
	d.SetLocation(lister)
}

func dotted(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}
