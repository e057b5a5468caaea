package picker

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
)

// Fixed answers every request with the same folder and never prompts.
type Fixed struct {
	Folder string
}

func NewFixed(folder string) *Fixed {
	return &Fixed{Folder: strings.TrimSpace(folder)}
}

func (p *Fixed) PickFolder(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if p.Folder == "" {
		return "", errors.New("no default folder configured")
	}
	return p.Folder, nil
}

func (p *Fixed) PickSaveFile(ctx context.Context, suggestedName string, _ Filter) (string, error) {
	folder, err := p.PickFolder(ctx)
	if err != nil {
		return "", err
	}
	name := filepath.Base(strings.TrimSpace(suggestedName))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", errors.New("suggested file name is required")
	}
	return filepath.Join(folder, name), nil
}
