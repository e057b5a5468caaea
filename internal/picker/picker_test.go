package picker

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func TestFixed(t *testing.T) {
	dir := t.TempDir()
	p := NewFixed(" " + dir + " ")

	got, err := p.PickFolder(context.Background())
	if err != nil || got != dir {
		t.Fatalf("expected %s, got %q %v", dir, got, err)
	}

	got, err = p.PickSaveFile(context.Background(), "photo1.jpg", JPEGFilter)
	if err != nil {
		t.Fatalf("pick save file: %v", err)
	}
	if got != filepath.Join(dir, "photo1.jpg") {
		t.Fatalf("unexpected save path %s", got)
	}

	if _, err := NewFixed("").PickFolder(context.Background()); err == nil {
		t.Fatalf("expected error without folder")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.PickFolder(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestFuncNilIsCancelled(t *testing.T) {
	var p Func
	if _, err := p.PickFolder(context.Background()); !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
	if _, err := p.PickSaveFile(context.Background(), "a.jpg", JPEGFilter); !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
}

func TestRunBlocking(t *testing.T) {
	got, err := RunBlocking(context.Background(), func() (string, error) {
		return "/tmp/out", nil
	})
	if err != nil || got != "/tmp/out" {
		t.Fatalf("unexpected result %q %v", got, err)
	}

	if _, err := RunBlocking(context.Background(), func() (string, error) {
		return "", nil
	}); !errors.Is(err, ErrCancelled) {
		t.Fatalf("empty selection should be cancelled, got %v", err)
	}
}

func TestAwaitStopsWaitingOnContext(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := RunBlocking(ctx, func() (string, error) {
		<-release
		return "/late", nil
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
