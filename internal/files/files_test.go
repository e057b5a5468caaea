package files

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestResolveFolder(t *testing.T) {
	base := t.TempDir()

	got, err := ResolveFolder(base, "")
	if err != nil || got != filepath.Clean(base) {
		t.Fatalf("expected base, got %q %v", got, err)
	}

	got, err = ResolveFolder(base, "set-a/front")
	if err != nil {
		t.Fatalf("expected nested subdir, got %v", err)
	}
	if got != filepath.Join(base, "set-a", "front") {
		t.Fatalf("unexpected folder %s", got)
	}

	got, err = ResolveFolder(base, "a/../b")
	if err != nil || got != filepath.Join(base, "b") {
		t.Fatalf("expected cleaned subdir, got %q %v", got, err)
	}

	if _, err := ResolveFolder(base, "../outside"); !errors.Is(err, ErrInvalidPath) {
		t.Fatalf("expected traversal error, got %v", err)
	}
	if _, err := ResolveFolder(base, filepath.Join(base, "abs")); !errors.Is(err, ErrInvalidPath) {
		t.Fatalf("expected absolute subdir error, got %v", err)
	}
	got, err = ResolveFolder(base, " ")
	if err != nil || got != filepath.Join(base, " ") {
		t.Fatalf("expected whitespace subdir kept as a folder name, got %q %v", got, err)
	}

	if _, err := ResolveFolder(" ", "x"); !errors.Is(err, ErrInvalidPath) {
		t.Fatalf("expected empty base error, got %v", err)
	}
}

func TestFilePath(t *testing.T) {
	dir := t.TempDir()

	got, err := FilePath(dir, "photo1", ".jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != filepath.Join(dir, "photo1.jpg") {
		t.Fatalf("unexpected path %s", got)
	}

	for _, name := range []string{"", "..", "a/b", `a\b`} {
		if _, err := FilePath(dir, name, ".jpg"); !errors.Is(err, ErrInvalidName) {
			t.Fatalf("%q: expected ErrInvalidName, got %v", name, err)
		}
	}
}

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "image.jpg")

	if err := WriteAtomic(target, []byte("first")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := WriteAtomic(target, []byte("second")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	b, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(b, []byte("second")) {
		t.Fatalf("unexpected contents %q", b)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("expected only the target file, got %d entries", len(entries))
	}

	if err := WriteAtomic(filepath.Join(dir, "missing", "x.jpg"), []byte("x")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestWriteAtomicLongName(t *testing.T) {
	dir := t.TempDir()

	// 245 + len(".jpg") is 249 bytes, just under the usual 255 byte limit.
	target, err := FilePath(dir, strings.Repeat("a", 245), ".jpg")
	if err != nil {
		t.Fatalf("file path: %v", err)
	}
	if err := WriteAtomic(target, []byte("jpeg")); err != nil {
		t.Fatalf("write long name: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != filepath.Base(target) {
		t.Fatalf("expected only the target file, got %v", entries)
	}
}

func TestWriteAtomicPerm(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not enforced on windows")
	}
	target := filepath.Join(t.TempDir(), "config.yaml")

	if err := WriteAtomicPerm(target, []byte("a: 1\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected mode 0600, got %v", info.Mode().Perm())
	}
}
