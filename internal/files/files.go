package files

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	ErrInvalidPath = errors.New("invalid path")
	ErrInvalidName = errors.New("invalid file name")
)

// ResolveFolder joins an optional relative subdir onto base. The result must
// stay inside base.
func ResolveFolder(base, subdir string) (string, error) {
	base = strings.TrimSpace(base)
	if base == "" {
		return "", ErrInvalidPath
	}
	base = filepath.Clean(base)

	if subdir == "" {
		return base, nil
	}

	rel := filepath.Clean(filepath.FromSlash(subdir))
	if filepath.IsAbs(rel) || filepath.VolumeName(rel) != "" {
		return "", ErrInvalidPath
	}

	full := filepath.Join(base, rel)
	if !isWithinBase(base, full) {
		return "", ErrInvalidPath
	}
	return full, nil
}

// FilePath builds <folder>/<name><ext>. name must be a single path element.
func FilePath(folder, name, ext string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrInvalidName
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return "", ErrInvalidName
	}
	return filepath.Join(folder, name+ext), nil
}

func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// WriteAtomic writes data to a temp file next to path and renames it into
// place, so path never holds a partial write.
func WriteAtomic(path string, data []byte) error {
	return WriteAtomicPerm(path, data, 0o644)
}

// WriteAtomicPerm is WriteAtomic with an explicit file mode. The temp name
// has a fixed short stem so a target name near the filesystem limit still
// fits.
func WriteAtomicPerm(path string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), tempPattern)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	_ = tmp.Chmod(perm)
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

const tempPattern = ".imgsave-*.tmp"

func isWithinBase(base, target string) bool {
	base = normalizeForCompare(base)
	target = normalizeForCompare(target)

	rel, err := filepath.Rel(base, target)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	if strings.HasPrefix(rel, ".."+string(os.PathSeparator)) || rel == ".." {
		return false
	}
	return true
}

func normalizeForCompare(path string) string {
	cleaned := filepath.Clean(path)
	if runtime.GOOS == "windows" {
		return strings.ToLower(cleaned)
	}
	return cleaned
}
