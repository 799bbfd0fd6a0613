package workbook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// defaultFileMode is the mode of a newly created output file.
const defaultFileMode os.FileMode = 0644

// SupportedExtensions lists the file extensions excelize can read and write.
var SupportedExtensions = []string{".xlsx", ".xlsm", ".xltx", ".xltm"}

// IsSupported reports whether path has a supported workbook extension.
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range SupportedExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Save writes the workbook to path. The file is written next to path under a
// temporary name and renamed into place, so a failed save leaves any existing
// file at path untouched and no partial output behind. An existing file keeps
// its permissions; a new one gets defaultFileMode.
func (w *File) Save(path string) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	ext := filepath.Ext(base)

	tmp, err := os.CreateTemp(dir, "."+strings.TrimSuffix(base, ext)+".*"+ext)
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := w.f.SaveAs(tmpName); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	mode := defaultFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	w.path = path
	return nil
}
