package materialize

import (
	"fmt"
	"os"
	"path/filepath"

	"book-sorter/internal/manifest"
)

// ResetDir prepares the output directory. A missing directory is created,
// an existing non-empty one is refused unless force is set, in which case
// it is cleared first.
func ResetDir(path string, force bool) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return os.MkdirAll(path, 0o755)
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s exists and is not a directory", path)
	}
	if force {
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("failed to clear %s: %w", path, err)
		}
		return os.MkdirAll(path, 0o755)
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("output directory %s is not empty (use -force to overwrite)", path)
	}
	return nil
}

// WriteAll materializes every spec as a zero-byte file in dir.
// Pre-existing files are truncated. Fails fast on the first error;
// files written before a failure remain on disk.
func WriteAll(dir string, specs manifest.Manifest) error {
	for _, spec := range specs {
		path := filepath.Join(dir, spec.Filename())
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		if err := file.Close(); err != nil {
			return fmt.Errorf("failed to close %s: %w", path, err)
		}
	}
	return nil
}

// CountFiles reports the number of regular files directly inside dir.
func CountFiles(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", dir, err)
	}
	count := 0
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			count++
		}
	}
	return count, nil
}
