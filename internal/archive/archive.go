package archive

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pierrec/lz4/v4"
)

// WriteSnapshot writes a .tar.lz4 archive of root's contents. Entry names
// are slash-separated paths relative to root.
func WriteSnapshot(path, root string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot %s: %w", path, err)
	}
	defer out.Close()

	lz := lz4.NewWriter(out)
	tw := tar.NewWriter(lz)

	walkErr := filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = filepath.ToSlash(rel)
		if info.IsDir() {
			hdr.Name += "/"
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if info.IsDir() || !info.Mode().IsRegular() {
			return nil
		}
		file, err := os.Open(p)
		if err != nil {
			return err
		}
		defer file.Close()
		_, err = io.Copy(tw, file)
		return err
	})
	if walkErr != nil {
		return fmt.Errorf("failed to archive %s: %w", root, walkErr)
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to finalize tar stream: %w", err)
	}
	if err := lz.Close(); err != nil {
		return fmt.Errorf("failed to finalize lz4 stream: %w", err)
	}
	return out.Sync()
}

// ListSnapshot returns the entry names stored in a snapshot.
func ListSnapshot(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot %s: %w", path, err)
	}
	defer file.Close()

	tr := tar.NewReader(lz4.NewReader(file))
	var names []string
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
		}
		names = append(names, hdr.Name)
	}
	return names, nil
}
