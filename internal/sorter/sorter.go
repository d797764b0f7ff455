package sorter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"

	"book-sorter/internal/catalog"
	"book-sorter/internal/dedupe"
	"book-sorter/internal/match"
)

// Options control one sorting pass.
type Options struct {
	SourceDir    string
	DestDir      string
	Groups       []*match.Group
	Workers      int
	Move         bool
	DryRun       bool
	Dedupe       bool
	IncludeGlobs []string
	ExcludeGlobs []string
	MinSize      int64
	MaxSize      int64
	Logger       *logrus.Logger
	Catalog      *catalog.Catalog
}

// Sorter places library files into the grouped destination tree. Each
// file's primary group receives a copy; secondary groups receive
// hardlinks (or copies when linking fails).
type Sorter struct {
	opts  Options
	log   *logrus.Logger
	stats Stats
	index *dedupe.Index

	mu        sync.Mutex
	moveQueue []string
}

func New(opts Options) *Sorter {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	s := &Sorter{opts: opts, log: opts.Logger}
	if opts.Dedupe {
		s.index = dedupe.NewIndex()
	}
	return s
}

// Run walks the source tree and processes every matching file. With Move
// set, source files are deleted after the whole pass; per-file delete
// failures are logged but do not abort.
func (s *Sorter) Run() (Totals, error) {
	paths := make(chan string, s.opts.Workers*2)
	var wg sync.WaitGroup
	for i := 0; i < s.opts.Workers; i++ {
		wg.Add(1)
		go s.worker(paths, &wg)
	}

	walkErr := filepath.Walk(s.opts.SourceDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			s.log.WithError(err).Warnf("skipping unreadable path %s", path)
			return nil
		}
		if info.IsDir() || !info.Mode().IsRegular() {
			return nil
		}
		if isJunk(info.Name()) || !s.withinSizeBounds(info.Size()) {
			s.stats.addSkipped()
			return nil
		}
		ok, err := s.passesGlobs(path)
		if err != nil {
			return err
		}
		if !ok {
			s.stats.addSkipped()
			return nil
		}
		s.stats.addScanned()
		paths <- path
		return nil
	})
	close(paths)
	wg.Wait()

	if walkErr != nil {
		return s.stats.Totals(), fmt.Errorf("failed to walk %s: %w", s.opts.SourceDir, walkErr)
	}

	if s.opts.Move {
		s.deleteMoved()
	}
	return s.stats.Totals(), nil
}

func (s *Sorter) withinSizeBounds(size int64) bool {
	if size < s.opts.MinSize {
		return false
	}
	if s.opts.MaxSize > 0 && size > s.opts.MaxSize {
		return false
	}
	return true
}

func (s *Sorter) passesGlobs(path string) (bool, error) {
	rel, err := filepath.Rel(s.opts.SourceDir, path)
	if err != nil {
		return false, err
	}
	rel = filepath.ToSlash(rel)

	if len(s.opts.IncludeGlobs) > 0 {
		included := false
		for _, glob := range s.opts.IncludeGlobs {
			ok, err := doublestar.Match(glob, rel)
			if err != nil {
				return false, fmt.Errorf("invalid include glob %q: %w", glob, err)
			}
			if ok {
				included = true
				break
			}
		}
		if !included {
			return false, nil
		}
	}
	for _, glob := range s.opts.ExcludeGlobs {
		ok, err := doublestar.Match(glob, rel)
		if err != nil {
			return false, fmt.Errorf("invalid exclude glob %q: %w", glob, err)
		}
		if ok {
			return false, nil
		}
	}
	return true, nil
}

func (s *Sorter) worker(paths <-chan string, wg *sync.WaitGroup) {
	defer wg.Done()
	for path := range paths {
		if err := s.process(path); err != nil {
			s.stats.addFailed()
			s.log.WithError(err).Errorf("failed to sort %s", path)
		}
	}
}

func (s *Sorter) process(path string) error {
	matches := match.MatchAll(s.opts.Groups, path)
	if len(matches) == 0 {
		s.log.Debugf("no group claims %s", filepath.Base(path))
		return nil
	}
	s.stats.addMatched()

	var digest string
	if s.index != nil {
		var err error
		digest, err = dedupe.Digest(path)
		if err != nil {
			return err
		}
		if first := s.index.Record(digest, path); first != "" {
			s.stats.addDuplicate()
			s.log.Infof("duplicate content: %s already sorted from %s", path, first)
			return nil
		}
	}

	base := filepath.Base(path)
	primary := matches[0]
	primaryDest := filepath.Join(s.opts.DestDir, primary.FullName(), base)
	size, err := s.copyPrimary(path, primaryDest)
	if err != nil {
		return err
	}
	s.stats.addCopied()
	s.stats.addBytes(size)

	for _, g := range matches[1:] {
		linkDest := filepath.Join(s.opts.DestDir, g.FullName(), base)
		if err := s.linkSecondary(primaryDest, linkDest); err != nil {
			return err
		}
	}

	if s.opts.Catalog != nil && !s.opts.DryRun {
		entry := catalog.Entry{
			SourcePath: path,
			DestPath:   primaryDest,
			Group:      primary.FullName(),
			Digest:     digest,
			Size:       size,
			SortedAt:   time.Now(),
		}
		if err := s.opts.Catalog.Record(entry); err != nil {
			s.log.WithError(err).Warnf("failed to catalog %s", primaryDest)
		}
	}

	if s.opts.Move {
		s.mu.Lock()
		s.moveQueue = append(s.moveQueue, path)
		s.mu.Unlock()
	}
	return nil
}

func (s *Sorter) copyPrimary(src, dest string) (int64, error) {
	if s.opts.DryRun {
		s.log.Infof("[dry-run] copy %s -> %s", src, dest)
		info, err := os.Stat(src)
		if err != nil {
			return 0, fmt.Errorf("failed to stat %s: %w", src, err)
		}
		return info.Size(), nil
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", filepath.Dir(dest), err)
	}
	size, err := copyFile(src, dest)
	if err != nil {
		return 0, err
	}
	s.log.WithFields(logrus.Fields{"src": src, "dst": dest}).Debug("copied")
	return size, nil
}

func (s *Sorter) linkSecondary(primary, dest string) error {
	if s.opts.DryRun {
		s.log.Infof("[dry-run] link %s -> %s", primary, dest)
		s.stats.addLinked()
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(dest), err)
	}
	if _, err := os.Lstat(dest); err == nil {
		if err := os.Remove(dest); err != nil {
			return fmt.Errorf("failed to replace %s: %w", dest, err)
		}
	}
	if err := os.Link(primary, dest); err != nil {
		// Cross-device or unsupported filesystem: degrade to a copy.
		s.log.WithError(err).Warnf("hardlink failed, copying %s", dest)
		if _, err := copyFile(primary, dest); err != nil {
			return err
		}
	} else {
		s.log.Debugf("hardlink %s", dest)
	}
	s.stats.addLinked()
	return nil
}

func (s *Sorter) deleteMoved() {
	s.mu.Lock()
	queue := s.moveQueue
	s.mu.Unlock()

	for _, path := range queue {
		if s.opts.DryRun {
			s.log.Infof("[dry-run] delete %s", path)
			continue
		}
		if err := os.Remove(path); err != nil {
			s.log.WithError(err).Errorf("failed to delete %s", path)
			continue
		}
		s.log.Debugf("deleted %s", path)
	}
}

func copyFile(src, dest string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", dest, err)
	}
	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return 0, fmt.Errorf("failed to copy to %s: %w", dest, err)
	}
	if err := out.Close(); err != nil {
		return 0, fmt.Errorf("failed to close %s: %w", dest, err)
	}
	if info, err := os.Stat(src); err == nil {
		_ = os.Chtimes(dest, info.ModTime(), info.ModTime())
	}
	return n, nil
}
