package dedupe

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// Digest returns the hex BLAKE2b-256 digest of the file at path.
func Digest(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	hasher, err := blake2b.New256(nil)
	if err != nil {
		return "", fmt.Errorf("failed to initialize hasher: %w", err)
	}
	if _, err := io.Copy(hasher, file); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// Index tracks content digests seen during a run. Safe for concurrent use.
type Index struct {
	mu   sync.Mutex
	seen map[string]string
}

func NewIndex() *Index {
	return &Index{seen: make(map[string]string)}
}

// Record registers the digest and returns the path that first produced it,
// or the empty string when the content is new.
func (x *Index) Record(digest, path string) string {
	x.mu.Lock()
	defer x.mu.Unlock()
	if first, ok := x.seen[digest]; ok {
		return first
	}
	x.seen[digest] = path
	return ""
}

// Len reports the number of distinct digests recorded.
func (x *Index) Len() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return len(x.seen)
}
