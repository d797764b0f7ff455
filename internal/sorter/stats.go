package sorter

import "sync/atomic"

// Stats aggregates counters across workers.
type Stats struct {
	scanned    int64
	matched    int64
	copied     int64
	linked     int64
	duplicates int64
	skipped    int64
	failed     int64
	totalBytes int64
}

func (s *Stats) addScanned()          { atomic.AddInt64(&s.scanned, 1) }
func (s *Stats) addMatched()          { atomic.AddInt64(&s.matched, 1) }
func (s *Stats) addCopied()           { atomic.AddInt64(&s.copied, 1) }
func (s *Stats) addLinked()           { atomic.AddInt64(&s.linked, 1) }
func (s *Stats) addDuplicate()        { atomic.AddInt64(&s.duplicates, 1) }
func (s *Stats) addSkipped()          { atomic.AddInt64(&s.skipped, 1) }
func (s *Stats) addFailed()           { atomic.AddInt64(&s.failed, 1) }
func (s *Stats) addBytes(bytes int64) { atomic.AddInt64(&s.totalBytes, bytes) }

// Totals is a point-in-time snapshot of the counters.
type Totals struct {
	Scanned    int64
	Matched    int64
	Copied     int64
	Linked     int64
	Duplicates int64
	Skipped    int64
	Failed     int64
	Bytes      int64
}

func (s *Stats) Totals() Totals {
	return Totals{
		Scanned:    atomic.LoadInt64(&s.scanned),
		Matched:    atomic.LoadInt64(&s.matched),
		Copied:     atomic.LoadInt64(&s.copied),
		Linked:     atomic.LoadInt64(&s.linked),
		Duplicates: atomic.LoadInt64(&s.duplicates),
		Skipped:    atomic.LoadInt64(&s.skipped),
		Failed:     atomic.LoadInt64(&s.failed),
		Bytes:      atomic.LoadInt64(&s.totalBytes),
	}
}
