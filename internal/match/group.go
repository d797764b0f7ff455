package match

import (
	"path/filepath"
	"sort"
	"strings"
)

// Group is one node of the rules tree. Groups with include patterns can
// claim files; groups without are containers for their subgroups.
type Group struct {
	Name      string
	Parent    *Group
	Subgroups []*Group
	Include   []Pattern
	Exclude   []Pattern
}

// AddSubgroup attaches sub beneath g.
func (g *Group) AddSubgroup(sub *Group) {
	sub.Parent = g
	g.Subgroups = append(g.Subgroups, sub)
}

// FullName is the group's destination path relative to the sorted root.
func (g *Group) FullName() string {
	if g.Parent == nil {
		return g.Name
	}
	return filepath.Join(g.Parent.FullName(), g.Name)
}

// MaxPriority is the strongest include-pattern priority, used to rank
// competing matches.
func (g *Group) MaxPriority() int {
	best := 0
	for _, p := range g.Include {
		if p.Priority > best {
			best = p.Priority
		}
	}
	return best
}

// matchesName reports whether the normalized stem passes this group's
// include and exclude patterns. Container groups never match directly.
func (g *Group) matchesName(norm string) bool {
	if len(g.Include) == 0 {
		return false
	}
	included := false
	for _, p := range g.Include {
		if p.Matches(norm) {
			included = true
			break
		}
	}
	if !included {
		return false
	}
	for _, p := range g.Exclude {
		if p.Matches(norm) {
			return false
		}
	}
	return true
}

// matchStem collects the deepest matching groups: subgroups are consulted
// first, and the group itself only matches when no descendant claimed the
// stem.
func (g *Group) matchStem(norm string) []*Group {
	var matches []*Group
	for _, sub := range g.Subgroups {
		matches = append(matches, sub.matchStem(norm)...)
	}
	if len(matches) == 0 && g.matchesName(norm) {
		matches = append(matches, g)
	}
	return matches
}

// MatchFile returns the deepest groups under g that claim the file's stem.
func (g *Group) MatchFile(path string) []*Group {
	return g.matchStem(normalizeStem(path))
}

// MatchAll collects matches across every top-level group and orders them
// by descending include priority. The first entry is the primary
// destination; the rest receive secondary links.
func MatchAll(groups []*Group, path string) []*Group {
	norm := normalizeStem(path)
	var matches []*Group
	for _, g := range groups {
		matches = append(matches, g.matchStem(norm)...)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MaxPriority() > matches[j].MaxPriority()
	})
	return matches
}

func normalizeStem(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return Normalize(stem)
}
