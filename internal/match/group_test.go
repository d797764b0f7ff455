package match

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestTree() []*Group {
	it := &Group{Name: "IT"}
	programming := &Group{Name: "Programming"}
	it.AddSubgroup(programming)
	python := &Group{Name: "Python", Include: []Pattern{NewPattern("Python")}}
	programming.AddSubgroup(python)
	golang := &Group{Name: "Go", Include: []Pattern{NewPattern("GoLang | Go")}}
	programming.AddSubgroup(golang)

	systems := &Group{Name: "Systems"}
	it.AddSubgroup(systems)
	windows := &Group{
		Name:    "Windows",
		Include: []Pattern{NewPattern("Windows | WinServer")},
		Exclude: []Pattern{NewPattern("Office")},
	}
	systems.AddSubgroup(windows)

	kids := &Group{Name: "Kids", Include: []Pattern{NewPattern("Fairy_tales | Stories | kids")}}

	return []*Group{it, kids}
}

func TestContainerGroupNeverMatchesDirectly(t *testing.T) {
	groups := buildTestTree()
	matches := MatchAll(groups, "IT_Compendium.pdf")
	assert.Empty(t, matches)
}

func TestDeepestMatchWins(t *testing.T) {
	groups := buildTestTree()
	matches := MatchAll(groups, "Python_Crash_Course.pdf")
	require.Len(t, matches, 1)
	assert.Equal(t, filepath.Join("IT", "Programming", "Python"), matches[0].FullName())
}

func TestExcludePatternBlocksMatch(t *testing.T) {
	groups := buildTestTree()

	matches := MatchAll(groups, "Windows11_Setup.iso")
	require.Len(t, matches, 1)
	assert.Equal(t, "Windows", matches[0].Name)

	matches = MatchAll(groups, "Windows_Office_Bundle.zip")
	assert.Empty(t, matches)
}

func TestMatchAllOrdersByPriority(t *testing.T) {
	groups := buildTestTree()

	// Claimed by both Python (priority 6) and Kids via "kids" alternative.
	matches := MatchAll(groups, "Python_for_kids.pdf")
	require.Len(t, matches, 2)
	assert.Equal(t, "Kids", matches[0].Name, "longest include alternative should rank first")
	assert.Equal(t, "Python", matches[1].Name)
}

func TestMatchFileUsesStemOnly(t *testing.T) {
	groups := buildTestTree()
	matches := MatchAll(groups, filepath.Join("some", "dir", "GoLang_Patterns.epub"))
	require.Len(t, matches, 1)
	assert.Equal(t, "Go", matches[0].Name)
}
