package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Python_Crash_Course", "python crash course"},
		{"PHP.and.MySQL---Web", "php and mysql web"},
		{"  Spaced   Out  ", "spaced out"},
		{"already lower", "already lower"},
		{"Mixed_Sep-Styles.Here", "mixed sep styles here"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Normalize(tc.in), "Normalize(%q)", tc.in)
	}
}

func TestPatternTokenMatch(t *testing.T) {
	p := NewPattern("Python")
	assert.True(t, p.Matches(Normalize("Python_Crash_Course")))
	assert.True(t, p.Matches(Normalize("learning-python-3")))
	assert.False(t, p.Matches(Normalize("Rust_in_Action")))
}

func TestPatternAlternatives(t *testing.T) {
	p := NewPattern("JavaScript | JS")
	assert.True(t, p.Matches(Normalize("Modern_JavaScript")))
	assert.True(t, p.Matches(Normalize("js for impatient readers")))
	assert.False(t, p.Matches(Normalize("Java_Concurrency")))
}

func TestPatternWildcardRequiresAllTokens(t *testing.T) {
	p := NewPattern("PHP*MySQL")
	assert.True(t, p.Matches(Normalize("PHP_and_MySQL_Web_Development")))
	assert.False(t, p.Matches(Normalize("PHP_Cookbook")))
	assert.False(t, p.Matches(Normalize("MySQL_Reference")))
}

func TestPatternRegex(t *testing.T) {
	p := NewPattern(`regex:C\+\+`)
	assert.True(t, p.Matches(Normalize("C++ Primer")))
	assert.False(t, p.Matches(Normalize("C_programming_Language")))
}

func TestPatternInvalidRegexNeverMatches(t *testing.T) {
	p := NewPattern("regex:[unclosed")
	assert.False(t, p.Matches("anything at all"))
}

func TestPatternPriorityIsLongestAlternative(t *testing.T) {
	assert.Equal(t, len("JavaScript"), NewPattern("JavaScript | JS").Priority)
	assert.Equal(t, len("Go"), NewPattern("Go").Priority)
}
