package match

import (
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	separatorRuns  = regexp.MustCompile(`[._\-]+`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// Normalize folds a file stem into the canonical matching form:
// dot/underscore/hyphen runs become single spaces, whitespace collapses,
// and the result is trimmed and lowercased.
func Normalize(name string) string {
	s := separatorRuns.ReplaceAllString(name, " ")
	s = whitespaceRuns.ReplaceAllString(s, " ")
	return strings.ToLower(strings.TrimSpace(s))
}

type altKind int

const (
	altToken altKind = iota
	altWildcard
	altRegex
)

type alternative struct {
	kind   altKind
	token  string
	tokens []string
	re     *regexp.Regexp
}

// Pattern is one include/exclude rule. The raw form may hold several
// alternatives separated by "|"; an alternative is a plain token, a
// "*"-joined token list that must all appear, or a "regex:"-prefixed
// regular expression.
type Pattern struct {
	Raw      string
	Priority int

	alternatives []alternative
}

const regexPrefix = "regex:"

// NewPattern compiles a raw rule. Invalid regex alternatives are logged
// at debug level and never match; they do not fail the load.
func NewPattern(raw string) Pattern {
	trimmed := strings.TrimSpace(raw)
	p := Pattern{Raw: trimmed}

	longest := 0
	for _, alt := range strings.Split(trimmed, "|") {
		alt = strings.TrimSpace(alt)
		if alt == "" {
			continue
		}
		if len(alt) > longest {
			longest = len(alt)
		}
		p.alternatives = append(p.alternatives, compileAlternative(alt))
	}

	// Priority ranks competing groups: the longest alternative wins ties,
	// falling back to the raw length for patterns with no alternatives.
	if len(p.alternatives) == 0 {
		p.Priority = len(trimmed)
	} else {
		p.Priority = longest
	}
	return p
}

func compileAlternative(alt string) alternative {
	if strings.HasPrefix(alt, regexPrefix) {
		expr := alt[len(regexPrefix):]
		re, err := regexp.Compile("(?i)" + expr)
		if err != nil {
			logrus.Debugf("invalid regex pattern: %s", expr)
			return alternative{kind: altRegex}
		}
		return alternative{kind: altRegex, re: re}
	}
	if strings.Contains(alt, "*") {
		var tokens []string
		for _, part := range strings.Split(alt, "*") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			tokens = append(tokens, Normalize(part))
		}
		return alternative{kind: altWildcard, tokens: tokens}
	}
	return alternative{kind: altToken, token: Normalize(alt)}
}

// Matches reports whether the normalized stem satisfies any alternative.
func (p Pattern) Matches(norm string) bool {
	for _, alt := range p.alternatives {
		switch alt.kind {
		case altRegex:
			if alt.re != nil && alt.re.MatchString(norm) {
				return true
			}
		case altWildcard:
			all := true
			for _, token := range alt.tokens {
				if !strings.Contains(norm, token) {
					all = false
					break
				}
			}
			if all {
				return true
			}
		case altToken:
			if strings.Contains(norm, alt.token) {
				return true
			}
		}
	}
	return false
}
