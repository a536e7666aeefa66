package bot

import (
	"regexp"
	"strings"
)

// triggerMatcher decides whether a group message addresses the bot and
// strips the addressing tokens before the text goes into a prompt.
type triggerMatcher struct {
	tokens        []string
	caseSensitive bool
	patterns      []*regexp.Regexp
}

func newTriggerMatcher(tokens []string, caseSensitive bool) *triggerMatcher {
	m := &triggerMatcher{caseSensitive: caseSensitive}
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		m.tokens = append(m.tokens, tok)
		if !caseSensitive {
			m.patterns = append(m.patterns, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(tok)))
		}
	}
	return m
}

// Match reports whether any token occurs in text as a substring.
func (m *triggerMatcher) Match(text string) bool {
	if m.caseSensitive {
		for _, tok := range m.tokens {
			if strings.Contains(text, tok) {
				return true
			}
		}
		return false
	}
	lower := strings.ToLower(text)
	for _, tok := range m.tokens {
		if strings.Contains(lower, strings.ToLower(tok)) {
			return true
		}
	}
	return false
}

// Strip removes every occurrence of every token and trims the result.
func (m *triggerMatcher) Strip(text string) string {
	if m.caseSensitive {
		for _, tok := range m.tokens {
			text = strings.ReplaceAll(text, tok, "")
		}
	} else {
		for _, re := range m.patterns {
			text = re.ReplaceAllString(text, "")
		}
	}
	return strings.TrimSpace(text)
}
