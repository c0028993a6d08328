// Package emoji renders a member's status-emoji token to HTML, preferring
// the workspace's custom emoji and falling back to the standard Unicode set.
package emoji

import (
	"strings"
	"sync"

	"github.com/kyokomi/emoji/v2"
)

var (
	standard     map[string]string
	standardOnce sync.Once
)

// standardTable maps Slack-style shortcodes (without colons) to Unicode
// characters, built once from the kyokomi code map.
func standardTable() map[string]string {
	standardOnce.Do(func() {
		codeMap := emoji.CodeMap()
		standard = make(map[string]string, len(codeMap))
		for code, char := range codeMap {
			name := strings.TrimSuffix(strings.TrimPrefix(code, ":"), ":")
			if !isShortcode(name) {
				continue
			}
			standard[name] = char
		}
	})
	return standard
}

func isShortcode(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-' || r == '+':
		default:
			return false
		}
	}
	return true
}
