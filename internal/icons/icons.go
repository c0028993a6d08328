// Package icons maps free-text language names to devicon image URLs.
package icons

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	iconURLTemplate = "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/%s/%s-original.svg"

	// FallbackURL is returned for languages without a known devicon slug.
	FallbackURL = "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/devicon/devicon-original.svg"
)

var aliases = map[string]string{
	"js":         "javascript",
	"javascript": "javascript",
	"ts":         "typescript",
	"typescript": "typescript",
	"py":         "python",
	"python":     "python",
	"go":         "go",
	"golang":     "go",
	"rb":         "ruby",
	"ruby":       "ruby",
	"rs":         "rust",
	"rust":       "rust",
	"c":          "c",
	"cpp":        "cplusplus",
	"c++":        "cplusplus",
	"cs":         "csharp",
	"c#":         "csharp",
	"java":       "java",
	"kt":         "kotlin",
	"kotlin":     "kotlin",
	"swift":      "swift",
	"php":        "php",
	"sh":         "bash",
	"shell":      "bash",
	"bash":       "bash",
	"html":       "html5",
	"css":        "css3",
	"lua":        "lua",
	"dart":       "dart",
	"elixir":     "elixir",
	"haskell":    "haskell",
	"zig":        "zig",
	"nix":        "nixos",
	"vue":        "vuejs",
	"svelte":     "svelte",
}

// Resolve maps a free-text language name to an icon URL. Matching is
// case-insensitive and ignores whitespace; unknown names get FallbackURL.
func Resolve(name string) string {
	slug, ok := aliases[normalize(name)]
	if !ok {
		return FallbackURL
	}
	return fmt.Sprintf(iconURLTemplate, slug, slug)
}

func normalize(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
