package emoji

import (
	"context"
	"fmt"
	"html"
	"html/template"
	"strings"
)

// Lookup resolves a custom emoji shortname to its image URL.
type Lookup interface {
	Lookup(ctx context.Context, name string) (string, bool)
}

// hiddenPlaceholder keeps a stable substitution target in the page when the
// member has no status emoji.
const hiddenPlaceholder = `<span id="statusEmoji" style="display: none;"></span>`

// RenderStatus converts a :shortcode: status token into displayable markup.
// Resolution order: custom workspace emoji, then the standard Unicode set,
// then the raw token verbatim. An empty token yields a hidden placeholder.
func RenderStatus(ctx context.Context, token string, custom Lookup) template.HTML {
	if token == "" {
		return template.HTML(hiddenPlaceholder)
	}

	name := strings.ReplaceAll(token, ":", "")

	if url, ok := custom.Lookup(ctx, name); ok {
		img := fmt.Sprintf(`<img src="%s" style="width: 1em; height: 1em;" alt="%s">`,
			html.EscapeString(url), html.EscapeString(token))
		return template.HTML(img)
	}

	if char, ok := standardTable()[name]; ok {
		return template.HTML(char)
	}

	return template.HTML(html.EscapeString(token))
}
