package emoji

import (
	"context"
	"strings"
	"testing"

	kyokomi "github.com/kyokomi/emoji/v2"
)

type mapLookup map[string]string

func (m mapLookup) Lookup(ctx context.Context, name string) (string, bool) {
	url, ok := m[name]
	return url, ok
}

func TestRenderStatusCustomEmoji(t *testing.T) {
	custom := mapLookup{"partyparrot": "https://emoji.example.com/partyparrot.gif"}

	got := string(RenderStatus(context.Background(), ":partyparrot:", custom))
	if !strings.Contains(got, `<img src="https://emoji.example.com/partyparrot.gif"`) {
		t.Fatalf("expected img tag with cached URL, got %q", got)
	}
	if !strings.Contains(got, `alt=":partyparrot:"`) {
		t.Fatalf("expected alt with original token, got %q", got)
	}
}

func TestRenderStatusStandardEmoji(t *testing.T) {
	want, ok := kyokomi.CodeMap()[":smile:"]
	if !ok {
		t.Fatal("standard code map is missing :smile:")
	}

	got := string(RenderStatus(context.Background(), ":smile:", mapLookup{}))
	if got != want {
		t.Fatalf("expected unicode %q, got %q", want, got)
	}
}

func TestRenderStatusUnknownTokenVerbatim(t *testing.T) {
	got := string(RenderStatus(context.Background(), ":name_of_my_cats_left_whisker:", mapLookup{}))
	if got != ":name_of_my_cats_left_whisker:" {
		t.Fatalf("expected raw token, got %q", got)
	}
}

func TestRenderStatusEmptyTokenHiddenPlaceholder(t *testing.T) {
	got := string(RenderStatus(context.Background(), "", mapLookup{}))
	if !strings.Contains(got, `display: none`) {
		t.Fatalf("expected hidden placeholder, got %q", got)
	}
}

func TestRenderStatusCustomWinsOverStandard(t *testing.T) {
	custom := mapLookup{"smile": "https://emoji.example.com/smile.png"}

	got := string(RenderStatus(context.Background(), ":smile:", custom))
	if !strings.Contains(got, "emoji.example.com/smile.png") {
		t.Fatalf("expected custom emoji to win, got %q", got)
	}
}
