package hackatime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/userrate/userrate/internal/domain"
)

const statsPayload = `{
	"data": {
		"total_seconds": 7500,
		"human_readable_daily_average": "2h 5m",
		"trust_factor": {"trust_level": "green"},
		"languages": [
			{"name": "Python", "text": "8 mins", "total_seconds": 500},
			{"name": "Go", "text": "15 mins", "total_seconds": 900},
			{"name": "Rust", "text": "1 min", "total_seconds": 100},
			{"name": "C", "text": "50 secs", "total_seconds": 50}
		]
	}
}`

func TestFetchRanksAndTruncatesLanguages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/U123/stats" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer sekrit" {
			t.Fatalf("missing bearer token, got %q", r.Header.Get("Authorization"))
		}
		w.Write([]byte(statsPayload))
	}))
	defer srv.Close()

	summary := New(srv.URL, "sekrit").Fetch(context.Background(), "U123")

	if summary.TotalTime != "2h" {
		t.Fatalf("expected 2h total, got %q", summary.TotalTime)
	}
	if summary.DailyAverage != "2h 5m" {
		t.Fatalf("expected upstream daily average, got %q", summary.DailyAverage)
	}
	if summary.TrustLevel != "Trusted" {
		t.Fatalf("expected Trusted, got %q", summary.TrustLevel)
	}

	var names []string
	for _, lang := range summary.Languages {
		names = append(names, lang.Name)
	}
	if !reflect.DeepEqual(names, []string{"Go", "Python", "Rust"}) {
		t.Fatalf("expected top three [Go Python Rust], got %v", names)
	}
}

func TestFetchUpstreamErrorYieldsSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	summary := New(srv.URL, "sekrit").Fetch(context.Background(), "U123")

	want := domain.UnavailableActivity()
	if !reflect.DeepEqual(summary, want) {
		t.Fatalf("expected sentinel summary %+v, got %+v", want, summary)
	}
}

func TestFetchUnreachableHostYieldsSentinel(t *testing.T) {
	summary := New("http://127.0.0.1:1", "sekrit").Fetch(context.Background(), "U123")

	if !reflect.DeepEqual(summary, domain.UnavailableActivity()) {
		t.Fatalf("expected sentinel summary, got %+v", summary)
	}
}

func TestFetchCachesSuccessfulResponses(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(statsPayload))
	}))
	defer srv.Close()

	client := New(srv.URL, "sekrit")
	client.Fetch(context.Background(), "U123")
	client.Fetch(context.Background(), "U123")

	if calls != 1 {
		t.Fatalf("expected one upstream call, got %d", calls)
	}
}

func TestSummarizeDefaults(t *testing.T) {
	summary := summarize(statsData{})

	if summary.TotalTime != "0h" {
		t.Fatalf("expected 0h, got %q", summary.TotalTime)
	}
	if summary.DailyAverage != "0m" {
		t.Fatalf("expected 0m default, got %q", summary.DailyAverage)
	}
	if summary.TrustLevel != "unknown" {
		t.Fatalf("expected unknown trust level, got %q", summary.TrustLevel)
	}
}

func TestSummarizeUnknownTrustTokenPassesThrough(t *testing.T) {
	summary := summarize(statsData{TrustFactor: &trustFactor{TrustLevel: "chartreuse"}})

	if summary.TrustLevel != "chartreuse" {
		t.Fatalf("expected pass-through token, got %q", summary.TrustLevel)
	}
}

func TestSummarizeStableOrderOnTies(t *testing.T) {
	summary := summarize(statsData{Languages: []languageEntry{
		{Name: "Python", TotalSeconds: 100},
		{Name: "Go", TotalSeconds: 100},
	}})

	if summary.Languages[0].Name != "Python" || summary.Languages[1].Name != "Go" {
		t.Fatalf("expected source order on ties, got %+v", summary.Languages)
	}
}
