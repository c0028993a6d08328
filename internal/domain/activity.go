package domain

// LanguageStat is one language from the time-tracking stats, ready for
// display. TotalSeconds is only used for ordering.
type LanguageStat struct {
	Name         string
	Text         string // human readable duration reported upstream
	TotalSeconds int
	IconURL      string
}

// ActivitySummary holds the coding-activity half of a profile.
type ActivitySummary struct {
	TotalTime    string // whole hours, e.g. "1042h"
	DailyAverage string
	TrustLevel   string
	Languages    []LanguageStat // descending by time, at most three
}

// UnavailableActivity is the summary substituted when the time-tracking
// API cannot be reached. Every field carries a sentinel so the page always
// renders.
func UnavailableActivity() ActivitySummary {
	return ActivitySummary{
		TotalTime:    "N/A",
		DailyAverage: "N/A",
		TrustLevel:   "N/A",
		Languages:    []LanguageStat{},
	}
}
