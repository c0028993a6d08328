// Package hackatime fetches coding-activity statistics from a Hackatime
// compatible time-tracking API.
package hackatime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/userrate/userrate/internal/domain"
	"github.com/userrate/userrate/internal/icons"
)

const defaultTimeout = 3 * time.Second

// trustLevels is the fixed vocabulary the API reports. Unknown tokens pass
// through as-is.
var trustLevels = map[string]string{
	"blue":   "Unanalyzed",
	"red":    "Banned",
	"yellow": "Suspected",
	"green":  "Trusted",
}

type Client struct {
	client  *http.Client
	cache   *cache.Cache
	baseURL string
	apiKey  string
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		client:  &http.Client{Timeout: defaultTimeout},
		cache:   cache.New(1*time.Minute, 5*time.Minute),
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
	}
}

type statsResponse struct {
	Data statsData `json:"data"`
}

type statsData struct {
	TotalSeconds              float64         `json:"total_seconds"`
	HumanReadableDailyAverage string          `json:"human_readable_daily_average"`
	TrustFactor               *trustFactor    `json:"trust_factor"`
	Languages                 []languageEntry `json:"languages"`
}

type trustFactor struct {
	TrustLevel string `json:"trust_level"`
}

type languageEntry struct {
	Name         string  `json:"name"`
	Text         string  `json:"text"`
	TotalSeconds float64 `json:"total_seconds"`
}

// Fetch returns the member's activity summary. Every failure path resolves
// to the unavailable sentinel; the caller never sees an error.
func (c *Client) Fetch(ctx context.Context, memberID string) domain.ActivitySummary {
	if x, found := c.cache.Get(memberID); found {
		return x.(domain.ActivitySummary)
	}

	summary, err := c.fetch(ctx, memberID)
	if err != nil {
		slog.Warn("stats fetch failed",
			slog.String("member", memberID),
			slog.String("error", err.Error()),
		)
		return domain.UnavailableActivity()
	}

	c.cache.Set(memberID, summary, cache.DefaultExpiration)
	return summary
}

func (c *Client) fetch(ctx context.Context, memberID string) (domain.ActivitySummary, error) {
	url := fmt.Sprintf("%s/users/%s/stats", c.baseURL, memberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.ActivitySummary{}, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.ActivitySummary{}, fmt.Errorf("failed to perform request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.ActivitySummary{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var stats statsResponse
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return domain.ActivitySummary{}, fmt.Errorf("failed to decode response: %v", err)
	}

	return summarize(stats.Data), nil
}

func summarize(data statsData) domain.ActivitySummary {
	dailyAverage := data.HumanReadableDailyAverage
	if dailyAverage == "" {
		dailyAverage = "0m"
	}

	trustLevel := "unknown"
	if data.TrustFactor != nil && data.TrustFactor.TrustLevel != "" {
		trustLevel = data.TrustFactor.TrustLevel
		if mapped, ok := trustLevels[trustLevel]; ok {
			trustLevel = mapped
		}
	}

	languages := make([]domain.LanguageStat, 0, len(data.Languages))
	for _, lang := range data.Languages {
		languages = append(languages, domain.LanguageStat{
			Name:         strings.TrimSpace(lang.Name),
			Text:         lang.Text,
			TotalSeconds: int(lang.TotalSeconds),
			IconURL:      icons.Resolve(lang.Name),
		})
	}
	sort.SliceStable(languages, func(i, j int) bool {
		return languages[i].TotalSeconds > languages[j].TotalSeconds
	})
	if len(languages) > 3 {
		languages = languages[:3]
	}

	return domain.ActivitySummary{
		TotalTime:    fmt.Sprintf("%dh", int(data.TotalSeconds)/3600),
		DailyAverage: dailyAverage,
		TrustLevel:   trustLevel,
		Languages:    languages,
	}
}
