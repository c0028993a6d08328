package domain

import "html/template"

// ProfileRenderModel is the pipeline's terminal aggregate: everything the
// profile template needs for one member, immutable once built.
type ProfileRenderModel struct {
	MemberID        string
	Username        string
	AvatarURL       string
	StatusEmojiHTML template.HTML
	StatusText      string

	TotalTime    string
	DailyAverage string
	TrustLevel   string
	Languages    []LanguageStat

	Banner *Banner // nil when no role banner applies
}

// BuildProfile merges the identity and activity halves with the rendered
// status-emoji markup into the final render model.
func BuildProfile(identity MemberIdentity, activity ActivitySummary, statusEmoji template.HTML) ProfileRenderModel {
	return ProfileRenderModel{
		MemberID:        identity.ID,
		Username:        identity.DisplayName,
		AvatarURL:       identity.AvatarURL,
		StatusEmojiHTML: statusEmoji,
		StatusText:      identity.StatusText,
		TotalTime:       activity.TotalTime,
		DailyAverage:    activity.DailyAverage,
		TrustLevel:      activity.TrustLevel,
		Languages:       activity.Languages,
		Banner:          identity.Banner(),
	}
}
