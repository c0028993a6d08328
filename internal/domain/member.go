package domain

// MemberIdentity is the identity portion of a profile, built fresh per
// request from the workspace API.
type MemberIdentity struct {
	ID          string
	DisplayName string
	AvatarURL   string
	StatusEmoji string // raw :shortcode: token, may be empty
	StatusText  string

	IsMultiChannelGuest  bool
	IsSingleChannelGuest bool
	IsAdmin              bool
	IsBot                bool
}

type BannerSeverity string

const (
	SeverityNeutral BannerSeverity = "neutral"
	SeverityWarning BannerSeverity = "warning"
)

// Banner is the single advisory message shown for a member's account
// classification.
type Banner struct {
	Message  string
	Severity BannerSeverity
}

// Banner returns the advisory banner for the member, or nil when no role
// flag applies. Evaluation order is fixed: multi-channel guest, then
// single-channel guest, then admin, then bot. The first matching flag wins
// even when several are set.
func (m MemberIdentity) Banner() *Banner {
	switch {
	case m.IsMultiChannelGuest:
		return &Banner{
			Message:  "This user is a multi-channel guest and can only access a few channels!",
			Severity: SeverityNeutral,
		}
	case m.IsSingleChannelGuest:
		return &Banner{
			Message:  "This user is a single-channel guest and can only access a single channel!",
			Severity: SeverityNeutral,
		}
	case m.IsAdmin:
		return &Banner{
			Message:  "This user is an admin, beware!",
			Severity: SeverityWarning,
		}
	case m.IsBot:
		return &Banner{
			Message:  "This is a bot. Please do not send them your freaky messages.",
			Severity: SeverityNeutral,
		}
	}
	return nil
}
