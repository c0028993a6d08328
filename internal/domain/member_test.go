package domain

import "testing"

func TestBannerPrecedence(t *testing.T) {
	cases := []struct {
		name     string
		member   MemberIdentity
		severity BannerSeverity
		none     bool
	}{
		{name: "none", member: MemberIdentity{}, none: true},
		{name: "bot", member: MemberIdentity{IsBot: true}, severity: SeverityNeutral},
		{name: "admin wins over bot", member: MemberIdentity{IsAdmin: true, IsBot: true}, severity: SeverityWarning},
		{name: "single-channel wins over admin", member: MemberIdentity{IsSingleChannelGuest: true, IsAdmin: true}, severity: SeverityNeutral},
		{name: "multi-channel wins over everything", member: MemberIdentity{IsMultiChannelGuest: true, IsSingleChannelGuest: true, IsAdmin: true, IsBot: true}, severity: SeverityNeutral},
	}

	for _, tc := range cases {
		banner := tc.member.Banner()
		if tc.none {
			if banner != nil {
				t.Fatalf("%s: expected no banner, got %+v", tc.name, banner)
			}
			continue
		}
		if banner == nil {
			t.Fatalf("%s: expected a banner", tc.name)
		}
		if banner.Severity != tc.severity {
			t.Fatalf("%s: expected severity %s got %s", tc.name, tc.severity, banner.Severity)
		}
	}
}

func TestAdminAndBotYieldsOnlyAdminBanner(t *testing.T) {
	member := MemberIdentity{IsAdmin: true, IsBot: true}
	banner := member.Banner()
	if banner == nil {
		t.Fatal("expected a banner")
	}
	if banner.Severity != SeverityWarning {
		t.Fatalf("expected warning severity, got %s", banner.Severity)
	}
	if banner.Message != "This user is an admin, beware!" {
		t.Fatalf("expected admin message, got %q", banner.Message)
	}
}
