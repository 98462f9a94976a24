package auth

import (
	"testing"
	"time"

	"github.com/Vikasthangavel/CTC/app/config"
)

func TestDailyPassword(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"june first", time.Date(2024, time.June, 1, 10, 30, 0, 0, time.UTC), "0106"},
		{"new years eve", time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC), "3112"},
		{"single digit day and month", time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC), "0501"},
		{"double digit day", time.Date(2025, time.March, 17, 12, 0, 0, 0, time.UTC), "1703"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DailyPassword(tt.date); got != tt.want {
				t.Errorf("DailyPassword(%s) = %q, want %q", tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestDailyPassword_OnlyMatchesOwnDate(t *testing.T) {
	// "0106" is the June 1st password and must fail on every other day.
	days := []time.Time{
		time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 6, 0, 0, 0, 0, time.UTC), // reversed day/month
		time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, day := range days {
		if DailyPassword(day) == "0106" {
			t.Errorf("DailyPassword(%s) = 0106, should only match June 1st", day.Format("2006-01-02"))
		}
	}
	if DailyPassword(time.Date(2030, time.June, 1, 8, 0, 0, 0, time.UTC)) != "0106" {
		t.Error("DailyPassword on June 1st should be 0106 in any year")
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	config.AppConfig = &config.Config{SessionSecret: "test-secret"}

	token, err := GenerateSessionToken(RoleParent, "5550001111")
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	claims, err := ValidateSessionToken(token)
	if err != nil {
		t.Fatalf("ValidateSessionToken: %v", err)
	}
	if claims.Role != RoleParent {
		t.Errorf("Role = %q, want %q", claims.Role, RoleParent)
	}
	if claims.Phone != "5550001111" {
		t.Errorf("Phone = %q, want 5550001111", claims.Phone)
	}
	if claims.ID == "" {
		t.Error("token ID should be set")
	}
}

func TestSessionToken_RejectsTampering(t *testing.T) {
	config.AppConfig = &config.Config{SessionSecret: "test-secret"}

	token, err := GenerateSessionToken(RoleAdmin, "")
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	if _, err := ValidateSessionToken(token + "x"); err == nil {
		t.Error("tampered token should not validate")
	}

	// A token signed under a different secret must be rejected.
	config.AppConfig = &config.Config{SessionSecret: "other-secret"}
	if _, err := ValidateSessionToken(token); err == nil {
		t.Error("token signed with a different secret should not validate")
	}
}
