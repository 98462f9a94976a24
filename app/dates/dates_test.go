package dates

import "testing"

func TestMonthLabel(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2024-03", "March 2024", false},
		{"2024-12", "December 2024", false},
		{"1999-01", "January 1999", false},
		{"2024-13", "", true},
		{"2024-3", "", true},
		{"2024", "", true},
		{"03-2024", "", true},
		{"garbage", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := MonthLabel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("MonthLabel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("MonthLabel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseDay(t *testing.T) {
	if _, err := ParseDay("2024-03-05"); err != nil {
		t.Errorf("ParseDay(2024-03-05) unexpected error: %v", err)
	}
	for _, bad := range []string{"2024-03", "05-03-2024", "2024-02-30", "today"} {
		if _, err := ParseDay(bad); err == nil {
			t.Errorf("ParseDay(%q) expected error, got nil", bad)
		}
	}
}
