package database

import "testing"

func TestAttendancePercent(t *testing.T) {
	tests := []struct {
		name    string
		present int
		total   int
		want    float64
	}{
		{"no marks", 0, 0, 0},
		{"all present", 20, 20, 100},
		{"none present", 0, 15, 0},
		{"half", 1, 2, 50},
		{"rounds to one decimal", 2, 3, 66.7},
		{"rounds down", 1, 3, 33.3},
		{"single day present", 1, 1, 100},
		{"rounds half up", 1, 16, 6.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AttendancePercent(tt.present, tt.total); got != tt.want {
				t.Errorf("AttendancePercent(%d, %d) = %v, want %v", tt.present, tt.total, got, tt.want)
			}
		})
	}
}
