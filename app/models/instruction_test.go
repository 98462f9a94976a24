package models

import (
	"fmt"
	"testing"
)

func TestInstruction_VisibleTo(t *testing.T) {
	children := []*Student{
		{ID: 7, Grade: 5},
		{ID: 9, Grade: 2},
	}

	tests := []struct {
		name        string
		targetType  string
		targetValue string
		want        bool
	}{
		{"all", TargetAll, "", true},
		{"empty type treated as all", "", "", true},
		{"grade match", TargetGrade, "5", true},
		{"grade match zero padded", TargetGrade, "05", true},
		{"grade mismatch", TargetGrade, "3", false},
		{"grade garbage value", TargetGrade, "five", false},
		{"student match", TargetStudent, "9", true},
		{"student mismatch", TargetStudent, "8", false},
		{"student garbage value", TargetStudent, "", false},
		{"unknown type", "class", "5", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &Instruction{TargetType: tt.targetType, TargetValue: tt.targetValue}
			if got := in.VisibleTo(children); got != tt.want {
				t.Errorf("VisibleTo() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVisibleInstructions_CapsAtFive(t *testing.T) {
	children := []*Student{{ID: 1, Grade: 4}}

	// Newest first, all matching; only the first five should survive.
	var recent []*Instruction
	for i := 0; i < 8; i++ {
		recent = append(recent, &Instruction{
			ID:         100 - i,
			Message:    fmt.Sprintf("notice %d", i),
			TargetType: TargetAll,
		})
	}

	visible := VisibleInstructions(recent, children)
	if len(visible) != 5 {
		t.Fatalf("len(visible) = %d, want 5", len(visible))
	}
	for i, in := range visible {
		if in.ID != 100-i {
			t.Errorf("visible[%d].ID = %d, want %d", i, in.ID, 100-i)
		}
	}
}

func TestVisibleInstructions_SkipsNonMatching(t *testing.T) {
	children := []*Student{{ID: 3, Grade: 6}}

	recent := []*Instruction{
		{ID: 5, TargetType: TargetGrade, TargetValue: "1"},
		{ID: 4, TargetType: TargetStudent, TargetValue: "3"},
		{ID: 3, TargetType: TargetGrade, TargetValue: "6"},
		{ID: 2, TargetType: TargetStudent, TargetValue: "99"},
		{ID: 1, TargetType: TargetAll},
	}

	visible := VisibleInstructions(recent, children)
	wantIDs := []int{4, 3, 1}
	if len(visible) != len(wantIDs) {
		t.Fatalf("len(visible) = %d, want %d", len(visible), len(wantIDs))
	}
	for i, want := range wantIDs {
		if visible[i].ID != want {
			t.Errorf("visible[%d].ID = %d, want %d", i, visible[i].ID, want)
		}
	}
}

func TestVisibleInstructions_NoChildren(t *testing.T) {
	recent := []*Instruction{
		{ID: 2, TargetType: TargetGrade, TargetValue: "5"},
		{ID: 1, TargetType: TargetAll},
	}

	visible := VisibleInstructions(recent, nil)
	if len(visible) != 1 || visible[0].ID != 1 {
		t.Fatalf("visible = %+v, want only the untargeted instruction", visible)
	}
}
