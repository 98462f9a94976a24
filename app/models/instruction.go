package models

import "strconv"

// Instruction target types
const (
	TargetAll     = "all"
	TargetGrade   = "grade"
	TargetStudent = "student"
)

// Instruction is an admin-authored announcement shown to parents. It targets
// everyone, one grade, or one student; target_value is a string-encoded
// grade or student id.
type Instruction struct {
	ID          int    `json:"id"`
	Message     string `json:"message" validate:"required"`
	CreatedAt   string `json:"created_at"`
	TargetType  string `json:"target_type"`
	TargetValue string `json:"target_value"`
}

// VisibleTo reports whether the instruction applies to any of the given
// children. An empty or "all" target type matches everyone; grade and student
// targets compare numerically so "05" still matches grade 5.
func (i *Instruction) VisibleTo(children []*Student) bool {
	switch i.TargetType {
	case "", TargetAll:
		return true
	case TargetGrade:
		grade, err := strconv.Atoi(i.TargetValue)
		if err != nil {
			return false
		}
		for _, c := range children {
			if c.Grade == grade {
				return true
			}
		}
	case TargetStudent:
		id, err := strconv.Atoi(i.TargetValue)
		if err != nil {
			return false
		}
		for _, c := range children {
			if c.ID == id {
				return true
			}
		}
	}
	return false
}

// VisibleInstructions filters a newest-first instruction window down to the
// ones visible to the given children, capped at the 5 most recent matches.
// Callers pass only the most recent 20 instructions, so older announcements
// fall out of view entirely.
func VisibleInstructions(recent []*Instruction, children []*Student) []*Instruction {
	var visible []*Instruction
	for _, in := range recent {
		if in.VisibleTo(children) {
			visible = append(visible, in)
			if len(visible) == 5 {
				break
			}
		}
	}
	return visible
}
