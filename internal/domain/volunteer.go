package domain

import (
	"time"

	"github.com/google/uuid"
)

type Badge struct {
	Name        string    `json:"name"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
	EarnedAt    time.Time `json:"earned_at"`
}

// Volunteer invariant: Available == (AssignedCamp == nil) after every
// mutation; both registry and lifecycle paths maintain it in one
// transactional step.
type Volunteer struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	Phone             string     `json:"phone"`
	Available         bool       `json:"available"`
	AssignedCamp      *uuid.UUID `json:"assigned_camp,omitempty"`
	CompletedCamps    int        `json:"completed_camps"`
	TotalPeopleHelped int        `json:"total_people_helped"`
	TotalHours        int        `json:"total_hours"`
	XP                int        `json:"xp"`
	Level             string     `json:"level"`
	Badges            []Badge    `json:"badges"`
}

type RegisterVolunteerRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

type JoinCampRequest struct {
	CampID string `json:"camp_id" validate:"required,uuid"`
}

type VolunteerDashboard struct {
	Volunteer    *Volunteer  `json:"volunteer"`
	AssignedCamp *ReliefCamp `json:"assigned_camp"`
}
