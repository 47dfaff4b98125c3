package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReportStatus string

const (
	ReportPending  ReportStatus = "PENDING"
	ReportApproved ReportStatus = "APPROVED"
	ReportRejected ReportStatus = "REJECTED"
)

type WorkReport struct {
	ID           uuid.UUID    `json:"id"`
	VolunteerID  uuid.UUID    `json:"volunteer_id"`
	CampID       uuid.UUID    `json:"camp_id"`
	Description  string       `json:"description"`
	Images       []string     `json:"images"`
	PeopleHelped int          `json:"people_helped"`
	HoursWorked  int          `json:"hours_worked"`
	Status       ReportStatus `json:"status"`
	NGOFeedback  string       `json:"ngo_feedback,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

type SubmitWorkReportRequest struct {
	CampID       string      `json:"camp_id" validate:"required,uuid"`
	Description  string      `json:"description" validate:"required"`
	PeopleHelped int         `json:"people_helped" validate:"min=0"`
	HoursWorked  int         `json:"hours_worked" validate:"min=0"`
	Images       []ImageBlob `json:"images" validate:"dive"`
}

// ImageBlob is base64-encoded evidence; the service uploads each blob to the
// image store and keeps only the resulting URLs.
type ImageBlob struct {
	Filename string `json:"filename" validate:"required"`
	Data     string `json:"data" validate:"required,base64"`
}

type RejectReportRequest struct {
	Feedback string `json:"feedback" validate:"required"`
}

type ApproveReportResponse struct {
	Report   *WorkReport `json:"report"`
	XPEarned int         `json:"xp_earned"`
	Level    string      `json:"level"`
	// AlreadyApproved marks the idempotent no-op path: nothing was
	// re-applied and XPEarned is zero.
	AlreadyApproved bool `json:"already_approved"`
}
