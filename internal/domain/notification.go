package domain

import (
	"time"

	"github.com/google/uuid"
)

// Room keys for the notification fabric. One room per volunteer plus a
// shared organization room; delivery is at-most-once, no replay.
const OrgReportsRoom = "org:reports"

func VolunteerRoom(id uuid.UUID) string {
	return "volunteer:" + id.String()
}

const (
	EventReportNew      = "work-report:new"
	EventReportApproved = "work-report:approved"
	EventReportRejected = "work-report:rejected"
	EventCampAssigned   = "camp:assigned"
	EventCampClosed     = "camp:closed"
)

type Notification struct {
	Event   string    `json:"event"`
	Payload any       `json:"payload"`
	SentAt  time.Time `json:"sent_at"`
}

type ReportNewPayload struct {
	ReportID    uuid.UUID `json:"report_id"`
	VolunteerID uuid.UUID `json:"volunteer_id"`
	CampID      uuid.UUID `json:"camp_id"`
}

type ReportApprovedPayload struct {
	ReportID uuid.UUID `json:"report_id"`
	XPEarned int       `json:"xp_earned"`
	Level    string    `json:"level"`
}

type ReportRejectedPayload struct {
	ReportID uuid.UUID `json:"report_id"`
	Feedback string    `json:"feedback"`
}

type CampAssignedPayload struct {
	CampID uuid.UUID `json:"camp_id"`
	Area   string    `json:"area"`
}

type CampClosedPayload struct {
	CampID uuid.UUID `json:"camp_id"`
	Area   string    `json:"area"`
}
