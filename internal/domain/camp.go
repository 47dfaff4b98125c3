package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type RiskLevel string

const (
	RiskLow     RiskLevel = "LOW"
	RiskMedium  RiskLevel = "MEDIUM"
	RiskHigh    RiskLevel = "HIGH"
	RiskSevere  RiskLevel = "SEVERE"
	RiskUnknown RiskLevel = "UNKNOWN" // aggregator fallback only, never a camp level
)

// ParseRiskLevel normalizes case-insensitive input and rejects anything
// outside the four deployable levels.
func ParseRiskLevel(s string) (RiskLevel, error) {
	switch RiskLevel(strings.ToUpper(strings.TrimSpace(s))) {
	case RiskLow:
		return RiskLow, nil
	case RiskMedium:
		return RiskMedium, nil
	case RiskHigh:
		return RiskHigh, nil
	case RiskSevere:
		return RiskSevere, nil
	}
	return "", fmt.Errorf("unrecognized risk level %q", s)
}

type CampStatus string

const (
	CampPending CampStatus = "PENDING"
	CampActive  CampStatus = "ACTIVE"
	CampClosed  CampStatus = "CLOSED"
)

type Resources struct {
	Masks     int `json:"masks"`
	Medicines int `json:"medicines"`
	Oxygen    int `json:"oxygen"`
}

// ResourceTier maps a deployable risk level to its allocation.
// LOW and MEDIUM share the baseline tier.
func ResourceTier(risk RiskLevel) Resources {
	switch risk {
	case RiskHigh:
		return Resources{Masks: 1000, Medicines: 500, Oxygen: 200}
	case RiskSevere:
		return Resources{Masks: 2000, Medicines: 900, Oxygen: 500}
	default:
		return Resources{Masks: 300, Medicines: 150, Oxygen: 50}
	}
}

type ReliefCamp struct {
	ID                uuid.UUID   `json:"id"`
	Area              string      `json:"area"`
	Lat               float64     `json:"lat"`
	Lng               float64     `json:"lng"`
	RiskLevel         RiskLevel   `json:"risk_level"`
	Status            CampStatus  `json:"status"`
	Resources         Resources   `json:"resources"`
	VolunteerAssigned []uuid.UUID `json:"volunteer_assigned"`
	CreatedAt         time.Time   `json:"created_at"`
}

type CampSummary struct {
	ID              uuid.UUID  `json:"id"`
	Area            string     `json:"area"`
	Lat             float64    `json:"lat"`
	Lng             float64    `json:"lng"`
	RiskLevel       RiskLevel  `json:"risk_level"`
	Status          CampStatus `json:"status"`
	VolunteersCount int        `json:"volunteers_count"`
	Resources       Resources  `json:"resources"`
}
