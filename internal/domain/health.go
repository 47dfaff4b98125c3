package domain

import (
	"time"

	"github.com/google/uuid"
)

// HealthSample is an anonymous citizen submission, immutable once created.
type HealthSample struct {
	ID         uuid.UUID `json:"id"`
	SleepHours float64   `json:"sleep_hours"`
	Stress     int       `json:"stress"`
	Symptoms   []string  `json:"symptoms"`
	Area       string    `json:"area"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	CreatedAt  time.Time `json:"created_at"`
}

type SubmitHealthRequest struct {
	Sleep    float64  `json:"sleep" validate:"min=0,max=24"`
	Stress   int      `json:"stress" validate:"min=0,max=10"`
	Symptoms []string `json:"symptoms"`
	Area     string   `json:"area" validate:"required"`
	Lat      float64  `json:"lat" validate:"lat"`
	Lng      float64  `json:"lng" validate:"lng"`
}

// AreaHealthStats is the grouped per-area view that feeds the risk pipeline.
type AreaHealthStats struct {
	Area      string   `json:"area"`
	Reports   int64    `json:"reports"`
	AvgSleep  float64  `json:"avg_sleep"`
	AvgStress float64  `json:"avg_stress"`
	Symptoms  []string `json:"symptoms"`
}

type HealthOverview struct {
	TotalReports int64   `json:"total_reports"`
	AvgSleep     float64 `json:"avg_sleep"`
	AvgStress    float64 `json:"avg_stress"`
}
