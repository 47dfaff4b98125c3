package domain

type DeployCampRequest struct {
	Area      string  `json:"area" validate:"required"`
	Lat       float64 `json:"lat" validate:"lat"`
	Lng       float64 `json:"lng" validate:"lng"`
	RiskLevel string  `json:"risk_level" validate:"required,risklevel"`
}

type AssignVolunteersRequest struct {
	CampID       string   `json:"camp_id" validate:"required,uuid"`
	VolunteerIDs []string `json:"volunteer_ids" validate:"required,min=1,dive,uuid"`
}

type AssignVolunteersResponse struct {
	Count int `json:"count"`
}

type CloseCampRequest struct {
	CampID string `json:"camp_id" validate:"required,uuid"`
}
