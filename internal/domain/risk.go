package domain

// HealthPayload is the sanitized health side of the scorer request.
// Numeric coercion failures upstream fall back to these defaults: sleep 7,
// stress 5, symptoms empty.
type HealthPayload struct {
	Sleep    float64  `json:"sleep"`
	Stress   float64  `json:"stress"`
	Symptoms []string `json:"symptoms"`
}

// EnvPayload defaults: aqi 0, temperature 25, humidity 50, windSpeed 3.
type EnvPayload struct {
	AQI         float64 `json:"aqi"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
}

// RiskScore is the scorer's verdict for one area.
type RiskScore struct {
	Risk       RiskLevel `json:"risk"`
	FinalAQI   int       `json:"finalAQI"`
	EnvScore   float64   `json:"envScore"`
	HumanScore float64   `json:"humanScore"`
	Confidence float64   `json:"confidence"`
}

// FallbackRiskScore is the mandated substitute whenever the scorer is
// unreachable or returns a malformed response.
func FallbackRiskScore() RiskScore {
	return RiskScore{Risk: RiskUnknown}
}

// AreaRiskRecord is derived per aggregation call, never persisted as a
// primary entity and never mutated in place.
type AreaRiskRecord struct {
	Area       string    `json:"area"`
	AvgAQI     int       `json:"avg_aqi"`
	Risk       RiskLevel `json:"risk"`
	EnvScore   float64   `json:"env_score"`
	HumanScore float64   `json:"human_score"`
	Confidence float64   `json:"confidence"`
	AvgStress  float64   `json:"avg_stress"`
	AvgSleep   float64   `json:"avg_sleep"`
	Lat        *float64  `json:"lat"`
	Lng        *float64  `json:"lng"`
}
