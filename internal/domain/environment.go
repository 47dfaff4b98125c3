package domain

import "time"

// Pollutants are µg/m³ as delivered by the provider.
type Pollutants struct {
	PM25 float64 `json:"pm2_5"`
	PM10 float64 `json:"pm10"`
	CO   float64 `json:"co"`
	NO2  float64 `json:"no2"`
	SO2  float64 `json:"so2"`
	O3   float64 `json:"o3"`
}

// EnvironmentSnapshot is ephemeral: fetched on demand from the provider and
// cached per area with a short TTL.
type EnvironmentSnapshot struct {
	Area        string     `json:"area"`
	Pollutants  Pollutants `json:"pollutants"`
	Temperature float64    `json:"temperature"`
	Humidity    float64    `json:"humidity"`
	WindSpeed   float64    `json:"wind_speed"`
	Condition   string     `json:"condition"`
	FetchedAt   time.Time  `json:"fetched_at"`
}

type AQIReading struct {
	Index      int        `json:"index"`
	Label      string     `json:"label"`
	Advice     string     `json:"advice"`
	Pollutants Pollutants `json:"pollutants"`
}

type HealthImpact struct {
	Score       int      `json:"score"`
	Status      string   `json:"status"`
	Suggestions []string `json:"suggestions"`
}

type WeatherInfo struct {
	Temp      float64 `json:"temp"`
	Humidity  float64 `json:"humidity"`
	WindSpeed float64 `json:"wind_speed"`
	Condition string  `json:"condition"`
}

// EnvironmentReport is the full per-area environment view served publicly.
type EnvironmentReport struct {
	Area    string       `json:"area"`
	Weather WeatherInfo  `json:"weather"`
	AQI     AQIReading   `json:"aqi"`
	Risk    RiskLevel    `json:"risk"`
	Health  HealthImpact `json:"health"`
}

// EnvLogEntry is one AQI history point for an area.
type EnvLogEntry struct {
	Area      string    `json:"area"`
	AQI       int       `json:"aqi"`
	CreatedAt time.Time `json:"created_at"`
}
