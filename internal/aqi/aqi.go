// Package aqi converts pollutant concentrations into a bounded, smoothed
// air quality index. Pure computation: no I/O, no errors; malformed inputs
// degrade to zero concentration.
package aqi

import (
	"math"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/domain"
)

const (
	// Smoothing weights: heavy inertia against single-reading spikes.
	historyWeight = 0.6
	instantWeight = 0.4

	// Realism bounds, independent of the theoretical 0-500 scale.
	floorAQI   = 25.0
	ceilingAQI = 350.0

	// CO is a secondary signal and is down-weighted in the composite.
	coWeight = 0.5
)

// bracket maps a concentration range onto an index range. Brackets share
// edges so interpolation is continuous across the whole table.
type bracket struct {
	cLo, cHi float64
	iLo, iHi float64
}

// CPCB-style breakpoints, concentrations in µg/m³ (CO table in mg/m³).
var (
	pm25Brackets = []bracket{
		{0, 30, 0, 50},
		{30, 60, 50, 100},
		{60, 90, 100, 200},
		{90, 120, 200, 300},
		{120, 250, 300, 400},
		{250, 500, 400, 500},
	}
	pm10Brackets = []bracket{
		{0, 50, 0, 50},
		{50, 100, 50, 100},
		{100, 250, 100, 200},
		{250, 350, 200, 300},
		{350, 430, 300, 400},
		{430, 510, 400, 500},
	}
	coBrackets = []bracket{
		{0, 1, 0, 50},
		{1, 2, 50, 100},
		{2, 10, 100, 200},
		{10, 17, 200, 300},
		{17, 34, 300, 400},
		{34, 50, 400, 500},
	}
)

// SubIndex interpolates within the bracket containing c; concentrations
// past the last bracket extrapolate along the last bracket's slope.
func SubIndex(c float64, table []bracket) float64 {
	if math.IsNaN(c) || c <= 0 {
		return 0
	}
	for _, b := range table {
		if c <= b.cHi {
			return b.iLo + (c-b.cLo)/(b.cHi-b.cLo)*(b.iHi-b.iLo)
		}
	}
	last := table[len(table)-1]
	slope := (last.iHi - last.iLo) / (last.cHi - last.cLo)
	return last.iHi + (c-last.cHi)*slope
}

func PM25SubIndex(c float64) float64 { return SubIndex(c, pm25Brackets) }
func PM10SubIndex(c float64) float64 { return SubIndex(c, pm10Brackets) }

// COSubIndex takes µg/m³ and converts to mg/m³ before the lookup.
func COSubIndex(c float64) float64 { return SubIndex(c/1000.0, coBrackets) }

// Instant is the composite instantaneous AQI.
func Instant(p domain.Pollutants) float64 {
	idx := PM25SubIndex(p.PM25)
	if v := PM10SubIndex(p.PM10); v > idx {
		idx = v
	}
	if v := coWeight * COSubIndex(p.CO); v > idx {
		idx = v
	}
	return idx
}

// Smooth blends the instantaneous value with the rolling history mean and
// clamps the result to [25, 350].
func Smooth(instant float64, history []float64) float64 {
	smoothed := instant
	if len(history) > 0 {
		var sum float64
		for _, h := range history {
			sum += h
		}
		smoothed = historyWeight*(sum/float64(len(history))) + instantWeight*instant
	}
	if smoothed < floorAQI {
		return floorAQI
	}
	if smoothed > ceilingAQI {
		return ceilingAQI
	}
	return smoothed
}

// Meta is total over all index values.
func Meta(aqi int) (label, advice string) {
	switch {
	case aqi <= 50:
		return "Good", "Air is clean"
	case aqi <= 100:
		return "Moderate", "Sensitive people be cautious"
	case aqi <= 200:
		return "Poor", "Limit outdoor exposure"
	case aqi <= 300:
		return "Very Poor", "Avoid outdoor activity"
	default:
		return "Severe", "Stay indoors. Serious risk"
	}
}

// ClassifyRisk maps an index onto the area risk scale.
func ClassifyRisk(aqi int) domain.RiskLevel {
	switch {
	case aqi <= 50:
		return domain.RiskLow
	case aqi <= 200:
		return domain.RiskMedium
	case aqi <= 300:
		return domain.RiskHigh
	default:
		return domain.RiskSevere
	}
}

// Compute runs the full pipeline for one snapshot.
func Compute(p domain.Pollutants, history []float64) domain.AQIReading {
	index := int(math.Round(Smooth(Instant(p), history)))
	label, advice := Meta(index)
	return domain.AQIReading{
		Index:      index,
		Label:      label,
		Advice:     advice,
		Pollutants: p,
	}
}
