// Package gamify holds the XP, level, and badge formulas shared by the
// report-approval and camp-close reward paths.
package gamify

import (
	"time"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/domain"
)

// ComputeXP: base 100, +5 per hour, +2 per person helped, flat +20 when at
// least one image was attached. Additive, no caps.
func ComputeXP(hoursWorked, peopleHelped, imageCount int) int {
	xp := 100
	xp += hoursWorked * 5
	xp += peopleHelped * 2
	if imageCount > 0 {
		xp += 20
	}
	return xp
}

// ComputeLevel is monotonic non-decreasing in total XP.
func ComputeLevel(xp int) string {
	switch {
	case xp >= 1500:
		return "Legend"
	case xp >= 900:
		return "Hero"
	case xp >= 500:
		return "Guardian"
	case xp >= 200:
		return "Helper"
	default:
		return "Rookie"
	}
}

// BadgesFor returns every badge whose threshold the completed-camp count
// meets. Both reward paths must use this so badge sets never diverge.
func BadgesFor(completedCamps int) []domain.Badge {
	now := time.Now().UTC()
	var badges []domain.Badge
	if completedCamps >= 1 {
		badges = append(badges, domain.Badge{
			Name:        "First Responder",
			Icon:        "🥇",
			Description: "Completed first relief mission",
			EarnedAt:    now,
		})
	}
	if completedCamps >= 3 {
		badges = append(badges, domain.Badge{
			Name:        "Community Hero",
			Icon:        "🏅",
			Description: "Completed 3 relief missions",
			EarnedAt:    now,
		})
	}
	if completedCamps >= 5 {
		badges = append(badges, domain.Badge{
			Name:        "Disaster Warrior",
			Icon:        "🔥",
			Description: "Completed 5 relief missions",
			EarnedAt:    now,
		})
	}
	if completedCamps >= 10 {
		badges = append(badges, domain.Badge{
			Name:        "LifePulse Champion",
			Icon:        "🌟",
			Description: "Completed 10 relief missions",
			EarnedAt:    now,
		})
	}
	return badges
}

// MergeBadges unions newly earned badges into the existing set, unique by
// name. Already-earned badges are never removed, even when the new set was
// computed from a lower count.
func MergeBadges(existing, earned []domain.Badge) []domain.Badge {
	merged := append([]domain.Badge{}, existing...)
	for _, b := range earned {
		found := false
		for _, have := range merged {
			if have.Name == b.Name {
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, b)
		}
	}
	return merged
}
