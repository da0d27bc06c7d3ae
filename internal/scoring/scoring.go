// Package scoring turns per-category evaluation data into an aggregate
// score, a tier, recommendation notes, and a follow-up priority.
// Every function here is pure; time enters only through a Clock.
package scoring

import (
	"math"

	"github.com/samber/lo"
)

// Tier is the ordinal classification of an aggregate score.
type Tier string

const (
	Tier1 Tier = "Tier1"
	Tier2 Tier = "Tier2"
	Tier3 Tier = "Tier3"
	Tier4 Tier = "Tier4"
)

// Score domain bounds and band thresholds.
const (
	MinScore = 0
	MaxScore = 1000

	tier1Floor = 800
	tier2Floor = 600
	tier3Floor = 400
)

type band int

const (
	bandOutOfRange band = iota
	bandTier1
	bandTier2
	bandTier3
	bandTier4
)

// bandOf is the single source of the score bands. ClassifyTier and
// RecommendationsFor both read it so they cannot drift apart.
func bandOf(score float64) band {
	switch {
	case math.IsNaN(score) || score < MinScore || score > MaxScore:
		return bandOutOfRange
	case score >= tier1Floor:
		return bandTier1
	case score >= tier2Floor:
		return bandTier2
	case score >= tier3Floor:
		return bandTier3
	default:
		return bandTier4
	}
}

var recommendations = map[band][]string{
	bandTier2: {
		"Optimize Operations.",
		"Prioritize High-Impact Projects.",
		"Enhance Partnerships.",
	},
	bandTier3: {
		"Address Process Inefficiencies.",
		"Identify Growth Opportunities.",
		"Increase Client Engagement.",
	},
	bandTier4: {
		"Assess and Restructure.",
		"Achieve Quick Wins.",
		"Refine Value Proposition.",
	},
}

// Aggregate sums score and preciseScore independently across the present
// categories. Absent categories and unset fields contribute zero.
func Aggregate(categories Categories) (score, precise float64) {
	present := lo.Compact(categories.List())

	score = lo.SumBy(present, func(c *Category) float64 {
		return lo.FromPtr(c.Score)
	})
	precise = lo.SumBy(present, func(c *Category) float64 {
		return lo.FromPtr(c.PreciseScore)
	})
	return score, precise
}

// ClassifyTier maps [800,1000] to Tier1, [600,800) to Tier2, [400,600) to
// Tier3, and everything else, including scores outside [0,1000], to Tier4.
func ClassifyTier(score float64) Tier {
	switch bandOf(score) {
	case bandTier1:
		return Tier1
	case bandTier2:
		return Tier2
	case bandTier3:
		return Tier3
	default:
		return Tier4
	}
}

// RecommendationsFor returns the fixed guidance for the band containing
// score. The Tier1 band and scores outside [0,1000] yield an empty, non-nil
// slice. The result is a fresh copy the caller may modify.
func RecommendationsFor(score float64) []string {
	notes := recommendations[bandOf(score)]
	out := make([]string, len(notes))
	copy(out, notes)
	return out
}

// Assessment is the score-derived part of an evaluation.
type Assessment struct {
	Tier                Tier
	RecommendationNotes []string
}

// Assess derives tier and recommendation notes from score.
func Assess(score float64) Assessment {
	return Assessment{
		Tier:                ClassifyTier(score),
		RecommendationNotes: RecommendationsFor(score),
	}
}
