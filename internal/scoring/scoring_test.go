package scoring_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/assay/internal/scoring"
)

var (
	tier2Notes = []string{"Optimize Operations.", "Prioritize High-Impact Projects.", "Enhance Partnerships."}
	tier3Notes = []string{"Address Process Inefficiencies.", "Identify Growth Opportunities.", "Increase Client Engagement."}
	tier4Notes = []string{"Assess and Restructure.", "Achieve Quick Wins.", "Refine Value Proposition."}
)

func TestClassifyTierAndRecommendations(t *testing.T) {
	tests := []struct {
		name      string
		score     float64
		wantTier  scoring.Tier
		wantNotes []string
	}{
		{"top of range", 1000, scoring.Tier1, []string{}},
		{"tier1 floor", 800, scoring.Tier1, []string{}},
		{"tier1 interior", 950, scoring.Tier1, []string{}},
		{"just below tier1", 799.99, scoring.Tier2, tier2Notes},
		{"tier2 interior", 750, scoring.Tier2, tier2Notes},
		{"tier2 floor", 600, scoring.Tier2, tier2Notes},
		{"just below tier2", 599.5, scoring.Tier3, tier3Notes},
		{"tier3 floor", 400, scoring.Tier3, tier3Notes},
		{"just below tier3", 399.9, scoring.Tier4, tier4Notes},
		{"tier4 interior", 350, scoring.Tier4, tier4Notes},
		{"zero", 0, scoring.Tier4, tier4Notes},
		{"negative", -1, scoring.Tier4, []string{}},
		{"above range", 1000.01, scoring.Tier4, []string{}},
		{"far above range", 5000, scoring.Tier4, []string{}},
		{"nan", math.NaN(), scoring.Tier4, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantTier, scoring.ClassifyTier(tt.score))

			notes := scoring.RecommendationsFor(tt.score)
			require.NotNil(t, notes)
			assert.Equal(t, tt.wantNotes, notes)
		})
	}
}

func TestTierAndRecommendationsShareBands(t *testing.T) {
	notesByTier := map[scoring.Tier][]string{
		scoring.Tier1: {},
		scoring.Tier2: tier2Notes,
		scoring.Tier3: tier3Notes,
		scoring.Tier4: tier4Notes,
	}

	r := rand.New(rand.NewPCG(1, 2))
	for range 5000 {
		score := r.Float64() * 1000
		tier := scoring.ClassifyTier(score)
		assert.Equal(t, notesByTier[tier], scoring.RecommendationsFor(score), "score %v", score)
	}

	for s := 0; s <= 1000; s++ {
		tier := scoring.ClassifyTier(float64(s))
		assert.Equal(t, notesByTier[tier], scoring.RecommendationsFor(float64(s)), "score %d", s)
	}
}

func TestRecommendationsForReturnsCopy(t *testing.T) {
	notes := scoring.RecommendationsFor(700)
	notes[0] = "mutated"

	assert.Equal(t, tier2Notes, scoring.RecommendationsFor(700))
}

func TestAssess(t *testing.T) {
	a := scoring.Assess(750)
	assert.Equal(t, scoring.Tier2, a.Tier)
	assert.Equal(t, tier2Notes, a.RecommendationNotes)

	a = scoring.Assess(950)
	assert.Equal(t, scoring.Tier1, a.Tier)
	assert.Empty(t, a.RecommendationNotes)
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name        string
		categories  scoring.Categories
		wantScore   float64
		wantPrecise float64
	}{
		{"empty mapping", scoring.Categories{}, 0, 0},
		{
			"present but empty category",
			scoring.Categories{FinancialHealth: &scoring.Category{}},
			0, 0,
		},
		{
			"independent sums",
			scoring.Categories{
				FinancialHealth: &scoring.Category{Score: lo.ToPtr(100.0), PreciseScore: lo.ToPtr(95.5)},
				StrategicFit:    &scoring.Category{Score: lo.ToPtr(50.0), PreciseScore: lo.ToPtr(60.25)},
			},
			150, 155.75,
		},
		{
			"missing fields count as zero",
			scoring.Categories{
				FinancialHealth: &scoring.Category{Score: lo.ToPtr(100.0)},
				RiskProfile:     &scoring.Category{PreciseScore: lo.ToPtr(42.0)},
			},
			100, 42,
		},
		{
			"totalScore and sub-metrics are not summed",
			scoring.Categories{
				TokenMetrics: &scoring.Category{TotalScore: lo.ToPtr(500.0), MarketCap: lo.ToPtr(9.0)},
			},
			0, 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, precise := scoring.Aggregate(tt.categories)
			assert.InDelta(t, tt.wantScore, score, 1e-9)
			assert.InDelta(t, tt.wantPrecise, precise, 1e-9)
		})
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50, 60, 70}

	build := func(order []int) scoring.Categories {
		var c scoring.Categories
		slots := []**scoring.Category{
			&c.FinancialHealth, &c.StrategicFit, &c.OperationalExcellence,
			&c.TokenMetrics, &c.MarketingBrand, &c.MarketVision, &c.RiskProfile,
		}
		for i, idx := range order {
			*slots[i] = &scoring.Category{Score: lo.ToPtr(values[idx]), PreciseScore: lo.ToPtr(values[idx] / 2)}
		}
		return c
	}

	s1, p1 := scoring.Aggregate(build([]int{0, 1, 2, 3, 4, 5, 6}))
	s2, p2 := scoring.Aggregate(build([]int{6, 5, 4, 3, 2, 1, 0}))
	s3, p3 := scoring.Aggregate(build([]int{3, 0, 6, 1, 5, 2, 4}))

	assert.Equal(t, 280.0, s1)
	assert.Equal(t, 140.0, p1)
	assert.Equal(t, s1, s2)
	assert.Equal(t, s1, s3)
	assert.Equal(t, p1, p2)
	assert.Equal(t, p1, p3)
}
