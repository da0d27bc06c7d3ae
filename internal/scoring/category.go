package scoring

// Category holds the sub-metrics of one evaluation dimension plus its
// score fields. Every field is optional; nil means "not supplied".
type Category struct {
	Score        *float64 `json:"score,omitempty"`
	TotalScore   *float64 `json:"totalScore,omitempty"`
	PreciseScore *float64 `json:"preciseScore,omitempty"`

	RevenuePotential     *float64 `json:"revenuePotential,omitempty"`
	FundingStage         *float64 `json:"fundingStage,omitempty"`
	BudgetCommitment     *float64 `json:"budgetCommitment,omitempty"`
	Liquidity            *float64 `json:"liquidity,omitempty"`
	PaymentTimeliness    *float64 `json:"paymentTimeliness,omitempty"`
	IndustryRelevance    *float64 `json:"industryRelevance,omitempty"`
	GeographicTargeting  *float64 `json:"geographicTargeting,omitempty"`
	RegulatoryCompliance *float64 `json:"regulatoryCompliance,omitempty"`
	PartnershipPotential *float64 `json:"partnershipPotential,omitempty"`
	OnBoardingProcess    *float64 `json:"onBoardingProcess,omitempty"`
	ResourceUtilization  *float64 `json:"resourceUtilization,omitempty"`
	ProjectTimeliness    *float64 `json:"projectTimeliness,omitempty"`
	MarketCap            *float64 `json:"marketCap,omitempty"`
	HolderDistribution   *float64 `json:"holderDistribution,omitempty"`
	Stability            *float64 `json:"stability,omitempty"`
	CommunitySize        *float64 `json:"communitySize,omitempty"`
	SocialMediaInfluence *float64 `json:"socialMediaInfluence,omitempty"`
	InfluencerReach      *float64 `json:"influencerReach,omitempty"`
	ContentQuality       *float64 `json:"contentQuality,omitempty"`
	BrandAlignment       *float64 `json:"brandAlignment,omitempty"`
	MarketScalability    *float64 `json:"marketScalability,omitempty"`
	MarketOpportunity    *float64 `json:"marketOpportunity,omitempty"`
	FoundersBackground   *float64 `json:"foundersBackground,omitempty"`
	StrategicVision      *float64 `json:"strategicVision,omitempty"`
	RegulatoryExposure   *float64 `json:"regulatoryExposure,omitempty"`
	FinancialStability   *float64 `json:"financialStability,omitempty"`
	Reputation           *float64 `json:"reputation,omitempty"`
}

func (c *Category) fields() []**float64 {
	return []**float64{
		&c.Score, &c.TotalScore, &c.PreciseScore,
		&c.RevenuePotential, &c.FundingStage, &c.BudgetCommitment,
		&c.Liquidity, &c.PaymentTimeliness, &c.IndustryRelevance,
		&c.GeographicTargeting, &c.RegulatoryCompliance, &c.PartnershipPotential,
		&c.OnBoardingProcess, &c.ResourceUtilization, &c.ProjectTimeliness,
		&c.MarketCap, &c.HolderDistribution, &c.Stability,
		&c.CommunitySize, &c.SocialMediaInfluence, &c.InfluencerReach,
		&c.ContentQuality, &c.BrandAlignment, &c.MarketScalability,
		&c.MarketOpportunity, &c.FoundersBackground, &c.StrategicVision,
		&c.RegulatoryExposure, &c.FinancialStability, &c.Reputation,
	}
}

// Clone returns a deep copy. The result shares no pointers with c.
func (c *Category) Clone() *Category {
	if c == nil {
		return nil
	}
	var out Category
	return out.Merge(c)
}

// Merge returns a copy of c in which every field supplied by partial
// overwrites the corresponding field of c. Fields partial leaves nil are
// kept, including those sent as JSON null. Neither argument is modified.
func (c *Category) Merge(partial *Category) *Category {
	var out Category
	if c != nil {
		out = *c
	}

	dst := out.fields()
	if partial != nil {
		for i, src := range partial.fields() {
			if *src != nil {
				*dst[i] = *src
			}
		}
	}

	for _, f := range dst {
		if *f != nil {
			v := **f
			*f = &v
		}
	}
	return &out
}

// Category names in the order they appear on an evaluation.
const (
	FinancialHealth       = "financialHealth"
	StrategicFit          = "strategicFit"
	OperationalExcellence = "operationalExcellence"
	TokenMetrics          = "tokenMetrics"
	MarketingBrand        = "marketingBrand"
	MarketVision          = "marketVision"
	RiskProfile           = "riskProfile"
)

// Names lists the seven category names.
var Names = []string{
	FinancialHealth,
	StrategicFit,
	OperationalExcellence,
	TokenMetrics,
	MarketingBrand,
	MarketVision,
	RiskProfile,
}

// Categories is the fixed-key category mapping of an evaluation.
// A nil entry is an absent category; a non-nil empty Category is present
// with no fields supplied.
type Categories struct {
	FinancialHealth       *Category `json:"financialHealth,omitempty"`
	StrategicFit          *Category `json:"strategicFit,omitempty"`
	OperationalExcellence *Category `json:"operationalExcellence,omitempty"`
	TokenMetrics          *Category `json:"tokenMetrics,omitempty"`
	MarketingBrand        *Category `json:"marketingBrand,omitempty"`
	MarketVision          *Category `json:"marketVision,omitempty"`
	RiskProfile           *Category `json:"riskProfile,omitempty"`
}

func (c *Categories) slots() []**Category {
	return []**Category{
		&c.FinancialHealth,
		&c.StrategicFit,
		&c.OperationalExcellence,
		&c.TokenMetrics,
		&c.MarketingBrand,
		&c.MarketVision,
		&c.RiskProfile,
	}
}

// List returns the seven entries in Names order, nil for absent categories.
func (c Categories) List() []*Category {
	slots := c.slots()
	out := make([]*Category, len(slots))
	for i, s := range slots {
		out[i] = *s
	}
	return out
}

// Get returns the named category, or nil when absent or the name is unknown.
func (c Categories) Get(name string) *Category {
	for i, n := range Names {
		if n == name {
			return c.List()[i]
		}
	}
	return nil
}

// Present returns the names of the categories that are not absent.
func (c Categories) Present() []string {
	var names []string
	for i, cat := range c.List() {
		if cat != nil {
			names = append(names, Names[i])
		}
	}
	return names
}

// Merge applies a partial update key by key. A category absent from
// partial is left untouched; a category present in partial is merged
// field by field into the existing one, or installed whole when the
// existing one is absent. Neither argument is modified.
func (c Categories) Merge(partial Categories) Categories {
	var out Categories
	dst := out.slots()
	cur := c.slots()

	for i, p := range partial.slots() {
		switch {
		case *p == nil:
			*dst[i] = (*cur[i]).Clone()
		case *cur[i] == nil:
			*dst[i] = (*p).Clone()
		default:
			*dst[i] = (*cur[i]).Merge(*p)
		}
	}
	return out
}
