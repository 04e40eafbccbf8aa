package pricing

// Icon names one glyph of the fixed icon set
type Icon string

const (
	IconUsers      Icon = "users"
	IconZap        Icon = "zap"
	IconShield     Icon = "shield"
	IconStar       Icon = "star"
	IconCheck      Icon = "check"
	IconHeadphones Icon = "headphones"
)

// Plan describes one pricing tier as displayed. It is derived on every render, never stored.
type Plan struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Period      string   `json:"period"`
	Badge       *string  `json:"badge"`
	Icon        Icon     `json:"icon"`
	Features    []string `json:"features"`
	CTA         string   `json:"cta"`
	CTAHref     string   `json:"ctaHref"`
	Popular     bool     `json:"popular"`
}

// HasBadge reports whether the plan carries a non-empty badge label
func (p Plan) HasBadge() bool {
	return p.Badge != nil && *p.Badge != ""
}

// BadgeText returns the badge label or "" when the plan has none
func (p Plan) BadgeText() string {
	if p.Badge == nil {
		return ""
	}
	return *p.Badge
}

var (
	starterFeatures = []string{
		"Up to 5 team members",
		"10,000 API calls/month",
		"Basic dashboard & analytics",
		"Email support",
		"Standard templates",
		"Community access",
	}
	professionalFeatures = []string{
		"Unlimited team members",
		"500,000 API calls/month",
		"Advanced analytics & reporting",
		"Priority support (24/7)",
		"Custom integrations",
		"Advanced security features",
		"White-label options",
		"A/B testing tools",
	}
	enterpriseFeatures = []string{
		"Everything in Professional",
		"Unlimited API calls",
		"Dedicated account manager",
		"Custom SLA agreements",
		"On-premise deployment",
		"Advanced compliance (SOC2, HIPAA)",
		"Custom training & onboarding",
		"24/7 phone support",
	}
)

// BuildPlans derives the three plans, in display order, from a resolved config
// and the current billing cycle. Only the Professional price depends on the cycle.
func BuildPlans(cfg Config, cycle BillingCycle) []Plan {
	professionalPrice := cfg.Plan2Price
	if cycle.IsAnnual() {
		professionalPrice = AnnualProfessionalPrice
	}

	plan2Badge := cfg.Plan2Badge
	plan3Badge := cfg.Plan3Badge

	return []Plan{
		{
			Name:        cfg.Plan1Name,
			Description: cfg.Plan1Description,
			Price:       cfg.Plan1Price,
			Period:      "",
			Badge:       nil,
			Icon:        IconUsers,
			Features:    cloneStrings(starterFeatures),
			CTA:         cfg.Plan1CTA,
			CTAHref:     cfg.Plan1CTAHref,
			Popular:     false,
		},
		{
			Name:        cfg.Plan2Name,
			Description: cfg.Plan2Description,
			Price:       professionalPrice,
			Period:      cfg.Plan2Period,
			Badge:       &plan2Badge,
			Icon:        IconZap,
			Features:    cloneStrings(professionalFeatures),
			CTA:         cfg.Plan2CTA,
			CTAHref:     cfg.Plan2CTAHref,
			Popular:     true,
		},
		{
			Name:        cfg.Plan3Name,
			Description: cfg.Plan3Description,
			Price:       cfg.Plan3Price,
			Period:      "",
			Badge:       &plan3Badge,
			Icon:        IconShield,
			Features:    cloneStrings(enterpriseFeatures),
			CTA:         cfg.Plan3CTA,
			CTAHref:     cfg.Plan3CTAHref,
			Popular:     false,
		},
	}
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
