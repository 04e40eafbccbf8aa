package pricing

import "fmt"

// Header is the title block above the toggle
type Header struct {
	Badge              string `json:"badge"`
	MainTitle          string `json:"mainTitle"`
	MainTitleHighlight string `json:"mainTitleHighlight"`
	MainDescription    string `json:"mainDescription"`
}

// ToggleOption is one button of the billing toggle
type ToggleOption struct {
	Cycle      BillingCycle `json:"cycle"`
	Label      string       `json:"label"`
	Field      string       `json:"field"`
	Badge      string       `json:"badge,omitempty"`
	BadgeField string       `json:"badgeField,omitempty"`
	Active     bool         `json:"active"`
}

// CTALink is a call-to-action control together with the keys that produced it
type CTALink struct {
	Field     string `json:"field"`
	HrefField string `json:"hrefField"`
	Label     string `json:"label"`
	Href      string `json:"href"`
}

// PlanCard is a Plan plus the presentation decisions made for it
type PlanCard struct {
	Plan

	Index            int    `json:"index"`
	NameField        string `json:"nameField"`
	DescriptionField string `json:"descriptionField"`
	PriceField       string `json:"priceField"`
	PeriodField      string `json:"periodField,omitempty"`
	BadgeField       string `json:"badgeField,omitempty"`

	ShowRibbon      bool `json:"showRibbon"`
	ShowInlineBadge bool `json:"showInlineBadge"`
	ShowPeriod      bool `json:"showPeriod"`

	RibbonIcon  Icon `json:"ribbonIcon,omitempty"`
	FeatureIcon Icon `json:"featureIcon"`
	// CTAIcon is drawn inside the button of the popular plan only.
	CTAIcon Icon `json:"ctaIcon,omitempty"`

	SavingsNote string `json:"savingsNote,omitempty"`
	Trial       string `json:"trial,omitempty"`
	TrialField  string `json:"trialField,omitempty"`

	Button CTALink `json:"button"`
}

func (c PlanCard) ShowSavings() bool { return c.SavingsNote != "" }
func (c PlanCard) ShowTrial() bool   { return c.TrialField != "" }

// Bottom is the closing call-to-action panel
type Bottom struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Icon        Icon    `json:"icon"`
	Button      CTALink `json:"button"`
}

// Section is everything the template needs for one render, plus the
// editable-field metadata used by in-place editing tools.
type Section struct {
	Cycle  BillingCycle   `json:"cycle"`
	Header Header         `json:"header"`
	Toggle []ToggleOption `json:"toggle"`
	Plans  []PlanCard     `json:"plans"`
	Bottom Bottom         `json:"bottom"`

	// Editable maps every rendered data-editable key to the text rendered for it.
	Editable map[string]string `json:"editable"`
	// Links lists every CTA with its resolved destination.
	Links []CTALink `json:"links"`
}

var ctaHrefFields = map[string]string{
	"plan1CTA":  "plan1CTAHref",
	"plan2CTA":  "plan2CTAHref",
	"plan3CTA":  "plan3CTAHref",
	"bottomCTA": "bottomCTAHref",
}

// ResolveCTA returns the destination of a call-to-action control identified by its label key.
func ResolveCTA(cfg Config, field string) (CTALink, error) {
	hrefField, ok := ctaHrefFields[field]
	if !ok {
		return CTALink{}, &CTAError{Field: field, Err: ErrUnknownCTA}
	}
	return CTALink{
		Field:     field,
		HrefField: hrefField,
		Label:     cfg.Get(field),
		Href:      cfg.Get(hrefField),
	}, nil
}

// BuildSection derives the full view model from a resolved config and billing cycle.
func BuildSection(cfg Config, cycle BillingCycle) Section {
	s := Section{
		Cycle: cycle,
		Header: Header{
			Badge:              cfg.Badge,
			MainTitle:          cfg.MainTitle,
			MainTitleHighlight: cfg.MainTitleHighlight,
			MainDescription:    cfg.MainDescription,
		},
		Toggle: []ToggleOption{
			{
				Cycle:  BillingMonthly,
				Label:  cfg.BillingMonthly,
				Field:  "billingMonthly",
				Active: !cycle.IsAnnual(),
			},
			{
				Cycle:      BillingAnnual,
				Label:      cfg.BillingAnnual,
				Field:      "billingAnnual",
				Badge:      cfg.BillingAnnualBadge,
				BadgeField: "billingAnnualBadge",
				Active:     cycle.IsAnnual(),
			},
		},
		Editable: map[string]string{
			"badge":              cfg.Badge,
			"mainTitle":          cfg.MainTitle,
			"mainTitleHighlight": cfg.MainTitleHighlight,
			"mainDescription":    cfg.MainDescription,
			"billingMonthly":     cfg.BillingMonthly,
			"billingAnnual":      cfg.BillingAnnual,
			"billingAnnualBadge": cfg.BillingAnnualBadge,
		},
	}

	for i, p := range BuildPlans(cfg, cycle) {
		card := buildCard(cfg, cycle, i+1, p)
		s.Plans = append(s.Plans, card)
		s.Links = append(s.Links, card.Button)

		s.Editable[card.NameField] = p.Name
		s.Editable[card.DescriptionField] = p.Description
		s.Editable[card.PriceField] = p.Price
		s.Editable[card.Button.Field] = p.CTA
		if card.ShowPeriod {
			s.Editable[card.PeriodField] = p.Period
		}
		if card.ShowRibbon || card.ShowInlineBadge {
			s.Editable[card.BadgeField] = *p.Badge
		}
		if card.ShowTrial() {
			s.Editable[card.TrialField] = card.Trial
		}
	}

	bottomCTA := CTALink{
		Field:     "bottomCTA",
		HrefField: "bottomCTAHref",
		Label:     cfg.BottomCTA,
		Href:      cfg.BottomCTAHref,
	}
	s.Bottom = Bottom{
		Title:       cfg.BottomTitle,
		Description: cfg.BottomDescription,
		Icon:        IconHeadphones,
		Button:      bottomCTA,
	}
	s.Links = append(s.Links, bottomCTA)
	s.Editable["bottomTitle"] = cfg.BottomTitle
	s.Editable["bottomDescription"] = cfg.BottomDescription
	s.Editable["bottomCTA"] = cfg.BottomCTA

	return s
}

func buildCard(cfg Config, cycle BillingCycle, index int, p Plan) PlanCard {
	card := PlanCard{
		Plan:             p,
		Index:            index,
		NameField:        fmt.Sprintf("plan%dName", index),
		DescriptionField: fmt.Sprintf("plan%dDescription", index),
		PriceField:       fmt.Sprintf("plan%dPrice", index),
		ShowPeriod:       p.Period != "",
		FeatureIcon:      IconCheck,
		Button: CTALink{
			Field:     fmt.Sprintf("plan%dCTA", index),
			HrefField: fmt.Sprintf("plan%dCTAHref", index),
			Label:     p.CTA,
			Href:      p.CTAHref,
		},
	}

	// Fixed identifiers: the ribbon always edits plan2Badge, the inline badge plan3Badge,
	// and the period plan2Period, whichever card they end up on.
	if card.ShowPeriod {
		card.PeriodField = "plan2Period"
	}
	switch {
	case p.Popular:
		card.ShowRibbon = true
		card.BadgeField = "plan2Badge"
		card.RibbonIcon = IconStar
		card.CTAIcon = IconZap
	case p.HasBadge():
		card.ShowInlineBadge = true
		card.BadgeField = "plan3Badge"
	}

	if p.Name == cfg.Plan2Name {
		if cycle.IsAnnual() {
			card.SavingsNote = AnnualSavingsNote
		}
		card.Trial = cfg.Plan2Trial
		card.TrialField = "plan2Trial"
	}
	return card
}

// View owns the billing-cycle state for one rendered pricing section.
type View struct {
	cfg   Config
	cycle BillingCycle
}

// NewView starts a view on the monthly cycle.
func NewView(cfg Config) *View {
	return &View{cfg: cfg, cycle: BillingMonthly}
}

func (v *View) Cycle() BillingCycle { return v.cycle }

func (v *View) SetCycle(cycle BillingCycle) {
	if cycle != BillingAnnual {
		cycle = BillingMonthly
	}
	v.cycle = cycle
}

// Toggle flips the cycle and returns the new one
func (v *View) Toggle() BillingCycle {
	v.cycle = v.cycle.Toggled()
	return v.cycle
}

func (v *View) Plans() []Plan { return BuildPlans(v.cfg, v.cycle) }

func (v *View) Section() Section { return BuildSection(v.cfg, v.cycle) }

// Activate dispatches the call-to-action identified by its label key:
// navigate is invoked exactly once with the resolved destination.
func (v *View) Activate(field string, navigate func(href string)) (CTALink, error) {
	link, err := ResolveCTA(v.cfg, field)
	if err != nil {
		return CTALink{}, err
	}
	navigate(link.Href)
	return link, nil
}
