package pricing

import (
	"github.com/mitchellh/mapstructure"
)

// Config is the complete set of text and link fields shown by the pricing section.
// Field keys (mapstructure/json tags) double as the data-editable identifiers.
type Config struct {
	Badge              string `mapstructure:"badge" json:"badge"`
	MainTitle          string `mapstructure:"mainTitle" json:"mainTitle"`
	MainTitleHighlight string `mapstructure:"mainTitleHighlight" json:"mainTitleHighlight"`
	MainDescription    string `mapstructure:"mainDescription" json:"mainDescription"`

	BillingMonthly     string `mapstructure:"billingMonthly" json:"billingMonthly"`
	BillingAnnual      string `mapstructure:"billingAnnual" json:"billingAnnual"`
	BillingAnnualBadge string `mapstructure:"billingAnnualBadge" json:"billingAnnualBadge"`

	Plan1Name        string `mapstructure:"plan1Name" json:"plan1Name"`
	Plan1Description string `mapstructure:"plan1Description" json:"plan1Description"`
	Plan1Price       string `mapstructure:"plan1Price" json:"plan1Price"`
	Plan1CTA         string `mapstructure:"plan1CTA" json:"plan1CTA"`
	Plan1CTAHref     string `mapstructure:"plan1CTAHref" json:"plan1CTAHref"`

	Plan2Name        string `mapstructure:"plan2Name" json:"plan2Name"`
	Plan2Description string `mapstructure:"plan2Description" json:"plan2Description"`
	Plan2Price       string `mapstructure:"plan2Price" json:"plan2Price"`
	Plan2Period      string `mapstructure:"plan2Period" json:"plan2Period"`
	Plan2Badge       string `mapstructure:"plan2Badge" json:"plan2Badge"`
	Plan2CTA         string `mapstructure:"plan2CTA" json:"plan2CTA"`
	Plan2CTAHref     string `mapstructure:"plan2CTAHref" json:"plan2CTAHref"`
	Plan2Trial       string `mapstructure:"plan2Trial" json:"plan2Trial"`

	Plan3Name        string `mapstructure:"plan3Name" json:"plan3Name"`
	Plan3Description string `mapstructure:"plan3Description" json:"plan3Description"`
	Plan3Price       string `mapstructure:"plan3Price" json:"plan3Price"`
	Plan3Badge       string `mapstructure:"plan3Badge" json:"plan3Badge"`
	Plan3CTA         string `mapstructure:"plan3CTA" json:"plan3CTA"`
	Plan3CTAHref     string `mapstructure:"plan3CTAHref" json:"plan3CTAHref"`

	BottomTitle       string `mapstructure:"bottomTitle" json:"bottomTitle"`
	BottomDescription string `mapstructure:"bottomDescription" json:"bottomDescription"`
	BottomCTA         string `mapstructure:"bottomCTA" json:"bottomCTA"`
	BottomCTAHref     string `mapstructure:"bottomCTAHref" json:"bottomCTAHref"`
}

// Overrides is a partial Config keyed by field name.
type Overrides map[string]string

// DefaultConfig returns the built-in content of the section.
func DefaultConfig() Config {
	return Config{
		Badge:              "Flexible Pricing",
		MainTitle:          "Scale with confidence",
		MainTitleHighlight: "Pay as you grow",
		MainDescription:    "Start free and upgrade when you're ready. No setup fees, no long-term contracts. Switch plans anytime with just one click.",

		BillingMonthly:     "Monthly",
		BillingAnnual:      "Annual",
		BillingAnnualBadge: "Save 25%",

		Plan1Name:        "Starter",
		Plan1Description: "Perfect for solo developers and small teams getting started",
		Plan1Price:       "$0",
		Plan1CTA:         "Start Building Free",
		Plan1CTAHref:     "/signup",

		Plan2Name:        "Professional",
		Plan2Description: "Ideal for growing teams and production applications",
		Plan2Price:       "$49",
		Plan2Period:      "/month",
		Plan2Badge:       "Most Popular",
		Plan2CTA:         "Start 14-Day Trial",
		Plan2CTAHref:     "/signup",
		Plan2Trial:       "14-day free trial • No credit card required",

		Plan3Name:        "Enterprise",
		Plan3Description: "Advanced features for large-scale deployments",
		Plan3Price:       "Custom",
		Plan3Badge:       "White Glove Setup",
		Plan3CTA:         "Contact Sales",
		Plan3CTAHref:     "/contact",

		BottomTitle:       "Need a custom solution?",
		BottomDescription: "Our enterprise team works with Fortune 500 companies to build tailored solutions that scale. Get dedicated support, custom integrations, and SLA guarantees.",
		BottomCTA:         "Schedule Enterprise Demo",
		BottomCTAHref:     "/demo",
	}
}

// Resolve overlays overrides onto defaults field by field.
// Keys must match exactly; unknown keys are ignored and an empty string is a valid value.
func Resolve(defaults Config, overrides Overrides) Config {
	resolved := defaults
	if len(overrides) == 0 {
		return resolved
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:    &resolved,
		MatchName: func(mapKey, fieldName string) bool { return mapKey == fieldName },
	})
	if err != nil {
		return defaults
	}
	// All targets are strings and so are all inputs; Decode cannot fail here.
	if err := decoder.Decode(map[string]string(overrides)); err != nil {
		return defaults
	}
	return resolved
}

// ResolveDefaults is Resolve over DefaultConfig.
func ResolveDefaults(overrides Overrides) Config {
	return Resolve(DefaultConfig(), overrides)
}

// Fields returns the config as a key -> value map.
func (c Config) Fields() map[string]string {
	out := make(map[string]string, len(fieldKeys))
	for _, key := range fieldKeys {
		out[key] = c.Get(key)
	}
	return out
}

// Get returns the value of a field by key, or "" for an unknown key.
func (c Config) Get(key string) string {
	if p := c.field(key); p != nil {
		return *p
	}
	return ""
}

func (c *Config) field(key string) *string {
	switch key {
	case "badge":
		return &c.Badge
	case "mainTitle":
		return &c.MainTitle
	case "mainTitleHighlight":
		return &c.MainTitleHighlight
	case "mainDescription":
		return &c.MainDescription
	case "billingMonthly":
		return &c.BillingMonthly
	case "billingAnnual":
		return &c.BillingAnnual
	case "billingAnnualBadge":
		return &c.BillingAnnualBadge
	case "plan1Name":
		return &c.Plan1Name
	case "plan1Description":
		return &c.Plan1Description
	case "plan1Price":
		return &c.Plan1Price
	case "plan1CTA":
		return &c.Plan1CTA
	case "plan1CTAHref":
		return &c.Plan1CTAHref
	case "plan2Name":
		return &c.Plan2Name
	case "plan2Description":
		return &c.Plan2Description
	case "plan2Price":
		return &c.Plan2Price
	case "plan2Period":
		return &c.Plan2Period
	case "plan2Badge":
		return &c.Plan2Badge
	case "plan2CTA":
		return &c.Plan2CTA
	case "plan2CTAHref":
		return &c.Plan2CTAHref
	case "plan2Trial":
		return &c.Plan2Trial
	case "plan3Name":
		return &c.Plan3Name
	case "plan3Description":
		return &c.Plan3Description
	case "plan3Price":
		return &c.Plan3Price
	case "plan3Badge":
		return &c.Plan3Badge
	case "plan3CTA":
		return &c.Plan3CTA
	case "plan3CTAHref":
		return &c.Plan3CTAHref
	case "bottomTitle":
		return &c.BottomTitle
	case "bottomDescription":
		return &c.BottomDescription
	case "bottomCTA":
		return &c.BottomCTA
	case "bottomCTAHref":
		return &c.BottomCTAHref
	}
	return nil
}

var fieldKeys = []string{
	"badge",
	"mainTitle",
	"mainTitleHighlight",
	"mainDescription",
	"billingMonthly",
	"billingAnnual",
	"billingAnnualBadge",
	"plan1Name",
	"plan1Description",
	"plan1Price",
	"plan1CTA",
	"plan1CTAHref",
	"plan2Name",
	"plan2Description",
	"plan2Price",
	"plan2Period",
	"plan2Badge",
	"plan2CTA",
	"plan2CTAHref",
	"plan2Trial",
	"plan3Name",
	"plan3Description",
	"plan3Price",
	"plan3Badge",
	"plan3CTA",
	"plan3CTAHref",
	"bottomTitle",
	"bottomDescription",
	"bottomCTA",
	"bottomCTAHref",
}

// FieldKeys returns every configuration key in table order.
func FieldKeys() []string {
	out := make([]string, len(fieldKeys))
	copy(out, fieldKeys)
	return out
}

// IsField reports whether key names a configuration field.
func IsField(key string) bool {
	var c Config
	return c.field(key) != nil
}
