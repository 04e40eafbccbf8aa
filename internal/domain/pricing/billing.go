package pricing

// BillingCycle selects which price the Professional plan shows
type BillingCycle string

const (
	BillingMonthly BillingCycle = "monthly"
	BillingAnnual  BillingCycle = "annual"
)

const (
	// AnnualProfessionalPrice replaces plan2Price while the annual cycle is selected.
	AnnualProfessionalPrice = "$39"
	// AnnualSavingsNote is shown under the Professional price on the annual cycle.
	AnnualSavingsNote = "Save $120/year"
)

// ParseBillingCycle maps a query value to a cycle. Anything other than "annual" is monthly.
func ParseBillingCycle(s string) BillingCycle {
	if BillingCycle(s) == BillingAnnual {
		return BillingAnnual
	}
	return BillingMonthly
}

func (b BillingCycle) IsAnnual() bool { return b == BillingAnnual }

// Toggled returns the other cycle
func (b BillingCycle) Toggled() BillingCycle {
	if b.IsAnnual() {
		return BillingMonthly
	}
	return BillingAnnual
}
