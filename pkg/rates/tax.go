package rates

import "slices"

const DefaultTaxRate = 40

var taxRates = []int{20, 40, 45}

// TaxRates returns the selectable flat tax percentages.
func TaxRates() []int {
	return slices.Clone(taxRates)
}

func IsValidTaxRate(pct int) bool {
	return slices.Contains(taxRates, pct)
}
