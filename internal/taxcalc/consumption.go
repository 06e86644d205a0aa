package taxcalc

import (
	"fmt"

	"github.com/taxlens/taxlens/internal/rates"
)

// SpendingCategory is one slice of the fixed after-tax spending model.
type SpendingCategory struct {
	Name    string
	Share   float64
	Taxable bool
}

// SpendingCategories returns the fixed spending allocation model. Shares sum
// to 1.0; the taxable flag marks categories subject to GST/HST.
func SpendingCategories() []SpendingCategory {
	return []SpendingCategory{
		{"Housing (GST/HST exempt)", 0.35, false},
		{"Groceries (mostly exempt)", 0.15, false},
		{"Transportation", 0.12, true},
		{"Entertainment & Dining", 0.10, true},
		{"Shopping & Misc", 0.18, true},
		{"Savings & Investments", 0.10, false},
	}
}

// CategoryBreakdown is one spending category's monthly figures.
type CategoryBreakdown struct {
	Category      string  `json:"category"`
	MonthlyAmount float64 `json:"monthly_amount"`
	MonthlyGSTHST float64 `json:"monthly_gst_hst"`
	Taxable       bool    `json:"taxable"`
}

// ConsumptionTaxResult estimates the yearly GST/HST paid out of after-tax
// income under the fixed spending model.
type ConsumptionTaxResult struct {
	Tax                float64             `json:"tax"`
	Rate               float64             `json:"rate"`
	TaxableSpending    float64             `json:"taxable_spending"`
	NonTaxableSpending float64             `json:"non_taxable_spending"`
	TaxableRatio       float64             `json:"taxable_ratio"`
	MonthlyBreakdown   []CategoryBreakdown `json:"monthly_breakdown"`
	RateExplanation    string              `json:"rate_explanation"`
}

// ComputeConsumptionTax allocates after-tax income across the spending model
// and computes GST/HST on the taxable portion. Jurisdictions missing from the
// schedule's GST/HST map fall back to the bare 5% GST by policy.
func ComputeConsumptionTax(afterTaxIncome float64, province rates.Province, schedule *rates.Schedule) ConsumptionTaxResult {
	rate := schedule.GSTHSTRate(province)

	var taxable, nonTaxable float64
	categories := SpendingCategories()
	breakdown := make([]CategoryBreakdown, 0, len(categories))

	for _, c := range categories {
		amount := afterTaxIncome * c.Share
		gstHST := 0.0
		if c.Taxable {
			gstHST = amount * rate
			taxable += amount
		} else {
			nonTaxable += amount
		}

		breakdown = append(breakdown, CategoryBreakdown{
			Category:      c.Name,
			MonthlyAmount: amount / 12,
			MonthlyGSTHST: gstHST / 12,
			Taxable:       c.Taxable,
		})
	}

	taxableRatio := 0.0
	if afterTaxIncome > 0 {
		taxableRatio = taxable / afterTaxIncome
	}

	return ConsumptionTaxResult{
		Tax:                taxable * rate,
		Rate:               rate,
		TaxableSpending:    taxable,
		NonTaxableSpending: nonTaxable,
		TaxableRatio:       taxableRatio,
		MonthlyBreakdown:   breakdown,
		RateExplanation:    fmt.Sprintf("Using %s rate of %.1f%%", province, rate*100),
	}
}
