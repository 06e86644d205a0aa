// Package taxcalc implements the progressive tax calculation core: bracket
// tax, CPP/EI payroll contributions, GST/HST consumption estimates, and the
// aggregate tax burden. Every function is pure; rate tables come in as an
// immutable rates.Schedule and results go out as typed structs.
package taxcalc

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/taxlens/taxlens/internal/rates"
)

// BreakdownLine is one bracket's contribution to a progressive tax total.
type BreakdownLine struct {
	Bracket       string  `json:"bracket"`
	Rate          string  `json:"rate"`
	TaxableAmount float64 `json:"taxable_amount"`
	TaxPaid       float64 `json:"tax_paid"`
	Calculation   string  `json:"calculation"`
}

// ComputeBracketTax walks a bracket table in ascending order and returns the
// total tax plus a per-bracket breakdown. basicPersonalAmount is subtracted
// from income (floored at zero) before any bracket applies; pass 0 for tables
// without an exemption.
//
// Intermediate bracket amounts keep full float precision; only the returned
// total is rounded to cents. Callers are responsible for rejecting negative
// income before calling.
func ComputeBracketTax(income float64, table rates.BracketTable, basicPersonalAmount float64) (float64, []BreakdownLine) {
	remaining := math.Max(0, income-basicPersonalAmount)

	tax := 0.0
	breakdown := make([]BreakdownLine, 0, len(table))

	for _, b := range table {
		if remaining <= 0 {
			break
		}

		taxable := remaining
		if !math.IsInf(b.Upper, 1) {
			taxable = math.Min(remaining, b.Upper-b.Lower)
		}

		paid := taxable * b.Rate
		tax += paid
		remaining -= taxable

		breakdown = append(breakdown, BreakdownLine{
			Bracket:       bracketLabel(b),
			Rate:          fmt.Sprintf("%.1f%%", b.Rate*100),
			TaxableAmount: taxable,
			TaxPaid:       paid,
			Calculation: fmt.Sprintf("$%s × %.1f%% = $%s",
				humanize.FormatFloat("#,###.##", taxable),
				b.Rate*100,
				humanize.FormatFloat("#,###.##", paid)),
		})
	}

	return roundCents(tax), breakdown
}

func bracketLabel(b rates.Bracket) string {
	if math.IsInf(b.Upper, 1) {
		return fmt.Sprintf("$%s - ∞", humanize.FormatFloat("#,###.", b.Lower))
	}
	return fmt.Sprintf("$%s - $%s",
		humanize.FormatFloat("#,###.", b.Lower),
		humanize.FormatFloat("#,###.", b.Upper))
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
