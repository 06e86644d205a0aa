package taxcalc

import (
	"errors"
	"fmt"

	"github.com/taxlens/taxlens/internal/rates"
)

var (
	// ErrInvalidInput reports a negative income or unrecognized employment type.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownJurisdiction reports a province with no income-tax bracket table.
	ErrUnknownJurisdiction = errors.New("unknown jurisdiction")
)

// PayPeriod holds gross, deductions, and net for one pay frequency.
type PayPeriod struct {
	Gross      float64 `json:"gross"`
	Deductions float64 `json:"deductions"`
	Net        float64 `json:"net"`
}

// PayPeriods projects take-home pay across common pay frequencies.
type PayPeriods struct {
	Yearly   PayPeriod `json:"yearly"`
	Monthly  PayPeriod `json:"monthly"`
	Biweekly PayPeriod `json:"biweekly"`
	Weekly   PayPeriod `json:"weekly"`
}

// TaxRates holds the derived percentage rates. All are 0 when income is 0.
type TaxRates struct {
	TotalTaxRate    float64 `json:"total_tax_rate"`
	MarginalTaxRate float64 `json:"marginal_tax_rate"`
	FederalRate     float64 `json:"federal_rate"`
	ProvincialRate  float64 `json:"provincial_rate"`
	CPPEIRate       float64 `json:"cpp_ei_rate"`
}

// TaxBurdenResult is the full output of one tax burden calculation.
// Invariants: TotalDeductions = FederalTax + ProvincialTax + CPP + EI and
// AfterTaxIncome = Income - TotalDeductions.
type TaxBurdenResult struct {
	Income         float64              `json:"income"`
	Province       rates.Province       `json:"province"`
	EmploymentType rates.EmploymentType `json:"employment_type"`
	TaxYear        int                  `json:"tax_year"`

	FederalTax      float64 `json:"federal_tax"`
	ProvincialTax   float64 `json:"provincial_tax"`
	CPPContribution float64 `json:"cpp_contribution"`
	EIContribution  float64 `json:"ei_contribution"`
	TotalDeductions float64 `json:"total_deductions"`
	AfterTaxIncome  float64 `json:"after_tax_income"`

	Rates               TaxRates             `json:"tax_rates"`
	FederalBreakdown    []BreakdownLine      `json:"federal_breakdown"`
	ProvincialBreakdown []BreakdownLine      `json:"provincial_breakdown"`
	ConsumptionTax      ConsumptionTaxResult `json:"consumption_tax"`
	PayPeriods          PayPeriods           `json:"pay_periods"`
}

// ComputeTotalTaxBurden composes the full tax burden for one person: federal
// and provincial bracket tax, CPP/EI contributions, the GST/HST consumption
// estimate on the remaining income, derived rates, and pay-period projections.
// It is a pure function of its arguments and safe for concurrent use.
func ComputeTotalTaxBurden(income float64, province rates.Province, employment rates.EmploymentType, schedule *rates.Schedule) (*TaxBurdenResult, error) {
	if income < 0 {
		return nil, fmt.Errorf("%w: income must be non-negative, got %v", ErrInvalidInput, income)
	}
	if _, ok := rates.ParseEmploymentType(string(employment)); !ok {
		return nil, fmt.Errorf("%w: unrecognized employment type %q", ErrInvalidInput, employment)
	}

	provincialTable, ok := schedule.Provincial[province]
	if !ok {
		return nil, fmt.Errorf("%w: no bracket table for %q", ErrUnknownJurisdiction, province)
	}

	federalTax, federalBreakdown := ComputeBracketTax(income, schedule.Federal, schedule.FederalBasicPersonalAmount(income))
	provincialTax, provincialBreakdown := ComputeBracketTax(income, provincialTable, 0)

	payroll := ComputePayroll(income, employment, schedule.Payroll)

	totalDeductions := federalTax + provincialTax + payroll.CPP + payroll.EI
	afterTaxIncome := income - totalDeductions

	consumption := ComputeConsumptionTax(afterTaxIncome, province, schedule)

	return &TaxBurdenResult{
		Income:         income,
		Province:       province,
		EmploymentType: employment,
		TaxYear:        schedule.Year,

		FederalTax:      federalTax,
		ProvincialTax:   provincialTax,
		CPPContribution: payroll.CPP,
		EIContribution:  payroll.EI,
		TotalDeductions: totalDeductions,
		AfterTaxIncome:  afterTaxIncome,

		Rates:               deriveRates(income, federalTax, provincialTax, payroll, totalDeductions, schedule.Federal, provincialTable),
		FederalBreakdown:    federalBreakdown,
		ProvincialBreakdown: provincialBreakdown,
		ConsumptionTax:      consumption,
		PayPeriods:          computePayPeriods(income, totalDeductions),
	}, nil
}

// deriveRates computes percentage rates from the deduction totals. All rates
// are defined as 0 for zero income rather than dividing by zero.
func deriveRates(income, federalTax, provincialTax float64, payroll PayrollContribution, totalDeductions float64, federal, provincial rates.BracketTable) TaxRates {
	if income <= 0 {
		return TaxRates{}
	}

	return TaxRates{
		TotalTaxRate:    totalDeductions / income * 100,
		MarginalTaxRate: (highestApplicableRate(income, federal) + highestApplicableRate(income, provincial)) * 100,
		FederalRate:     federalTax / income * 100,
		ProvincialRate:  provincialTax / income * 100,
		CPPEIRate:       (payroll.CPP + payroll.EI) / income * 100,
	}
}

// highestApplicableRate returns the rate of the topmost bracket whose lower
// bound does not exceed income.
func highestApplicableRate(income float64, table rates.BracketTable) float64 {
	for i := len(table) - 1; i >= 0; i-- {
		if income >= table[i].Lower {
			return table[i].Rate
		}
	}
	return 0
}

func computePayPeriods(income, totalDeductions float64) PayPeriods {
	period := func(divisor float64) PayPeriod {
		return PayPeriod{
			Gross:      income / divisor,
			Deductions: totalDeductions / divisor,
			Net:        (income - totalDeductions) / divisor,
		}
	}

	return PayPeriods{
		Yearly:   period(1),
		Monthly:  period(12),
		Biweekly: period(26),
		Weekly:   period(52),
	}
}
