// Package scenarios derives illustrative financial projections from an annual
// tax total: what the same money could do as a down payment, an investment,
// debt repayment, or retirement savings. Every function is pure and takes only
// the tax total plus simple numeric parameters.
package scenarios

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// HomeScenario describes a home purchase enabled by redirecting the tax total
// into a down payment with typical 4x mortgage leverage.
type HomeScenario struct {
	Name              string   `json:"name"`
	DownPayment       float64  `json:"down_payment"`
	MaxHomeValue      float64  `json:"max_home_value"`
	MonthlyPayment    float64  `json:"monthly_payment"`
	TimeSaved         string   `json:"time_saved"`
	Description       string   `json:"description"`
	ExampleProperties []string `json:"example_properties"`
}

// HomePurchasePotential returns starter and family home purchase scenarios
// funded by the tax total as a down payment.
func HomePurchasePotential(totalTax float64) []HomeScenario {
	downPayment := totalTax
	maxMortgage := downPayment * 4

	return []HomeScenario{
		{
			Name:           "starter_home",
			DownPayment:    downPayment,
			MaxHomeValue:   downPayment + maxMortgage*0.8,
			MonthlyPayment: maxMortgage * 0.8 * 0.06 / 12,
			TimeSaved:      "2-3 years",
			Description:    "Perfect for first-time homebuyers",
			ExampleProperties: []string{
				"Two-bedroom condo in suburban area",
				"Townhouse in growing community",
				"Small detached home in smaller cities",
			},
		},
		{
			Name:           "family_home",
			DownPayment:    downPayment,
			MaxHomeValue:   downPayment + maxMortgage,
			MonthlyPayment: maxMortgage * 0.06 / 12,
			TimeSaved:      "4-5 years",
			Description:    "Ideal for growing families",
			ExampleProperties: []string{
				"Three-bedroom detached house",
				"Large townhouse with garage",
				"Semi-detached home in established neighborhood",
			},
		},
	}
}

// GrowthPoint is one year of compound investment growth.
type GrowthPoint struct {
	Year          int     `json:"year"`
	Value         float64 `json:"value"`
	Contributions float64 `json:"contributions"`
	Earnings      float64 `json:"earnings"`
}

// InvestmentScenario is one risk profile's projected growth of the tax total
// invested yearly.
type InvestmentScenario struct {
	Name                string        `json:"name"`
	Rate                float64       `json:"rate"`
	Strategy            string        `json:"strategy"`
	RetirementPotential string        `json:"retirement_potential"`
	Description         string        `json:"description"`
	Growth              []GrowthPoint `json:"growth"`
}

// InvestmentGrowth projects investing the tax total every year for the given
// horizon under conservative, balanced, and aggressive return assumptions.
func InvestmentGrowth(totalTax float64, years int) []InvestmentScenario {
	result := []InvestmentScenario{
		{
			Name:                "conservative",
			Rate:                0.06,
			Strategy:            "Low-risk index funds and bonds",
			RetirementPotential: "Retire 5 years earlier",
			Description:         "Steady, reliable growth with lower risk",
		},
		{
			Name:                "balanced",
			Rate:                0.08,
			Strategy:            "Diversified portfolio",
			RetirementPotential: "Retire 8 years earlier",
			Description:         "Mix of growth and stability",
		},
		{
			Name:                "aggressive",
			Rate:                0.10,
			Strategy:            "Growth-focused stocks",
			RetirementPotential: "Retire 10+ years earlier",
			Description:         "Maximum growth potential with higher risk",
		},
	}

	for i := range result {
		result[i].Growth = compoundGrowth(totalTax, result[i].Rate, years)
	}

	return result
}

// compoundGrowth applies the compound interest formula with annual
// contributions equal to the principal (the same tax savings each year).
func compoundGrowth(principal, rate float64, years int) []GrowthPoint {
	points := make([]GrowthPoint, 0, years)

	for year := 1; year <= years; year++ {
		factor := math.Pow(1+rate, float64(year))
		total := principal*factor + principal*(factor-1)/rate
		contributions := principal * float64(year)

		points = append(points, GrowthPoint{
			Year:          year,
			Value:         roundCents(total),
			Contributions: roundCents(contributions),
			Earnings:      roundCents(total - contributions),
		})
	}

	return points
}

// AlternativeUse is a narrative framing of what the tax total could fund.
type AlternativeUse struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
	Impact      string   `json:"impact"`
}

// AlternativeUses returns education, business, and lifestyle framings of the
// tax total.
func AlternativeUses(totalTax float64) []AlternativeUse {
	monthlyTax := totalTax / 12

	return []AlternativeUse{
		{
			Name:        "education",
			Title:       "Education & Skills",
			Description: fmt.Sprintf("$%s could fund:", humanize.FormatFloat("#,###.##", totalTax)),
			Examples: []string{
				"Complete MBA or Master's degree",
				"Professional certifications and skills training",
				"Starting a small business",
			},
			Impact: "Potential 20-30% income increase",
		},
		{
			Name:        "business",
			Title:       "Business Ventures",
			Description: fmt.Sprintf("$%s could start:", humanize.FormatFloat("#,###.##", totalTax)),
			Examples: []string{
				"Small consulting practice",
				"Online business",
				"Franchise opportunity",
			},
			Impact: "Build equity and create jobs",
		},
		{
			Name:        "lifestyle",
			Title:       "Life Quality",
			Description: fmt.Sprintf("$%s extra monthly could provide:", humanize.FormatFloat("#,###.##", monthlyTax)),
			Examples: []string{
				"Quality healthcare and wellness programs",
				"Better work-life balance through reduced hours",
				"Enhanced retirement savings",
			},
			Impact: "Improved quality of life and health",
		},
	}
}

// DebtScenario shows the interest saved by directing the tax total at one
// kind of debt.
type DebtScenario struct {
	Name            string  `json:"name"`
	Rate            float64 `json:"rate"`
	Priority        string  `json:"priority"`
	Description     string  `json:"description"`
	MonthlySavings  float64 `json:"monthly_savings"`
	FiveYearSavings float64 `json:"five_year_savings"`
	ExampleImpact   string  `json:"example_impact"`
}

// DebtPayment returns payoff scenarios for common debt types, ordered from
// highest to lowest interest rate.
func DebtPayment(totalTax float64) []DebtScenario {
	scenarios := []DebtScenario{
		{
			Name:          "credit_card",
			Rate:          0.1999,
			Priority:      "High",
			Description:   "High-interest debt that should be prioritized",
			ExampleImpact: "Eliminate $20,000 credit card debt and save $4,000 yearly in interest",
		},
		{
			Name:          "student_loan",
			Rate:          0.0599,
			Priority:      "Medium",
			Description:   "Consider alongside tax benefits",
			ExampleImpact: "Pay off student loans years earlier and reduce total interest paid",
		},
		{
			Name:          "car_loan",
			Rate:          0.0699,
			Priority:      "Medium",
			Description:   "Consider if refinancing is beneficial",
			ExampleImpact: "Fully own your vehicle sooner and redirect payments to savings",
		},
		{
			Name:          "mortgage",
			Rate:          0.0559,
			Priority:      "Low",
			Description:   "Consider alongside investment opportunities",
			ExampleImpact: "Reduce mortgage term and save thousands in interest",
		},
	}

	for i := range scenarios {
		scenarios[i].MonthlySavings = totalTax * scenarios[i].Rate / 12
		scenarios[i].FiveYearSavings = scenarios[i].MonthlySavings * 12 * 5
	}

	return scenarios
}

// RetirementScenario projects the tax total's value at one retirement age.
type RetirementScenario struct {
	RetirementAge          int      `json:"retirement_age"`
	YearsToRetirement      int      `json:"years_to_retirement"`
	ConservativeValue      float64  `json:"conservative_value"`
	BalancedValue          float64  `json:"balanced_value"`
	AggressiveValue        float64  `json:"aggressive_value"`
	MonthlyIncomePotential float64  `json:"monthly_income_potential"`
	LifestyleExamples      []string `json:"lifestyle_examples"`
}

// RetirementImpact projects the tax total compounding until retirement at 55,
// 60, and 65. Ages already reached are omitted. The monthly income potential
// assumes the total drawn down over 20 years of retirement.
func RetirementImpact(totalTax float64, currentAge int) []RetirementScenario {
	monthlyWithdrawal := totalTax / 240

	scenarios := make([]RetirementScenario, 0, 3)
	for _, retirementAge := range []int{55, 60, 65} {
		yearsToGrow := retirementAge - currentAge
		if yearsToGrow <= 0 {
			continue
		}

		y := float64(yearsToGrow)
		scenarios = append(scenarios, RetirementScenario{
			RetirementAge:          retirementAge,
			YearsToRetirement:      yearsToGrow,
			ConservativeValue:      roundCents(totalTax * math.Pow(1.06, y)),
			BalancedValue:          roundCents(totalTax * math.Pow(1.08, y)),
			AggressiveValue:        roundCents(totalTax * math.Pow(1.10, y)),
			MonthlyIncomePotential: roundCents(monthlyWithdrawal),
			LifestyleExamples: []string{
				fmt.Sprintf("Annual vacation budget: $%s", humanize.FormatFloat("#,###.##", monthlyWithdrawal*2)),
				fmt.Sprintf("Monthly housing budget: $%s", humanize.FormatFloat("#,###.##", monthlyWithdrawal*0.4)),
				fmt.Sprintf("Healthcare savings: $%s", humanize.FormatFloat("#,###.##", monthlyWithdrawal*0.15)),
				fmt.Sprintf("Entertainment & dining: $%s", humanize.FormatFloat("#,###.##", monthlyWithdrawal*0.2)),
			},
		})
	}

	return scenarios
}
