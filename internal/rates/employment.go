package rates

// EmploymentType distinguishes how income is earned, which changes CPP/EI
// treatment and the deductions available to the filer.
type EmploymentType string

const (
	Employee     EmploymentType = "Employee"
	SelfEmployed EmploymentType = "Self-Employed"
	Contractor   EmploymentType = "Contractor"
)

// EmploymentTypes returns the supported employment types in display order.
func EmploymentTypes() []EmploymentType {
	return []EmploymentType{Employee, SelfEmployed, Contractor}
}

// ParseEmploymentType maps a raw string to its EmploymentType value.
func ParseEmploymentType(name string) (EmploymentType, bool) {
	for _, t := range EmploymentTypes() {
		if string(t) == name {
			return t, true
		}
	}
	return "", false
}

// EmploymentProfile describes the deductions and tax treatment associated
// with an employment type. Consumed by help text, not by the calculator.
type EmploymentProfile struct {
	Deductions      []string `json:"deductions"`
	TaxImplications string   `json:"tax_implications"`
}

// EmploymentProfiles returns the profile for each employment type.
func EmploymentProfiles() map[EmploymentType]EmploymentProfile {
	return map[EmploymentType]EmploymentProfile{
		Employee: {
			Deductions:      []string{"CPP contributions", "EI premiums", "Union dues", "Work-from-home expenses"},
			TaxImplications: "Standard T4 income, employer covers part of CPP/EI",
		},
		SelfEmployed: {
			Deductions:      []string{"Home office expenses", "Vehicle expenses", "Equipment", "Professional fees"},
			TaxImplications: "Must pay both portions of CPP, no EI unless opted in",
		},
		Contractor: {
			Deductions:      []string{"GST/HST collected", "Business expenses", "Professional insurance"},
			TaxImplications: "May need to charge and remit GST/HST if earning over $30,000",
		},
	}
}

// SavingTip is a tax-planning suggestion surfaced alongside results.
type SavingTip struct {
	Category string `json:"category"`
	Tip      string `json:"tip"`
	Impact   string `json:"impact"`
}

// SavingTips returns general tips plus tips specific to the employment type.
func SavingTips(t EmploymentType) []SavingTip {
	tips := []SavingTip{
		{
			Category: "RRSP Contributions",
			Tip:      "Contributing to your RRSP reduces your taxable income.",
			Impact:   "Can lower your tax bracket and defer taxes until retirement.",
		},
		{
			Category: "TFSA Optimization",
			Tip:      "While TFSA contributions aren't tax-deductible, the growth is tax-free.",
			Impact:   "Tax-free withdrawal of investment gains.",
		},
	}

	switch t {
	case Employee:
		tips = append(tips,
			SavingTip{
				Category: "Work From Home Deductions",
				Tip:      "Claim home office expenses if working remotely.",
				Impact:   "Can deduct a portion of rent/mortgage, utilities, and internet.",
			},
			SavingTip{
				Category: "Professional Development",
				Tip:      "Some employer-required training costs may be deductible.",
				Impact:   "Reduce taxable income while advancing your career.",
			},
		)
	case SelfEmployed:
		tips = append(tips,
			SavingTip{
				Category: "Business Expenses",
				Tip:      "Track all business-related expenses including home office, vehicle, and equipment.",
				Impact:   "Significantly reduce taxable business income.",
			},
			SavingTip{
				Category: "Income Splitting",
				Tip:      "Consider hiring family members or incorporating.",
				Impact:   "Potentially lower overall family tax burden.",
			},
		)
	case Contractor:
		tips = append(tips,
			SavingTip{
				Category: "GST/HST Management",
				Tip:      "Register for GST/HST if earning over $30,000 annually.",
				Impact:   "Claim input tax credits on business purchases.",
			},
			SavingTip{
				Category: "Installment Planning",
				Tip:      "Set aside money for quarterly tax installments.",
				Impact:   "Avoid penalties and interest charges.",
			},
		)
	}

	return tips
}
