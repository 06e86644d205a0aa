package taxcalc

import (
	"math"

	"github.com/taxlens/taxlens/internal/rates"
)

// PayrollContribution holds annual CPP and EI contributions.
type PayrollContribution struct {
	CPP float64 `json:"cpp"`
	EI  float64 `json:"ei"`
}

// ComputePayroll computes CPP and EI contributions, capped at the annual
// maximums. The self-employed pay both the employee and employer CPP shares
// and no EI (opting in is out of scope); contractors are treated like
// employees for payroll purposes.
func ComputePayroll(income float64, employment rates.EmploymentType, pr rates.PayrollRates) PayrollContribution {
	if employment == rates.SelfEmployed {
		return PayrollContribution{
			CPP: math.Min(income*pr.CPPRate*2, pr.CPPMax*2),
			EI:  0,
		}
	}

	return PayrollContribution{
		CPP: math.Min(income*pr.CPPRate, pr.CPPMax),
		EI:  math.Min(income*pr.EIRate, pr.EIMax),
	}
}
