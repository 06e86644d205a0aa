package taxcalc

import (
	"errors"
	"testing"

	"github.com/taxlens/taxlens/internal/rates"
)

func TestComputeTotalTaxBurden_OntarioEmployee250k(t *testing.T) {
	schedule := rates.Year2024()

	got, err := ComputeTotalTaxBurden(250000, rates.Ontario, rates.Employee, schedule)
	if err != nil {
		t.Fatalf("ComputeTotalTaxBurden returned error: %v", err)
	}

	nearlyEqual(t, "federalTax", got.FederalTax, 54843.99)
	nearlyEqual(t, "provincialTax", got.ProvincialTax, 25202.42)
	nearlyEqual(t, "cpp", got.CPPContribution, 3754.45)
	nearlyEqual(t, "ei", got.EIContribution, 1002.45)
	nearlyEqual(t, "totalDeductions", got.TotalDeductions, 84803.31)
	nearlyEqual(t, "afterTaxIncome", got.AfterTaxIncome, 165196.69)

	// Top applicable brackets: 33% federal + 13.16% Ontario.
	nearlyEqual(t, "marginalTaxRate", got.Rates.MarginalTaxRate, 46.16)
	nearlyEqual(t, "totalTaxRate", got.Rates.TotalTaxRate, 84803.31/250000*100)
}

func TestComputeTotalTaxBurden_ZeroIncome(t *testing.T) {
	schedule := rates.Year2024()

	got, err := ComputeTotalTaxBurden(0, rates.Ontario, rates.Employee, schedule)
	if err != nil {
		t.Fatalf("ComputeTotalTaxBurden returned error: %v", err)
	}

	nearlyEqual(t, "federalTax", got.FederalTax, 0)
	nearlyEqual(t, "provincialTax", got.ProvincialTax, 0)
	nearlyEqual(t, "cpp", got.CPPContribution, 0)
	nearlyEqual(t, "ei", got.EIContribution, 0)
	nearlyEqual(t, "totalDeductions", got.TotalDeductions, 0)
	nearlyEqual(t, "totalTaxRate", got.Rates.TotalTaxRate, 0)
	nearlyEqual(t, "marginalTaxRate", got.Rates.MarginalTaxRate, 0)
	nearlyEqual(t, "consumption tax", got.ConsumptionTax.Tax, 0)
	nearlyEqual(t, "weekly net", got.PayPeriods.Weekly.Net, 0)
}

func TestComputeTotalTaxBurden_DeductionInvariants(t *testing.T) {
	schedule := rates.Year2024()

	for _, province := range rates.Provinces() {
		for _, employment := range rates.EmploymentTypes() {
			for _, income := range []float64{0, 30000, 60000, 120000, 250000} {
				got, err := ComputeTotalTaxBurden(income, province, employment, schedule)
				if err != nil {
					t.Fatalf("%s/%s/%v: %v", province, employment, income, err)
				}

				sum := got.FederalTax + got.ProvincialTax + got.CPPContribution + got.EIContribution
				nearlyEqual(t, "totalDeductions", got.TotalDeductions, sum)
				nearlyEqual(t, "income identity", got.AfterTaxIncome+got.TotalDeductions, income)
			}
		}
	}
}

func TestComputeTotalTaxBurden_SelfEmployed(t *testing.T) {
	schedule := rates.Year2024()

	employee, err := ComputeTotalTaxBurden(50000, rates.Manitoba, rates.Employee, schedule)
	if err != nil {
		t.Fatalf("employee: %v", err)
	}
	selfEmployed, err := ComputeTotalTaxBurden(50000, rates.Manitoba, rates.SelfEmployed, schedule)
	if err != nil {
		t.Fatalf("self-employed: %v", err)
	}

	nearlyEqual(t, "cpp", selfEmployed.CPPContribution, employee.CPPContribution*2)
	nearlyEqual(t, "ei", selfEmployed.EIContribution, 0)
}

func TestComputeTotalTaxBurden_PayPeriods(t *testing.T) {
	schedule := rates.Year2024()

	got, err := ComputeTotalTaxBurden(104000, rates.BritishColumbia, rates.Employee, schedule)
	if err != nil {
		t.Fatalf("ComputeTotalTaxBurden returned error: %v", err)
	}

	nearlyEqual(t, "yearly gross", got.PayPeriods.Yearly.Gross, 104000)
	nearlyEqual(t, "monthly gross", got.PayPeriods.Monthly.Gross, 104000.0/12)
	nearlyEqual(t, "biweekly gross", got.PayPeriods.Biweekly.Gross, 4000)
	nearlyEqual(t, "weekly gross", got.PayPeriods.Weekly.Gross, 2000)
	nearlyEqual(t, "weekly identity", got.PayPeriods.Weekly.Net+got.PayPeriods.Weekly.Deductions, 2000)
}

func TestComputeTotalTaxBurden_UnknownProvince(t *testing.T) {
	schedule := rates.Year2024()

	_, err := ComputeTotalTaxBurden(60000, rates.Province("Atlantis"), rates.Employee, schedule)
	if !errors.Is(err, ErrUnknownJurisdiction) {
		t.Fatalf("expected ErrUnknownJurisdiction, got %v", err)
	}
}

func TestComputeTotalTaxBurden_NegativeIncome(t *testing.T) {
	schedule := rates.Year2024()

	_, err := ComputeTotalTaxBurden(-1, rates.Ontario, rates.Employee, schedule)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestComputeTotalTaxBurden_UnknownEmploymentType(t *testing.T) {
	schedule := rates.Year2024()

	_, err := ComputeTotalTaxBurden(60000, rates.Ontario, rates.EmploymentType("Freelancer"), schedule)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestComputeTotalTaxBurden_IsDeterministic(t *testing.T) {
	schedule := rates.Year2024()

	first, err := ComputeTotalTaxBurden(98765.43, rates.Quebec, rates.Contractor, schedule)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := ComputeTotalTaxBurden(98765.43, rates.Quebec, rates.Contractor, schedule)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	nearlyEqual(t, "federalTax", second.FederalTax, first.FederalTax)
	nearlyEqual(t, "provincialTax", second.ProvincialTax, first.ProvincialTax)
	nearlyEqual(t, "totalDeductions", second.TotalDeductions, first.TotalDeductions)
}
