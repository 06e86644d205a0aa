package rates

import (
	"math"
	"testing"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestYear2024_BracketTablesAreContiguousAndProgressive(t *testing.T) {
	schedule := Year2024()

	tables := map[string]BracketTable{"Federal": schedule.Federal}
	for province, table := range schedule.Provincial {
		tables[string(province)] = table
	}

	for name, table := range tables {
		if len(table) == 0 {
			t.Fatalf("%s: empty bracket table", name)
		}
		if table[0].Lower != 0 {
			t.Fatalf("%s: first bracket starts at %v, want 0", name, table[0].Lower)
		}
		if !math.IsInf(table[len(table)-1].Upper, 1) {
			t.Fatalf("%s: last bracket upper bound is %v, want +Inf", name, table[len(table)-1].Upper)
		}

		for i := 1; i < len(table); i++ {
			if table[i].Lower != table[i-1].Upper {
				t.Fatalf("%s: bracket %d lower %v != previous upper %v", name, i, table[i].Lower, table[i-1].Upper)
			}
			if table[i].Rate < table[i-1].Rate {
				t.Fatalf("%s: bracket %d rate %v decreases from %v", name, i, table[i].Rate, table[i-1].Rate)
			}
		}
	}
}

func TestYear2024_CoversAllJurisdictions(t *testing.T) {
	schedule := Year2024()

	if len(Provinces()) != 13 {
		t.Fatalf("expected 13 provinces and territories, got %d", len(Provinces()))
	}

	for _, p := range Provinces() {
		if _, ok := schedule.Provincial[p]; !ok {
			t.Fatalf("no provincial bracket table for %s", p)
		}
		if _, ok := schedule.GSTHST[p]; !ok {
			t.Fatalf("no GST/HST rate for %s", p)
		}
	}
}

func TestFederalBasicPersonalAmount_PhaseOut(t *testing.T) {
	schedule := Year2024()

	nearlyEqual(t, "low income", schedule.FederalBasicPersonalAmount(60000), 15000)
	nearlyEqual(t, "phase-out start", schedule.FederalBasicPersonalAmount(173205), 15000)
	nearlyEqual(t, "phase-out midpoint", schedule.FederalBasicPersonalAmount(204440), 14260.5)
	nearlyEqual(t, "phase-out end", schedule.FederalBasicPersonalAmount(235675), 13521)
	nearlyEqual(t, "above phase-out", schedule.FederalBasicPersonalAmount(400000), 13521)
}

func TestGSTHSTRate_FallsBackToBareGST(t *testing.T) {
	schedule := Year2024()

	nearlyEqual(t, "Ontario", schedule.GSTHSTRate(Ontario), 0.13)
	nearlyEqual(t, "unknown", schedule.GSTHSTRate(Province("Atlantis")), 0.05)
}

func TestParseProvince(t *testing.T) {
	p, ok := ParseProvince("Nova Scotia")
	if !ok || p != NovaScotia {
		t.Fatalf("ParseProvince(Nova Scotia) = %v, %v", p, ok)
	}

	if _, ok := ParseProvince("Atlantis"); ok {
		t.Fatal("ParseProvince accepted an unknown jurisdiction")
	}
}

func TestParseEmploymentType(t *testing.T) {
	e, ok := ParseEmploymentType("Self-Employed")
	if !ok || e != SelfEmployed {
		t.Fatalf("ParseEmploymentType(Self-Employed) = %v, %v", e, ok)
	}

	if _, ok := ParseEmploymentType("Freelancer"); ok {
		t.Fatal("ParseEmploymentType accepted an unknown type")
	}
}

func TestSavingTips_IncludesCommonAndSpecificTips(t *testing.T) {
	for _, employment := range EmploymentTypes() {
		tips := SavingTips(employment)
		if len(tips) != 4 {
			t.Fatalf("%s: expected 4 tips, got %d", employment, len(tips))
		}
		if tips[0].Category != "RRSP Contributions" {
			t.Fatalf("%s: first tip = %q, want common RRSP tip", employment, tips[0].Category)
		}
	}
}

func TestEmploymentProfiles_CoverAllTypes(t *testing.T) {
	profiles := EmploymentProfiles()
	for _, employment := range EmploymentTypes() {
		profile, ok := profiles[employment]
		if !ok {
			t.Fatalf("no profile for %s", employment)
		}
		if len(profile.Deductions) == 0 || profile.TaxImplications == "" {
			t.Fatalf("%s: incomplete profile %+v", employment, profile)
		}
	}
}
