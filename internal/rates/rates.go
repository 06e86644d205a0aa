package rates

import "math"

// Bracket is a single marginal-rate band. Upper is +Inf for the open top band.
// Bands are half-open intervals [Lower, Upper): a boundary dollar belongs to
// the lower band.
type Bracket struct {
	Lower float64
	Upper float64
	Rate  float64
}

// BracketTable is an ordered list of contiguous brackets covering [0, +Inf).
type BracketTable []Bracket

// PayrollRates holds CPP and EI contribution rates and annual maximums.
type PayrollRates struct {
	CPPRate float64
	CPPMax  float64
	EIRate  float64
	EIMax   float64
}

// Schedule bundles every rate table for one tax year. It is built once at
// startup and treated as immutable; the calculator takes it as an argument so
// future tax years can be swapped in without touching calculation code.
type Schedule struct {
	Year       int
	Federal    BracketTable
	Provincial map[Province]BracketTable
	GSTHST     map[Province]float64
	Payroll    PayrollRates

	// Federal basic personal amount and its high-income phase-out window.
	BasicPersonalAmount float64
	BasicPersonalFloor  float64
	PhaseOutStart       float64
	PhaseOutEnd         float64
}

// bareGSTRate is the federal-only GST rate used when a jurisdiction is missing
// from the GST/HST map. This fallback is intentional policy for consumption
// estimates, unlike income-tax lookups which must fail on unknown provinces.
const bareGSTRate = 0.05

// FederalBasicPersonalAmount returns the basic personal amount for the given
// income: the full amount up to the phase-out window, reduced linearly within
// it, and the floor above it.
func (s *Schedule) FederalBasicPersonalAmount(income float64) float64 {
	if income <= s.PhaseOutStart {
		return s.BasicPersonalAmount
	}
	reduction := (income - s.PhaseOutStart) / (s.PhaseOutEnd - s.PhaseOutStart)
	amount := s.BasicPersonalAmount - (s.BasicPersonalAmount-s.BasicPersonalFloor)*reduction
	return math.Max(s.BasicPersonalFloor, amount)
}

// GSTHSTRate returns the GST/HST rate for a jurisdiction, falling back to the
// bare federal GST when the jurisdiction is not in the map.
func (s *Schedule) GSTHSTRate(p Province) float64 {
	if rate, ok := s.GSTHST[p]; ok {
		return rate
	}
	return bareGSTRate
}

// Year2024 returns the 2024 tax year rate schedule.
func Year2024() *Schedule {
	inf := math.Inf(1)

	return &Schedule{
		Year: 2024,

		Federal: BracketTable{
			{0, 53359, 0.15},
			{53359, 106717, 0.205},
			{106717, 165430, 0.26},
			{165430, 235675, 0.29},
			{235675, inf, 0.33},
		},

		Provincial: map[Province]BracketTable{
			Ontario: {
				{0, 49231, 0.0505},
				{49231, 98463, 0.0915},
				{98463, 150000, 0.1116},
				{150000, 220000, 0.1216},
				{220000, inf, 0.1316},
			},
			BritishColumbia: {
				{0, 45654, 0.0506},
				{45654, 91310, 0.077},
				{91310, 104835, 0.105},
				{104835, 127299, 0.1229},
				{127299, 172602, 0.147},
				{172602, 240716, 0.168},
				{240716, inf, 0.205},
			},
			Alberta: {
				{0, 142292, 0.10},
				{142292, 170751, 0.12},
				{170751, 227668, 0.13},
				{227668, 341502, 0.14},
				{341502, inf, 0.15},
			},
			Quebec: {
				{0, 49275, 0.14},
				{49275, 98540, 0.19},
				{98540, 119910, 0.24},
				{119910, inf, 0.2575},
			},
			Manitoba: {
				{0, 36842, 0.108},
				{36842, 79625, 0.1275},
				{79625, inf, 0.174},
			},
			Saskatchewan: {
				{0, 49720, 0.105},
				{49720, 142058, 0.125},
				{142058, inf, 0.145},
			},
			NovaScotia: {
				{0, 29590, 0.0879},
				{29590, 59180, 0.1495},
				{59180, 93000, 0.1667},
				{93000, 150000, 0.175},
				{150000, inf, 0.21},
			},
			NewBrunswick: {
				{0, 47715, 0.094},
				{47715, 95431, 0.14},
				{95431, 176756, 0.16},
				{176756, inf, 0.195},
			},
			PrinceEdwardIsland: {
				{0, 31984, 0.098},
				{31984, 63969, 0.138},
				{63969, inf, 0.167},
			},
			NewfoundlandAndLabrador: {
				{0, 41457, 0.087},
				{41457, 82913, 0.145},
				{82913, 148027, 0.158},
				{148027, 207239, 0.178},
				{207239, 264750, 0.198},
				{264750, inf, 0.208},
			},
			Yukon: {
				{0, 53359, 0.064},
				{53359, 106717, 0.09},
				{106717, 165430, 0.109},
				{165430, 235675, 0.128},
				{235675, inf, 0.15},
			},
			NorthwestTerritories: {
				{0, 48326, 0.059},
				{48326, 96655, 0.086},
				{96655, 157139, 0.122},
				{157139, inf, 0.1405},
			},
			Nunavut: {
				{0, 47862, 0.04},
				{47862, 95724, 0.07},
				{95724, 155625, 0.09},
				{155625, inf, 0.115},
			},
		},

		// HST provinces carry the blended rate; GST-only provinces carry the
		// federal 5% even where a separate PST/QST exists. Known simplification.
		GSTHST: map[Province]float64{
			Ontario:                 0.13,
			BritishColumbia:         0.05,
			Alberta:                 0.05,
			Quebec:                  0.05,
			Manitoba:                0.05,
			Saskatchewan:            0.05,
			NovaScotia:              0.15,
			NewBrunswick:            0.15,
			PrinceEdwardIsland:      0.15,
			NewfoundlandAndLabrador: 0.15,
			Yukon:                   0.05,
			NorthwestTerritories:    0.05,
			Nunavut:                 0.05,
		},

		Payroll: PayrollRates{
			CPPRate: 0.0595,
			CPPMax:  3754.45,
			EIRate:  0.0163,
			EIMax:   1002.45,
		},

		BasicPersonalAmount: 15000,
		BasicPersonalFloor:  13521,
		PhaseOutStart:       173205,
		PhaseOutEnd:         235675,
	}
}
