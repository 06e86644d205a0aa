package rates

// Province identifies one of the 13 Canadian provinces and territories.
// The calculator only accepts values from this closed set; raw strings from
// the API boundary go through ParseProvince first.
type Province string

const (
	Ontario                 Province = "Ontario"
	BritishColumbia         Province = "British Columbia"
	Alberta                 Province = "Alberta"
	Quebec                  Province = "Quebec"
	Manitoba                Province = "Manitoba"
	Saskatchewan            Province = "Saskatchewan"
	NovaScotia              Province = "Nova Scotia"
	NewBrunswick            Province = "New Brunswick"
	PrinceEdwardIsland      Province = "Prince Edward Island"
	NewfoundlandAndLabrador Province = "Newfoundland and Labrador"
	Yukon                   Province = "Yukon"
	NorthwestTerritories    Province = "Northwest Territories"
	Nunavut                 Province = "Nunavut"
)

// Provinces returns all provinces and territories in a stable display order.
func Provinces() []Province {
	return []Province{
		Ontario,
		BritishColumbia,
		Alberta,
		Quebec,
		Manitoba,
		Saskatchewan,
		NovaScotia,
		NewBrunswick,
		PrinceEdwardIsland,
		NewfoundlandAndLabrador,
		Yukon,
		NorthwestTerritories,
		Nunavut,
	}
}

// ParseProvince maps a raw jurisdiction name to its Province value.
func ParseProvince(name string) (Province, bool) {
	for _, p := range Provinces() {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
}
