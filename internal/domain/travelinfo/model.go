package travelinfo

// TravelContext bundles the pre-trip facts shown next to a plan.
type TravelContext struct {
	City           string         `json:"city"`
	Days           int            `json:"days"`
	VisaFree       VisaFree       `json:"visa_free"`
	Weather        Weather        `json:"weather"`
	Festivals      []Festival     `json:"festivals"`
	BudgetBaseline BudgetBaseline `json:"budget_baseline"`
}

// VisaFree describes the visa-free entry regime.
type VisaFree struct {
	Available bool   `json:"available"`
	MaxDays   int    `json:"max_days"`
	Note      string `json:"note"`
}

// Weather is a short seasonal forecast.
type Weather struct {
	Summary string      `json:"summary"`
	TempC   Temperature `json:"temp_c"`
}

// Temperature holds day and night values in Celsius.
type Temperature struct {
	Day   int `json:"day"`
	Night int `json:"night"`
}

// Festival is a recurring celebration and its usual month.
type Festival struct {
	Name  string `json:"name"`
	Month int    `json:"month"`
}

// BudgetBaseline gives average travel costs in roubles.
type BudgetBaseline struct {
	FlightRUB        int    `json:"flight_rub"`
	HotelPerNightRUB int    `json:"hotel_per_night_rub"`
	Note             string `json:"note"`
}
