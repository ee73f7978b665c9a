package itinerary

// Mode selects how the base day template is adjusted.
type Mode string

const (
	// ModePopular adds a rated top attraction to every day.
	ModePopular Mode = "popular"
	// ModeCheapest discounts paid activities and adds combined tickets.
	ModeCheapest Mode = "cheapest"
	// ModeCultural adds an evening cultural event.
	ModeCultural Mode = "cultural"
	// ModeWorkMin replaces the day with a business schedule.
	ModeWorkMin Mode = "work_min"
)

// Activity is a single scheduled item within a day.
type Activity struct {
	Time     string   `json:"time"`
	Activity string   `json:"activity"`
	Location string   `json:"location"`
	Cost     int      `json:"cost"`
	Type     string   `json:"type"`
	Rating   *float64 `json:"rating,omitempty"`
}

// DayPlan groups the activities of one trip day (1-based).
type DayPlan struct {
	Day        int        `json:"day"`
	Activities []Activity `json:"activities"`
}

// Itinerary is the generated trip plan.
type Itinerary struct {
	City        string    `json:"city"`
	Days        int       `json:"days"`
	TotalBudget int       `json:"total_budget"`
	DailyPlans  []DayPlan `json:"daily_plans"`
}

// Request captures the planning form. Zero values fall back to Defaults.
type Request struct {
	City      string   `json:"city"`
	Days      int      `json:"days"`
	Budget    *int     `json:"budget,omitempty"`
	Mode      Mode     `json:"mode"`
	Interests []string `json:"interests,omitempty"`
}

// Defaults are applied to blank request fields.
type Defaults struct {
	City   string
	Days   int
	Budget int
	Mode   Mode
}

// DefaultDefaults mirrors the planning form's initial values.
func DefaultDefaults() Defaults {
	return Defaults{
		City:   "Пекин",
		Days:   3,
		Budget: 100000,
		Mode:   ModePopular,
	}
}

// Totals summarizes activity costs of an itinerary.
type Totals struct {
	DayCosts  []int `json:"day_costs"`
	TotalCost int   `json:"total_cost"`
}

// TrendingDestination is a frequently planned city.
type TrendingDestination struct {
	City  string `json:"city"`
	Count int64  `json:"count"`
}

// Config wires runtime knobs for the itinerary service.
type Config struct {
	Defaults      Defaults
	MaxDays       int
	TrendingLimit int
}
