package food

// Restaurant is a delivery option.
type Restaurant struct {
	Name         string   `json:"name"`
	Rating       float64  `json:"rating"`
	DeliveryTime string   `json:"delivery_time"`
	MinOrder     int      `json:"min_order"`
	Cuisine      string   `json:"cuisine"`
	Dietary      []string `json:"dietary"`
	RUMenu       bool     `json:"ru_menu"`
}

// Filter narrows the restaurant list. Zero values do not filter.
type Filter struct {
	Dietary string `json:"dietary" form:"dietary"`
	RUMenu  bool   `json:"ru_menu" form:"ru_menu"`
}

// DeliveryInfo lists matching restaurants and platform facts.
type DeliveryInfo struct {
	Restaurants          []Restaurant `json:"restaurants"`
	Platforms            []string     `json:"platforms"`
	SLA                  string       `json:"sla"`
	BudgetShare          float64      `json:"budget_share"`
	SavingsVsRestaurants string       `json:"savings_vs_restaurants"`
}
