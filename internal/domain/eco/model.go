package eco

// Leg is one stretch of travel by a single transport mode.
type Leg struct {
	Mode       string  `json:"mode"`
	DistanceKM float64 `json:"distance_km"`
}

// CO2Request carries the legs of a trip.
type CO2Request struct {
	Legs []Leg `json:"legs"`
}

// CO2Result is the estimated footprint.
type CO2Result struct {
	TotalCO2KG float64 `json:"total_co2_kg"`
	Advice     string  `json:"advice"`
}

// Hotel is an eco-certified accommodation.
type Hotel struct {
	Name    string  `json:"name"`
	EcoCert string  `json:"eco_cert"`
	Price   int     `json:"price"`
	Rating  float64 `json:"rating"`
}

// HotelsResponse lists eco hotels for a city.
type HotelsResponse struct {
	City   string  `json:"city"`
	Hotels []Hotel `json:"hotels"`
}

// WasteTipsResponse lists waste-reduction tips for a city.
type WasteTipsResponse struct {
	City string   `json:"city"`
	Tips []string `json:"tips"`
}
