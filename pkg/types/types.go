package types

type TraceRequest struct {
	IP string `json:"ip"`
}

type TraceResponse struct {
	IP                string   `json:"ip"`
	Country           string   `json:"country"`
	CountryISOCode    string   `json:"country_iso_code"`
	Languages         []string `json:"languages"`
	Times             []string `json:"times"`
	EstimatedDistance string   `json:"estimated_distance"`
	Currency          string   `json:"currency"`
}

// Invocation is the per country request counter. Distance is in km.
type Invocation struct {
	ID             uint    `json:"id"`
	Country        string  `json:"country"`
	Distance       float64 `json:"distance"`
	NumberRequests float64 `json:"numberRequests"`
}

type StatisticsResponse struct {
	FarthestCountry Invocation `json:"farthest_country"`
	NearbyCountry   Invocation `json:"nearby_country"`
	AverageDistance string     `json:"average_distance"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
