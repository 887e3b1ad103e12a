package dto

// DefaultMinPrice and DefaultMaxPrice match the getdata tool defaults.
const (
	DefaultMinPrice = 1
	DefaultMaxPrice = 9999999
)

// SearchRequest is the payload accepted by the recommendation endpoint.
type SearchRequest struct {
	Product          string  `json:"product"`
	SpecificFeatures string  `json:"specific_features,omitempty"`
	MinPrice         float64 `json:"min_price,omitempty"`
	MaxPrice         float64 `json:"max_price,omitempty"`
}

// ApplyDefaults fills unset price bounds with the tool defaults.
func (r *SearchRequest) ApplyDefaults() {
	if r.MinPrice == 0 {
		r.MinPrice = DefaultMinPrice
	}
	if r.MaxPrice == 0 {
		r.MaxPrice = DefaultMaxPrice
	}
}

// SearchResponse is returned by the recommendation endpoint.
type SearchResponse struct {
	Success        bool   `json:"success"`
	Recommendation string `json:"recommendation,omitempty"`
	Error          string `json:"error,omitempty"`
}
