package models

type SearchMetadata struct {
	TotalResults      int    `json:"total_results"`
	SearchTimeMs      int64  `json:"search_time_ms"`
	CacheHit          bool   `json:"cache_hit"`
	CheapestFormatted string `json:"cheapest_formatted,omitempty"`
}

type SearchResponse struct {
	Request  ShoppingRequest `json:"request"`
	Metadata SearchMetadata  `json:"metadata"`
	Offers   []FlightOffer   `json:"offers"`
	Options  FilterOptions   `json:"filter_options"`
}

// FilterRequest re-filters an offer list already held by the UI. The
// engine is stateless, so the offers travel with the request.
type FilterRequest struct {
	Offers    []FlightOffer `json:"offers"`
	Filters   FlightFilters `json:"filters"`
	SortBy    string        `json:"sort_by,omitempty"`
	SortOrder string        `json:"sort_order,omitempty"`
}

type FilterResponse struct {
	TotalResults int           `json:"total_results"`
	Offers       []FlightOffer `json:"offers"`
	Options      FilterOptions `json:"filter_options"`
}

type BookingSyncRequest struct {
	ReferenceNo string `json:"reference_no" validate:"required"`
	// IssuedAt overrides the issued timestamp, used when recording the
	// confirmation time of an order instead of its submission time.
	IssuedAt  string `json:"issued_at,omitempty"`
	SyncedBy  string `json:"synced_by,omitempty"`
	SyncEmail string `json:"sync_email,omitempty"`
}

type BookingSyncResponse struct {
	Record        BookingRecord `json:"record"`
	FareFormatted string        `json:"fare_formatted,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
