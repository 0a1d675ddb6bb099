package upstream

import "github.com/rizkypratama/flightdesk/internal/models"

// Wire shapes of the shopping API response. The transformer below is the
// only place provider naming leaks into; everything past it speaks the
// domain model.

type shopResponse struct {
	Offers []shopOffer `json:"offers"`
}

type shopOffer struct {
	OfferID        string        `json:"offerId"`
	Carrier        shopCarrier   `json:"validatingCarrier"`
	Refundable     bool          `json:"refundable"`
	FareType       string        `json:"fareType,omitempty"`
	Journeys       []shopJourney `json:"journeys"`
	Price          shopPrice     `json:"price"`
	Baggage        shopBaggage   `json:"baggage"`
	SeatsRemaining int           `json:"seatsRemaining"`
}

type shopCarrier struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type shopJourney struct {
	DurationMinutes int           `json:"durationMinutes"`
	Segments        []shopSegment `json:"segments"`
}

type shopSegment struct {
	FlightNumber     string `json:"flightNumber"`
	DepartureAirport string `json:"departureAirport"`
	ArrivalAirport   string `json:"arrivalAirport"`
	DepartureTime    string `json:"departureTime"`
	ArrivalTime      string `json:"arrivalTime"`
	LayoverAirport   string `json:"layoverAirport,omitempty"`
	LayoverCity      string `json:"layoverCity,omitempty"`
	LayoverMinutes   int    `json:"layoverMinutes,omitempty"`
}

type shopPrice struct {
	Total     float64    `json:"total"`
	Gross     float64    `json:"gross,omitempty"`
	Currency  string     `json:"currency"`
	Breakdown []shopFare `json:"breakdown,omitempty"`
}

type shopFare struct {
	PTC      string  `json:"ptc"`
	Count    int     `json:"count"`
	BaseFare float64 `json:"baseFare"`
	Taxes    float64 `json:"taxes"`
	Total    float64 `json:"total"`
}

type shopBaggage struct {
	CabinKg   float64 `json:"cabinKg,omitempty"`
	CheckedKg float64 `json:"checkedKg,omitempty"`
}

func transformOffers(resp shopResponse) []models.FlightOffer {
	offers := make([]models.FlightOffer, 0, len(resp.Offers))
	for _, o := range resp.Offers {
		offers = append(offers, transformOffer(o))
	}
	return offers
}

func transformOffer(o shopOffer) models.FlightOffer {
	groups := make([]models.SegmentGroup, 0, len(o.Journeys))
	for _, j := range o.Journeys {
		flights := make([]models.FlightSegment, 0, len(j.Segments))
		for _, s := range j.Segments {
			seg := models.FlightSegment{
				FlightNumber:     s.FlightNumber,
				DepartureAirport: s.DepartureAirport,
				ArrivalAirport:   s.ArrivalAirport,
				DepartureTime:    s.DepartureTime,
				ArrivalTime:      s.ArrivalTime,
			}
			if s.LayoverAirport != "" {
				seg.Layover = &models.Layover{
					Airport:  s.LayoverAirport,
					City:     s.LayoverCity,
					Duration: s.LayoverMinutes,
				}
			}
			flights = append(flights, seg)
		}

		stops := 0
		if len(j.Segments) > 0 {
			stops = len(j.Segments) - 1
		}

		groups = append(groups, models.SegmentGroup{
			Flights:       flights,
			Stops:         stops,
			TotalDuration: j.DurationMinutes,
		})
	}

	breakdown := make([]models.FareBreakdown, 0, len(o.Price.Breakdown))
	for _, f := range o.Price.Breakdown {
		breakdown = append(breakdown, models.FareBreakdown{
			PTC:      f.PTC,
			Count:    f.Count,
			BaseFare: f.BaseFare,
			Taxes:    f.Taxes,
			Total:    f.Total,
		})
	}

	pricing := models.Pricing{
		Total:     o.Price.Total,
		Currency:  o.Price.Currency,
		Breakdown: breakdown,
	}
	if o.Price.Gross > 0 {
		gross := o.Price.Gross
		pricing.Gross = &gross
	}

	return models.FlightOffer{
		ID:          o.OfferID,
		CarrierCode: o.Carrier.Code,
		CarrierName: o.Carrier.Name,
		Refundable:  o.Refundable,
		FareType:    o.FareType,
		Segments:    groups,
		Pricing:     pricing,
		Baggage: models.Baggage{
			CabinKg:   o.Baggage.CabinKg,
			CheckedKg: o.Baggage.CheckedKg,
		},
		SeatsRemaining: o.SeatsRemaining,
	}
}
