package ranking

import (
	"math"

	"github.com/rizkypratama/flightdesk/internal/filter"
	"github.com/rizkypratama/flightdesk/internal/models"
)

const (
	PriceWeight    = 0.5
	DurationWeight = 0.3
	StopsWeight    = 0.2
)

func CalculateScores(offers []models.FlightOffer) []models.FlightOffer {
	if len(offers) == 0 {
		return offers
	}

	maxPrice := findMaxPrice(offers)
	maxDuration := findMaxDuration(offers)

	result := make([]models.FlightOffer, len(offers))
	for i, o := range offers {
		result[i] = o
		result[i].BestValueScore = CalculateBestValue(o, maxPrice, maxDuration)
	}

	return result
}

// Lower score = better value
func CalculateBestValue(offer models.FlightOffer, maxPrice, maxDuration float64) float64 {
	priceScore := 0.0
	if maxPrice > 0 {
		priceScore = (offer.Pricing.DisplayPrice() / maxPrice) * 100
	}

	durationScore := 0.0
	if maxDuration > 0 {
		durationScore = (float64(filter.OfferDuration(offer)) / maxDuration) * 100
	}

	stopsScore := float64(filter.OfferStops(offer)) * 15
	score := (priceScore * PriceWeight) + (durationScore * DurationWeight) + (stopsScore * StopsWeight)

	return math.Round(score*100) / 100
}

func findMaxPrice(offers []models.FlightOffer) float64 {
	maxPrice := 0.0
	for _, o := range offers {
		if p := o.Pricing.DisplayPrice(); p > maxPrice {
			maxPrice = p
		}
	}
	return maxPrice
}

func findMaxDuration(offers []models.FlightOffer) float64 {
	maxDuration := 0.0
	for _, o := range offers {
		if d := float64(filter.OfferDuration(o)); d > maxDuration {
			maxDuration = d
		}
	}
	return maxDuration
}
