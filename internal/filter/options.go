package filter

import (
	"sort"

	"github.com/rizkypratama/flightdesk/internal/alliance"
	"github.com/rizkypratama/flightdesk/internal/models"
)

const (
	defaultMaxPrice    = 100000
	defaultMaxDuration = 2400
	// Durations at or beyond a week are corrupt provider data and are
	// excluded from the range computation.
	maxSaneDuration = 10000
)

type priceAgg struct {
	name     string
	count    int
	minPrice float64
}

// ExtractOptions computes the dynamic facet set for one offer list in a
// single pass. Facets describe the current result set, not static
// configuration.
func ExtractOptions(offers []models.FlightOffer) models.FilterOptions {
	opts := models.FilterOptions{
		PriceRange:      models.RangeFilter{Min: 0, Max: defaultMaxPrice},
		DurationRange:   models.RangeFilter{Min: 0, Max: defaultMaxDuration},
		Airlines:        []models.AirlineOption{},
		LayoverAirports: []models.AirportOption{},
		Alliances:       []models.AllianceOption{},
		Stops:           []models.StopOption{},
	}
	if len(offers) == 0 {
		return opts
	}

	var (
		priceSeen, durationSeen  bool
		minPrice, maxPrice       float64
		minDuration, maxDuration int
		airlines                 = map[string]*priceAgg{}
		layoverPorts             = map[string]*priceAgg{}
		allianceCounts           = map[alliance.Alliance]int{}
		stopCounts               = map[models.StopBucket]int{}
	)

	for _, o := range offers {
		price := o.Pricing.DisplayPrice()
		if !priceSeen || price < minPrice {
			minPrice = price
		}
		if !priceSeen || price > maxPrice {
			maxPrice = price
		}
		priceSeen = true

		for _, g := range o.Segments {
			d := groupDuration(g)
			if d <= 0 || d >= maxSaneDuration {
				continue
			}
			if !durationSeen || d < minDuration {
				minDuration = d
			}
			if !durationSeen || d > maxDuration {
				maxDuration = d
			}
			durationSeen = true
		}

		if agg, ok := airlines[o.CarrierCode]; ok {
			agg.count++
			if price < agg.minPrice {
				agg.minPrice = price
			}
		} else {
			airlines[o.CarrierCode] = &priceAgg{name: o.CarrierName, count: 1, minPrice: price}
		}

		for _, g := range o.Segments {
			for _, s := range g.Flights {
				if s.Layover == nil || s.Layover.Airport == "" {
					continue
				}
				if agg, ok := layoverPorts[s.Layover.Airport]; ok {
					agg.count++
					if price < agg.minPrice {
						agg.minPrice = price
					}
				} else {
					layoverPorts[s.Layover.Airport] = &priceAgg{count: 1, minPrice: price}
				}
			}
		}

		if a, ok := alliance.Lookup(o.CarrierCode); ok {
			allianceCounts[a]++
		}

		stopCounts[stopBucket(maxStops(o))]++
	}

	if priceSeen {
		opts.PriceRange = models.RangeFilter{Min: minPrice, Max: maxPrice}
	}
	if durationSeen {
		opts.DurationRange = models.RangeFilter{Min: float64(minDuration), Max: float64(maxDuration)}
	}

	for code, agg := range airlines {
		opts.Airlines = append(opts.Airlines, models.AirlineOption{
			Code:     code,
			Name:     agg.name,
			Count:    agg.count,
			MinPrice: agg.minPrice,
		})
	}
	// Most common carrier first.
	sort.Slice(opts.Airlines, func(i, j int) bool {
		if opts.Airlines[i].Count != opts.Airlines[j].Count {
			return opts.Airlines[i].Count > opts.Airlines[j].Count
		}
		return opts.Airlines[i].Code < opts.Airlines[j].Code
	})

	for code, agg := range layoverPorts {
		opts.LayoverAirports = append(opts.LayoverAirports, models.AirportOption{
			Code:     code,
			Count:    agg.count,
			MinPrice: agg.minPrice,
		})
	}
	// Cheapest layover option first, opposite of the airline sort.
	sort.Slice(opts.LayoverAirports, func(i, j int) bool {
		if opts.LayoverAirports[i].MinPrice != opts.LayoverAirports[j].MinPrice {
			return opts.LayoverAirports[i].MinPrice < opts.LayoverAirports[j].MinPrice
		}
		return opts.LayoverAirports[i].Code < opts.LayoverAirports[j].Code
	})

	for _, a := range alliance.All() {
		if n := allianceCounts[a]; n > 0 {
			opts.Alliances = append(opts.Alliances, models.AllianceOption{Alliance: a, Count: n})
		}
	}

	for _, b := range []models.StopBucket{models.StopsNonStop, models.StopsOne, models.StopsTwoPlus} {
		if n := stopCounts[b]; n > 0 {
			opts.Stops = append(opts.Stops, models.StopOption{Bucket: b, Count: n})
		}
	}

	return opts
}
