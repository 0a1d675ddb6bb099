package booking

import (
	"fmt"
	"strings"

	"github.com/rizkypratama/flightdesk/internal/models"
)

// emptyDash is the display placeholder for values that cannot be resolved
// from the order payload.
const emptyDash = "–"

// statusTable is case-exact on purpose: unrecognized casing variants fall
// through to the pending default instead of matching.
var statusTable = map[string]models.BookingStatus{
	"OnHold":      models.StatusOnHold,
	"Pending":     models.StatusPending,
	"InProgress":  models.StatusInProgress,
	"Confirmed":   models.StatusConfirmed,
	"UnConfirmed": models.StatusUnconfirmed,
	"Unconfirmed": models.StatusUnconfirmed,
	"Expired":     models.StatusExpired,
	"Cancelled":   models.StatusCancelled,
}

// NormalizeStatus maps any upstream status string onto the closed status
// enum. The mapping is total: unmapped input resolves to pending.
func NormalizeStatus(raw string) models.BookingStatus {
	if s, ok := statusTable[raw]; ok {
		return s
	}
	return models.StatusPending
}

var ptcLabels = map[string]string{
	"ADT": "Adult",
	"CHD": "Child",
	"INF": "Infant",
}

// BuildPassengerType aggregates passenger type codes into a display string
// such as "Adult 2+Child 1". Distinct labels keep their first-seen order;
// unmapped codes pass through as their own label.
func BuildPassengerType(pax []models.OrderPassenger) string {
	counts := map[string]int{}
	var order []string
	for _, p := range pax {
		label := p.PTC
		if l, ok := ptcLabels[p.PTC]; ok {
			label = l
		}
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	parts := make([]string, 0, len(order))
	for _, label := range order {
		parts = append(parts, fmt.Sprintf("%s %d", label, counts[label]))
	}
	return strings.Join(parts, "+")
}

// BuildName renders the lead passenger's display name, upper-cased, with a
// "(+N)" suffix when the booking covers more than one passenger.
func BuildName(pax []models.OrderPassenger) string {
	name := emptyDash
	if len(pax) > 0 {
		if n := strings.TrimSpace(pax[0].GivenName + " " + pax[0].Surname); n != "" {
			name = strings.ToUpper(n)
		}
	}
	if len(pax) > 1 {
		name += fmt.Sprintf(" (+%d)", len(pax)-1)
	}
	return name
}

// BuildRoute concatenates the segment endpoints of the first order item,
// e.g. "CGK-SIN,SIN-LHR".
func BuildRoute(items []models.OrderItem) string {
	if len(items) == 0 {
		return emptyDash
	}
	var parts []string
	for _, s := range items[0].Segments {
		if s.DepartureAirport == "" || s.ArrivalAirport == "" {
			continue
		}
		parts = append(parts, s.DepartureAirport+"-"+s.ArrivalAirport)
	}
	if len(parts) == 0 {
		return emptyDash
	}
	return strings.Join(parts, ",")
}

// RecordOptions carries caller-side context that the order payload itself
// cannot provide.
type RecordOptions struct {
	// IssuedAt overrides the issued timestamp, used when an order moves to
	// Confirmed and the confirmation time should be recorded instead of the
	// submission time.
	IssuedAt string
	// CreatedBy is the fallback author for legacy payloads without one.
	CreatedBy      string
	CreatedByEmail string
}

// OrderToRecord normalizes a provider order response into the canonical
// booking record. It is total over partial and legacy-shaped input and
// never panics.
func OrderToRecord(env models.OrderResponseEnvelope, opts RecordOptions) models.BookingRecord {
	p := env.Payload()
	if p == nil {
		p = &models.OrderPayload{}
	}

	firstSeg := firstSegment(p.OrderItems)

	flyDate := firstSeg.DepartureTime
	if flyDate == "" {
		flyDate = p.Timestamp
		if len(flyDate) > 10 {
			flyDate = flyDate[:10]
		}
	}

	issued := p.Timestamp
	if opts.IssuedAt != "" {
		issued = opts.IssuedAt
	}

	airline := ""
	if len(p.OrderItems) > 0 {
		airline = p.OrderItems[0].ValidatingCarrier
	}
	if airline == "" {
		airline = firstSeg.MarketingCarrier
	}

	fare := 0.0
	if p.Price != nil {
		fare = p.Price.TotalAmount
	}

	createdBy := p.CreatedBy
	if createdBy == "" {
		createdBy = opts.CreatedBy
	}

	rec := models.BookingRecord{
		ReferenceNo:   p.ReferenceNo,
		CreateDate:    p.Timestamp,
		Status:        NormalizeStatus(p.Status),
		Name:          BuildName(p.PaxList),
		FlyDate:       flyDate,
		Airline:       airline,
		Fare:          fare,
		Issued:        issued,
		PassengerType: BuildPassengerType(p.PaxList),
		Route:         BuildRoute(p.OrderItems),
		CreatedBy:     createdBy,
	}

	// PNR and email are omitted when unknown, never set to "".
	if pnr := firstSeg.AirlinePNR; pnr != "" {
		rec.PNR = &pnr
	} else if p.PNR != "" {
		pnr := p.PNR
		rec.PNR = &pnr
	}

	email := p.CreatedByEmail
	if email == "" {
		email = opts.CreatedByEmail
	}
	if email != "" {
		rec.CreatedByEmail = &email
	}

	return rec
}

func firstSegment(items []models.OrderItem) models.OrderSegment {
	if len(items) == 0 || len(items[0].Segments) == 0 {
		return models.OrderSegment{}
	}
	return items[0].Segments[0]
}
