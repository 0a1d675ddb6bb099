package models

type BookingStatus string

const (
	StatusConfirmed   BookingStatus = "confirmed"
	StatusCancelled   BookingStatus = "cancelled"
	StatusExpired     BookingStatus = "expired"
	StatusPending     BookingStatus = "pending"
	StatusOnHold      BookingStatus = "on-hold"
	StatusInProgress  BookingStatus = "in-progress"
	StatusUnconfirmed BookingStatus = "unconfirmed"
)

// BookingRecord is the canonical persisted booking row, keyed by
// ReferenceNo. Optional fields stay nil when unknown; downstream
// persistence distinguishes "not known" from "known empty".
type BookingRecord struct {
	ReferenceNo    string        `json:"reference_no"`
	CreateDate     string        `json:"create_date"`
	Status         BookingStatus `json:"status"`
	PNR            *string       `json:"pnr,omitempty"`
	Name           string        `json:"name"`
	FlyDate        string        `json:"fly_date"`
	Airline        string        `json:"airline"`
	Fare           float64       `json:"fare"`
	Issued         string        `json:"issued"`
	PassengerType  string        `json:"passenger_type"`
	Route          string        `json:"route"`
	CreatedBy      string        `json:"created_by"`
	CreatedByEmail *string       `json:"created_by_email,omitempty"`
	UpdatedAt      *string       `json:"updated_at,omitempty"`
}
