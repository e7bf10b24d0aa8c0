package models

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type Booking struct {
	ID         string        `json:"id"`
	PropertyID string        `json:"propertyId"`
	Property   *Property     `json:"property,omitempty"`
	UserID     string        `json:"userId,omitempty"`
	CheckIn    time.Time     `json:"checkIn"`
	CheckOut   time.Time     `json:"checkOut"`
	Guests     int           `json:"guests"`
	TotalPrice float64       `json:"totalPrice,omitempty"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// Nights is the number of whole nights between check-in and check-out.
func (b Booking) Nights() int {
	return nights(b.CheckIn, b.CheckOut)
}

// CreateBookingData is the body of POST /bookings.
type CreateBookingData struct {
	PropertyID string    `json:"propertyId"`
	CheckIn    time.Time `json:"checkIn"`
	CheckOut   time.Time `json:"checkOut"`
	Guests     int       `json:"guests"`
	Notes      string    `json:"notes,omitempty"`
}

func (d CreateBookingData) Validate() error {
	switch {
	case !Required(d.PropertyID):
		return validationError("propertyId is required")
	case d.CheckIn.IsZero() || d.CheckOut.IsZero():
		return validationError("check-in and check-out dates are required")
	case !d.CheckIn.Before(d.CheckOut):
		return validationError("check-out must be after check-in")
	case d.Guests < 1:
		return validationError("at least one guest is required")
	}
	return nil
}

func nights(in, out time.Time) int {
	if !in.Before(out) {
		return 0
	}
	y1, m1, d1 := in.Date()
	y2, m2, d2 := out.Date()
	start := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	end := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}
