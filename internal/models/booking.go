package models

import "time"

// BookingPending is the status every new booking starts in. Admin-assigned
// statuses are free text; only these two have meaning to the lifecycle.
const (
	BookingPending   = "pending"
	BookingCancelled = "cancelled"
)

type Booking struct {
	ID         int       `db:"booking_id" json:"booking_id"`
	CarID      int       `db:"car_id" json:"car_id"`
	UserID     int       `db:"user_id" json:"user_id"`
	AdminID    *int      `db:"admin_id" json:"admin_id,omitempty"`
	StartDate  time.Time `db:"start_date" json:"start_date"`
	EndDate    time.Time `db:"end_date" json:"end_date"`
	TotalPrice float64   `db:"total_price" json:"total_price"`
	Status     string    `db:"status" json:"status"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// UserBooking is the user-facing listing row: the booking joined with the
// display name of its car.
type UserBooking struct {
	ID         int       `db:"booking_id" json:"booking_id"`
	CarName    string    `db:"car_name" json:"car_name"`
	StartDate  time.Time `db:"start_date" json:"start_date"`
	EndDate    time.Time `db:"end_date" json:"end_date"`
	TotalPrice float64   `db:"total_price" json:"total_price"`
	Status     string    `db:"status" json:"status"`
}

// AdminBooking is the administrative listing row with customer and car
// display names joined in.
type AdminBooking struct {
	ID           int       `db:"booking_id" json:"booking_id"`
	CustomerName string    `db:"customer_name" json:"customer_name"`
	CarName      string    `db:"car_name" json:"car_name"`
	CarID        int       `db:"car_id" json:"car_id"`
	UserID       int       `db:"user_id" json:"user_id"`
	AdminID      *int      `db:"admin_id" json:"admin_id,omitempty"`
	StartDate    time.Time `db:"start_date" json:"start_date"`
	EndDate      time.Time `db:"end_date" json:"end_date"`
	TotalPrice   float64   `db:"total_price" json:"total_price"`
	Status       string    `db:"status" json:"status"`
}

// BookingDetails is the single-booking administrative view, including the
// current status of the linked car.
type BookingDetails struct {
	AdminBooking
	CarStatus CarStatus `db:"car_status" json:"car_status"`
}

// Invoice is the billing view for an approved booking.
type Invoice struct {
	AdminName  *string   `db:"admin_name" json:"admin_name"`
	UserName   string    `db:"user_name" json:"user_name"`
	CarName    string    `db:"car_name" json:"car_name"`
	DailyRate  float64   `db:"daily_rate" json:"daily_rate"`
	StartDate  time.Time `db:"start_date" json:"start_date"`
	EndDate    time.Time `db:"end_date" json:"end_date"`
	TotalPrice float64   `db:"total_price" json:"total_price"`
}
