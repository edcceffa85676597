package delivery

import (
	"time"

	"github.com/pkg/errors"
)

// BookCarDTO mirrors the booking form: dates arrive as YYYY-MM-DD strings.
type BookCarDTO struct {
	StartDate  string  `json:"startDate" validate:"required"`
	EndDate    string  `json:"endDate" validate:"required"`
	TotalPrice float64 `json:"totalPrice" validate:"required,gt=0"`
	CarID      int     `json:"carId" validate:"required,gt=0"`
	UserID     int     `json:"userId" validate:"required,gt=0"`
}

const dateLayout = "2006-01-02"

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "parse date")
	}
	return t, nil
}
