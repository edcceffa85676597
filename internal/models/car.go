package models

type CarStatus string

const (
	CarAvailable CarStatus = "available"
	CarRented    CarStatus = "rented"
)

type Car struct {
	ID        int       `db:"car_id" json:"car_id"`
	Make      string    `db:"make" json:"make"`
	Model     string    `db:"model" json:"model"`
	DailyRate float64   `db:"daily_rate" json:"daily_rate"`
	ImgPath   string    `db:"img_path" json:"img_path"`
	Status    CarStatus `db:"status" json:"status"`
}
