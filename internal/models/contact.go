package models

import "time"

type ContactMessage struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Subject   string    `db:"subject" json:"subject"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Testimonial struct {
	ID           int       `db:"testimonial_id" json:"testimonial_id"`
	CustomerName string    `db:"customer_name" json:"customer_name"`
	Feedback     string    `db:"feedback" json:"feedback"`
	Rating       int       `db:"rating" json:"rating"`
	CreatedDate  time.Time `db:"created_date" json:"created_date"`
}
