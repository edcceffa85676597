package models

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type User struct {
	ID               int       `db:"id" json:"id"`
	FirstName        string    `db:"first_name" json:"first_name"`
	LastName         string    `db:"last_name" json:"last_name"`
	PhoneNumber      string    `db:"phone_number" json:"phone_number"`
	IcPassportNumber string    `db:"ic_passport_number" json:"ic_passport_number"`
	Email            string    `db:"email" json:"email"`
	LicenseNumber    string    `db:"license_number" json:"license_number"`
	Username         string    `db:"username" json:"username"`
	Password         string    `db:"hashed_password" json:"-"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
