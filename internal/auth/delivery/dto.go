package delivery

import (
	"time"

	"github.com/SlavaShagalov/car-booking/internal/models"
)

type SignUpDTO struct {
	FirstName        string `json:"first_name" validate:"required"`
	LastName         string `json:"last_name" validate:"required"`
	PhoneNumber      string `json:"phone_number" validate:"required"`
	IcPassportNumber string `json:"ic_passport_number" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	LicenseNumber    string `json:"license_number" validate:"required"`
	Username         string `json:"username" validate:"required,min=3"`
	Password         string `json:"password" validate:"required,min=6"`
}

// AdminSignUpDTO has no username field: admin usernames are generated
// server-side from the record id.
type AdminSignUpDTO struct {
	FirstName        string `json:"first_name" validate:"required"`
	LastName         string `json:"last_name" validate:"required"`
	PhoneNumber      string `json:"phone_number" validate:"required"`
	IcPassportNumber string `json:"ic_passport_number" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	LicenseNumber    string `json:"license_number" validate:"required"`
	Password         string `json:"password" validate:"required,min=6"`
}

type SignInDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserDTO struct {
	FirstName        string `json:"first_name" validate:"required"`
	LastName         string `json:"last_name" validate:"required"`
	PhoneNumber      string `json:"phone_number" validate:"required"`
	IcPassportNumber string `json:"ic_passport_number" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	LicenseNumber    string `json:"license_number" validate:"required"`
	Username         string `json:"username" validate:"required,min=3"`
	Password         string `json:"password"`
}

type UserResponse struct {
	ID            int       `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	PhoneNumber   string    `json:"phone_number"`
	Email         string    `json:"email"`
	LicenseNumber string    `json:"license_number"`
	Username      string    `json:"username"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewUserResponseDTO(user models.User) UserResponse {
	return UserResponse{
		ID:            user.ID,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		PhoneNumber:   user.PhoneNumber,
		Email:         user.Email,
		LicenseNumber: user.LicenseNumber,
		Username:      user.Username,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

type SessionUserResponse struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func NewSessionUserResponseDTO(session models.Session) SessionUserResponse {
	return SessionUserResponse{
		ID:    session.UserID,
		Email: session.Email,
		Name:  session.Name,
		Role:  string(session.Role),
	}
}
