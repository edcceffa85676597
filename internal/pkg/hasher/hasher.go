package hasher

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

type Hasher interface {
	GetHashedPassword(ctx context.Context, password string) (string, error)
	CompareHashAndPassword(ctx context.Context, hashedPassword, password string) error
}

const cost = 10

type BcryptHasher struct{}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{}
}

func (h *BcryptHasher) GetHashedPassword(_ context.Context, password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *BcryptHasher) CompareHashAndPassword(_ context.Context, hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
