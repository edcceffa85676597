package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SlavaShagalov/car-booking/internal/car/usecase/mocks"
	"github.com/SlavaShagalov/car-booking/internal/models"
	pkgErrors "github.com/SlavaShagalov/car-booking/internal/pkg/errors"
)

func TestUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	want := []models.Car{
		{ID: 1, Make: "Toyota", Model: "Vios", DailyRate: 55, Status: models.CarAvailable},
		{ID: 2, Make: "Honda", Model: "City", DailyRate: 60, Status: models.CarRented},
	}

	repo := mocks.NewMockRepository(ctrl)
	repo.EXPECT().List(gomock.Any()).Return(want, nil)

	uc := New(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	got, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUseCase_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	want := models.Car{ID: 5, Make: "Proton", Model: "Saga", DailyRate: 40, Status: models.CarAvailable}

	repo := mocks.NewMockRepository(ctrl)
	repo.EXPECT().Get(gomock.Any(), 5).Return(want, nil)

	uc := New(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	got, err := uc.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUseCase_GetNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockRepository(ctrl)
	repo.EXPECT().Get(gomock.Any(), 404).Return(models.Car{}, pkgErrors.ErrCarNotFound)

	uc := New(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := uc.Get(context.Background(), 404)
	assert.ErrorIs(t, err, pkgErrors.ErrCarNotFound)
}
