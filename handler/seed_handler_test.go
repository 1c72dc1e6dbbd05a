package handler

import (
	"errors"
	"go-transactions-api/model"
	"go-transactions-api/service"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSeedHandler_Seed(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(mockSeeder)
		svc.On("Seed", mock.Anything).
			Return(&model.SeedResult{Message: "Database seeded successfully", Deleted: 60, Inserted: 60}, nil).Once()

		rr := serve(NewSeedHandler(svc).Seed, "/seed")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"Database seeded successfully","deleted":60,"inserted":60}`, rr.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("already running", func(t *testing.T) {
		svc := new(mockSeeder)
		svc.On("Seed", mock.Anything).Return(nil, service.ErrSeedInProgress).Once()

		rr := serve(NewSeedHandler(svc).Seed, "/seed")

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("failure reports the message", func(t *testing.T) {
		svc := new(mockSeeder)
		svc.On("Seed", mock.Anything).Return(nil, errors.New("seed source returned 503: unavailable")).Once()

		rr := serve(NewSeedHandler(svc).Seed, "/seed")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"code":500,"message":"seed source returned 503: unavailable"}`, rr.Body.String())
	})
}
