package handler

import (
	"context"
	"errors"
	"go-transactions-api/common"
	"go-transactions-api/model"
	"go-transactions-api/service"
	"net/http"
)

type seeder interface {
	Seed(ctx context.Context) (*model.SeedResult, error)
}

type SeedHandler struct {
	service seeder
}

func NewSeedHandler(s seeder) *SeedHandler {
	return &SeedHandler{service: s}
}

// Seed godoc
// @Summary      Seed the database
// @Description  Downloads the remote transaction dataset and replaces every stored record with it.
// @Tags         seed
// @Produce      json
// @Success      200  {object}  model.SeedResult
// @Failure      409  {object}  common.AppError "Another seed is running"
// @Failure      500  {object}  common.AppError "Fetching or storing the dataset failed"
// @Router       /seed [get]
func (h *SeedHandler) Seed(w http.ResponseWriter, r *http.Request) *common.AppError {
	result, err := h.service.Seed(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrSeedInProgress) {
			return common.NewAppError(http.StatusConflict, err.Error(), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, err.Error(), err)
	}

	common.WriteJSON(w, http.StatusOK, result)
	return nil
}
