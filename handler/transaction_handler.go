package handler

import (
	"context"
	"go-transactions-api/common"
	"go-transactions-api/logger"
	"go-transactions-api/model"
	"net/http"

	"github.com/sirupsen/logrus"
)

// transactionQuerier is what TransactionHandler needs from the service layer.
type transactionQuerier interface {
	ListTransactions(ctx context.Context, q model.TransactionQuery) (*model.TransactionPage, error)
	Statistics(ctx context.Context, month int) (*model.Statistics, error)
	BarChart(ctx context.Context, month int) ([]model.PriceRangeCount, error)
	PieChart(ctx context.Context, month int) ([]model.CategoryCount, error)
	AllData(ctx context.Context, q model.TransactionQuery) (*model.AllData, error)
}

// TransactionHandler holds dependencies for the read-only transaction endpoints.
type TransactionHandler struct {
	service transactionQuerier
}

// NewTransactionHandler creates a new TransactionHandler with its dependencies.
func NewTransactionHandler(s transactionQuerier) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// ListTransactions godoc
// @Summary      List transactions
// @Description  Paginated listing filtered by month of sale and a free-text search over title, description and price.
// @Tags         transactions
// @Produce      json
// @Param        page     query  int     false  "Page number, starting at 1"  default(1)
// @Param        perPage  query  int     false  "Page size, at most 100"      default(10)
// @Param        search   query  string  false  "Matches title or description; numeric values also match price"
// @Param        month    query  string  false  "Month number 1-12 or English month name"
// @Success      200  {object}  model.TransactionPage
// @Failure      400  {object}  common.AppError "Invalid query parameter"
// @Failure      500  {object}  common.AppError
// @Router       /transactions [get]
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) *common.AppError {
	q, appErr := parseTransactionQuery(r)
	if appErr != nil {
		return appErr
	}

	page, err := h.service.ListTransactions(r.Context(), q)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve transactions", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"request_id": RequestID(r.Context()),
		"month":      q.Month,
		"total":      page.Total,
	}).Debug("Transactions listed")

	common.WriteJSON(w, http.StatusOK, page)
	return nil
}

// Statistics godoc
// @Summary      Sales statistics for a month
// @Description  Total amount of sold items, number of sold items and number of unsold items.
// @Tags         charts
// @Produce      json
// @Param        month  query  string  false  "Month number 1-12 or English month name"
// @Success      200  {object}  model.Statistics
// @Failure      400  {object}  common.AppError "Invalid month"
// @Failure      500  {object}  common.AppError
// @Router       /statistics [get]
func (h *TransactionHandler) Statistics(w http.ResponseWriter, r *http.Request) *common.AppError {
	month, appErr := parseMonth(r.URL.Query())
	if appErr != nil {
		return appErr
	}

	stats, err := h.service.Statistics(r.Context(), month)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not compute statistics", err)
	}

	common.WriteJSON(w, http.StatusOK, stats)
	return nil
}

// BarChart godoc
// @Summary      Price range histogram for a month
// @Description  Number of items in each of the ten fixed price ranges 0-100 through 901-above.
// @Tags         charts
// @Produce      json
// @Param        month  query  string  false  "Month number 1-12 or English month name"
// @Success      200  {array}   model.PriceRangeCount
// @Failure      400  {object}  common.AppError "Invalid month"
// @Failure      500  {object}  common.AppError
// @Router       /barchart [get]
func (h *TransactionHandler) BarChart(w http.ResponseWriter, r *http.Request) *common.AppError {
	month, appErr := parseMonth(r.URL.Query())
	if appErr != nil {
		return appErr
	}

	bars, err := h.service.BarChart(r.Context(), month)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not compute bar chart", err)
	}

	common.WriteJSON(w, http.StatusOK, bars)
	return nil
}

// PieChart godoc
// @Summary      Category breakdown for a month
// @Description  Number of items per category.
// @Tags         charts
// @Produce      json
// @Param        month  query  string  false  "Month number 1-12 or English month name"
// @Success      200  {array}   model.CategoryCount
// @Failure      400  {object}  common.AppError "Invalid month"
// @Failure      500  {object}  common.AppError
// @Router       /piechart [get]
func (h *TransactionHandler) PieChart(w http.ResponseWriter, r *http.Request) *common.AppError {
	month, appErr := parseMonth(r.URL.Query())
	if appErr != nil {
		return appErr
	}

	pie, err := h.service.PieChart(r.Context(), month)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not compute pie chart", err)
	}

	common.WriteJSON(w, http.StatusOK, pie)
	return nil
}

// AllData godoc
// @Summary      Every dashboard view at once
// @Description  Transactions page, statistics, bar chart and pie chart for the same month.
// @Tags         charts
// @Produce      json
// @Param        month    query  string  false  "Month number 1-12 or English month name"
// @Param        page     query  int     false  "Page number of the transactions listing"  default(1)
// @Param        perPage  query  int     false  "Page size of the transactions listing"    default(10)
// @Param        search   query  string  false  "Search applied to the transactions listing only"
// @Success      200  {object}  model.AllData
// @Failure      400  {object}  common.AppError "Invalid query parameter"
// @Failure      500  {object}  common.AppError
// @Router       /alldata [get]
func (h *TransactionHandler) AllData(w http.ResponseWriter, r *http.Request) *common.AppError {
	q, appErr := parseTransactionQuery(r)
	if appErr != nil {
		return appErr
	}

	data, err := h.service.AllData(r.Context(), q)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve dashboard data", err)
	}

	common.WriteJSON(w, http.StatusOK, data)
	return nil
}
