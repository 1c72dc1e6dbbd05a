package handler

import (
	"go-transactions-api/common"
	"go-transactions-api/model"
	"go-transactions-api/service"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// parseMonth reads the month query parameter. Absent means every month.
func parseMonth(values url.Values) (int, *common.AppError) {
	month, err := model.ParseMonth(values.Get("month"))
	if err != nil {
		return 0, common.NewAppError(http.StatusBadRequest, "Invalid month: "+err.Error(), nil)
	}
	return month, nil
}

func parseIntParam(values url.Values, name string, fallback int) (int, *common.AppError) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, common.NewAppError(http.StatusBadRequest, "Invalid "+name+": must be an integer", nil)
	}
	return n, nil
}

// parseTransactionQuery coerces page, perPage, search and month and checks
// their ranges.
func parseTransactionQuery(r *http.Request) (model.TransactionQuery, *common.AppError) {
	values := r.URL.Query()
	var q model.TransactionQuery
	var appErr *common.AppError

	if q.Page, appErr = parseIntParam(values, "page", service.DefaultPage); appErr != nil {
		return q, appErr
	}
	if q.PerPage, appErr = parseIntParam(values, "perPage", service.DefaultPerPage); appErr != nil {
		return q, appErr
	}
	if q.Month, appErr = parseMonth(values); appErr != nil {
		return q, appErr
	}
	q.Search = strings.TrimSpace(values.Get("search"))

	if appErr = common.ValidateStruct(&q); appErr != nil {
		return q, appErr
	}
	return q, nil
}
