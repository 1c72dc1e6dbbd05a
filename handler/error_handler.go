package handler

import (
	"fmt"
	"go-transactions-api/common"
	"net/http"
)

// ErrorHandlingMiddleware adapts a handler that returns *common.AppError to
// http.HandlerFunc. A panic inside the handler is reported as a 500.
func ErrorHandlingMiddleware(next func(http.ResponseWriter, *http.Request) *common.AppError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				common.NewAppError(http.StatusInternalServerError, "Internal server error", fmt.Errorf("panic: %v", rec)).Send(w)
			}
		}()

		if err := next(w, r); err != nil {
			err.Send(w)
		}
	}
}
