package router

import (
	_ "go-transactions-api/docs"
	"go-transactions-api/handler"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter(healthHandler *handler.HealthHandler, transactionHandler *handler.TransactionHandler, seedHandler *handler.SeedHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", healthHandler.HealthCheck)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	mux.Handle("GET /seed", handler.ErrorHandlingMiddleware(seedHandler.Seed))

	mux.Handle("GET /transactions", handler.ErrorHandlingMiddleware(transactionHandler.ListTransactions))
	mux.Handle("GET /statistics", handler.ErrorHandlingMiddleware(transactionHandler.Statistics))
	mux.Handle("GET /barchart", handler.ErrorHandlingMiddleware(transactionHandler.BarChart))
	mux.Handle("GET /piechart", handler.ErrorHandlingMiddleware(transactionHandler.PieChart))
	mux.Handle("GET /alldata", handler.ErrorHandlingMiddleware(transactionHandler.AllData))

	return handler.RequestIDMiddleware(handler.LoggingMiddleware(mux))
}
