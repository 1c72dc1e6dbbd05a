package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices are JSON numbers on the wire, both from the seed source and in responses.
	decimal.MarshalJSONWithoutQuotes = true
}

type Transaction struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	DateOfSale  time.Time       `json:"dateOfSale"`
	Category    string          `json:"category"`
	Sold        bool            `json:"sold"`
	Image       string          `json:"image"`
}

// TransactionPage is one page of the filtered listing.
type TransactionPage struct {
	Page         int            `json:"page"`
	PerPage      int            `json:"perPage"`
	Total        int            `json:"total"`
	TotalPages   int            `json:"totalPages"`
	Transactions []*Transaction `json:"transactions"`
}

// SeedResult reports what a seed run replaced.
type SeedResult struct {
	Message  string `json:"message"`
	Deleted  int64  `json:"deleted"`
	Inserted int    `json:"inserted"`
}
