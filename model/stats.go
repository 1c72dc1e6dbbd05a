package model

import "github.com/shopspring/decimal"

type Statistics struct {
	TotalSaleAmount decimal.Decimal `json:"totalSaleAmount"`
	SoldItems       int             `json:"soldItems"`
	NotSoldItems    int             `json:"notSoldItems"`
}

// PriceRangeCount is one bar of the price histogram. A range covers
// (Min, Max]; the first range also includes Min and the last has no Max.
type PriceRangeCount struct {
	Range string           `json:"range"`
	Min   decimal.Decimal  `json:"min"`
	Max   *decimal.Decimal `json:"max"`
	Count int              `json:"count"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// AllData bundles every dashboard view for one month.
type AllData struct {
	Transactions *TransactionPage  `json:"transactions"`
	Statistics   *Statistics       `json:"statistics"`
	BarChart     []PriceRangeCount `json:"barChart"`
	PieChart     []CategoryCount   `json:"pieChart"`
}
