package service

import (
	"fmt"
	"go-transactions-api/model"

	"github.com/shopspring/decimal"
)

const priceBucketCount = 10

var priceBucketWidth = decimal.NewFromInt(100)

// priceRanges returns the fixed bar-chart ranges with zero counts:
// 0-100, 101-200, ..., 801-900, 901-above.
func priceRanges() []model.PriceRangeCount {
	ranges := make([]model.PriceRangeCount, priceBucketCount)
	for k := 0; k < priceBucketCount; k++ {
		lower := priceBucketWidth.Mul(decimal.NewFromInt(int64(k)))
		label := lower.String()
		if k > 0 {
			label = lower.Add(decimal.NewFromInt(1)).String()
		}

		r := model.PriceRangeCount{Min: lower}
		if k == priceBucketCount-1 {
			r.Range = label + "-above"
		} else {
			upper := lower.Add(priceBucketWidth)
			r.Max = &upper
			r.Range = fmt.Sprintf("%s-%s", label, upper.String())
		}
		ranges[k] = r
	}
	return ranges
}
