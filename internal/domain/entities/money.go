package entities

import "github.com/shopspring/decimal"

var (
	billPaymentFeeRate = decimal.RequireFromString("1.03")
	commissionRate     = decimal.RequireFromString("0.01")
)

// FeeAmount is the fee-inclusive amount a reseller transfers for a bill
// payment, rounded half away from zero to cents.
func FeeAmount(original float64) float64 {
	return decimal.NewFromFloat(original).Mul(billPaymentFeeRate).Round(2).InexactFloat64()
}

// Commission is the platform share of a paid sale. It is never stored.
func Commission(paid float64) float64 {
	return decimal.NewFromFloat(paid).Mul(commissionRate).InexactFloat64()
}

// Sum adds amounts without accumulating binary float drift.
func Sum(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total.InexactFloat64()
}
