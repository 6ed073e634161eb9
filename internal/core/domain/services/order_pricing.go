package services

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// defaultFreightFee applies to regions without a dedicated rate.
var defaultFreightFee = decimal.NewFromFloat(170.0)

// getFreightRates returns the delivery fee charged per Brazilian state code.
func getFreightRates() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"AC": decimal.NewFromFloat(40.0),
		"AL": decimal.NewFromFloat(30.0),
		"AP": decimal.NewFromFloat(30.0),
		"AM": decimal.NewFromFloat(20.0),
		"BA": decimal.NewFromFloat(50.0),
		"CE": decimal.NewFromFloat(80.0),
		"ES": decimal.NewFromFloat(30.0),
		"GO": decimal.NewFromFloat(80.0),
		"MA": decimal.NewFromFloat(60.0),
		"MT": decimal.NewFromFloat(50.0),
		"MS": decimal.NewFromFloat(50.0),
		"MG": decimal.NewFromFloat(80.0),
		"PB": decimal.NewFromFloat(30.0),
		"PR": decimal.NewFromFloat(40.0),
		"PE": decimal.NewFromFloat(30.0),
		"PI": decimal.NewFromFloat(80.0),
		"RJ": decimal.NewFromFloat(50.0),
		"RN": decimal.NewFromFloat(80.0),
		"RS": decimal.NewFromFloat(80.0),
		"RO": decimal.NewFromFloat(70.0),
		"RR": decimal.NewFromFloat(40.0),
		"SC": decimal.NewFromFloat(50.0),
		"SE": decimal.NewFromFloat(80.0),
		"TO": decimal.NewFromFloat(40.0),
	}
}

// OrderPricer is a domain service that derives an order's monetary values:
// the freight fee for the delivery region, the fine for a late return, and
// the resulting total.
//
// Business rules:
//   - Any started day counts as a whole day, both for rental and overdue time.
//   - The fine doubles the daily price for each overdue day.
//   - Regions missing from the rate table get the default freight fee.
type OrderPricer struct{}

// NewOrderPricer creates a new OrderPricer instance.
func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// FreightFee returns the delivery fee for a region (a two-letter state code).
func (p OrderPricer) FreightFee(region string) decimal.Decimal {
	if fee, ok := getFreightRates()[region]; ok {
		return fee
	}
	return defaultFreightFee
}

// OverdueFine computes the fine for returning a car after the agreed end of
// the rental. It returns nil when the return is on time; otherwise the fine
// is twice the daily price for every started overdue day.
func (p OrderPricer) OverdueFine(endDateTime, closingDate time.Time, dailyPrice decimal.Decimal) *decimal.Decimal {
	if !closingDate.After(endDateTime) {
		return nil
	}

	overdueDays := ceilDays(endDateTime, closingDate)
	fine := decimal.NewFromInt(overdueDays).Mul(dailyPrice).Mul(decimal.NewFromInt(2))
	return &fine
}

// TotalValue computes the full order price: started rental days times the
// daily price, plus the freight fee and any fine already imposed.
func (p OrderPricer) TotalValue(
	startDateTime, endDateTime time.Time,
	dailyPrice, rentalFee decimal.Decimal,
	fine *decimal.Decimal,
) decimal.Decimal {
	rentalDays := ceilDays(startDateTime, endDateTime)

	total := decimal.NewFromInt(rentalDays).Mul(dailyPrice).Add(rentalFee)
	if fine != nil {
		total = total.Add(*fine)
	}
	return total
}

// ceilDays counts started 24-hour days between two instants.
func ceilDays(from, to time.Time) int64 {
	return int64(math.Ceil(to.Sub(from).Hours() / 24))
}
