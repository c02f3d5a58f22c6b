package processors

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/username/pibconectar/src/models"
)

var (
	// ErrRateNotFound is returned when a year has no BRL/USD rate.
	ErrRateNotFound = errors.New("exchange rate not found")
	// ErrInvalidAmount is returned for NaN or infinite amounts and rates.
	ErrInvalidAmount = errors.New("invalid amount")
)

// ConvertToUSD converts a BRL amount to USD using the rate of the given year.
// rates holds BRL per 1 USD, so the amount is divided by the rate.
func ConvertToUSD(year int, amount float64, rates models.ExchangeRateTable) (float64, error) {
	rate, ok := rates[year]
	if !ok {
		return 0, fmt.Errorf("%w for year %d", ErrRateNotFound, year)
	}
	if rate == 0 {
		return 0, fmt.Errorf("%w for year %d: rate is zero", ErrRateNotFound, year)
	}
	if !isFinite(amount) || !isFinite(rate) {
		return 0, fmt.Errorf("%w for year %d: amount %v, rate %v", ErrInvalidAmount, year, amount, rate)
	}
	return decimal.NewFromFloat(amount).Div(decimal.NewFromFloat(rate)).InexactFloat64(), nil
}

// scaleAmount multiplies amount by 10^exp without float rounding drift.
func scaleAmount(amount float64, exp int32) (float64, error) {
	if !isFinite(amount) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	if exp == 0 {
		return amount, nil
	}
	scaled := decimal.NewFromFloat(amount).Shift(exp).InexactFloat64()
	if !isFinite(scaled) {
		return 0, fmt.Errorf("%w: %v scaled by 10^%d overflows", ErrInvalidAmount, amount, exp)
	}
	return scaled, nil
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
