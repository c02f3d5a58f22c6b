package processors

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/pibconectar/src/models"
)

func TestConvertToUSD(t *testing.T) {
	rates := models.ExchangeRateTable{2020: 5}

	got, err := ConvertToUSD(2020, 10, rates)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
}

func TestConvertToUSDFractionalRate(t *testing.T) {
	rates := models.ExchangeRateTable{2010: 1.7593}

	got, err := ConvertToUSD(2010, 19016.59, rates)
	require.NoError(t, err)
	assert.InDelta(t, 19016.59/1.7593, got, 1e-6)
}

func TestConvertToUSDMissingRate(t *testing.T) {
	_, err := ConvertToUSD(2020, 100, models.ExchangeRateTable{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRateNotFound)
	assert.EqualError(t, err, "exchange rate not found for year 2020")
}

func TestConvertToUSDZeroRate(t *testing.T) {
	_, err := ConvertToUSD(2020, 100, models.ExchangeRateTable{2020: 0})
	assert.ErrorIs(t, err, ErrRateNotFound)
}

func TestScaleAmount(t *testing.T) {
	tests := []struct {
		amount float64
		exp    int32
		want   float64
	}{
		{7, 6, 7_000_000},
		{40000, 0, 40000},
		{1.2345, 6, 1_234_500},
	}
	for _, tt := range tests {
		got, err := scaleAmount(tt.amount, tt.exp)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestScaleAmountRejectsNonFinite(t *testing.T) {
	for _, amount := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		_, err := scaleAmount(amount, 6)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}

	_, err := scaleAmount(math.MaxFloat64, 6)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestConvertToUSDRejectsNonFinite(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		rate   float64
	}{
		{"infinite amount", math.Inf(1), 5},
		{"NaN amount", math.NaN(), 5},
		{"infinite rate", 10, math.Inf(1)},
		{"NaN rate", 10, math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				_, err := ConvertToUSD(2020, tt.amount, models.ExchangeRateTable{2020: tt.rate})
				assert.ErrorIs(t, err, ErrInvalidAmount)
			})
		})
	}
}
