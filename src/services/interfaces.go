// src/services/interfaces.go
package services

import (
	"context"
	"errors"

	"github.com/username/pibconectar/src/models"
)

// ErrFetchFailed wraps every failure of the remote data clients: transport
// errors, non-2xx statuses and bodies that do not have the expected shape.
var ErrFetchFailed = errors.New("fetch failed")

// GDPService retrieves PIB series from the IBGE aggregates API.
type GDPService interface {
	// FetchGDPSeries returns PIB in millions of BRL, or PIB per capita in BRL
	// when perCapita is true.
	FetchGDPSeries(ctx context.Context, perCapita bool) (models.RawSeries, error)
}

// ExchangeRateService retrieves the yearly BRL/USD series from IPEA.
type ExchangeRateService interface {
	FetchExchangeRates(ctx context.Context) (models.ExchangeRateTable, error)
}
