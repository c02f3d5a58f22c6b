package processors

import (
	"context"
	"errors"
	"fmt"

	"github.com/username/pibconectar/src/logger"
	"github.com/username/pibconectar/src/models"
	"github.com/username/pibconectar/src/services"
	"golang.org/x/sync/errgroup"
)

// PIB comes from IBGE in millions of BRL.
const gdpUnitExponent = 6

var errMissingData = errors.New("failed to fetch required data")

// Converter produces the USD series consumed by the PIB assembler.
type Converter interface {
	GDPInUSD(ctx context.Context) (models.ConvertedSeries, error)
	GDPPerCapitaInUSD(ctx context.Context) (models.ConvertedSeries, error)
}

type ConversionProcessor struct {
	gdpService  services.GDPService
	rateService services.ExchangeRateService
}

func NewConversionProcessor(gdpService services.GDPService, rateService services.ExchangeRateService) *ConversionProcessor {
	return &ConversionProcessor{
		gdpService:  gdpService,
		rateService: rateService,
	}
}

// GDPInUSD returns the yearly PIB in USD. A nil series always comes with an error.
func (p *ConversionProcessor) GDPInUSD(ctx context.Context) (models.ConvertedSeries, error) {
	series, err := p.convert(ctx, false, gdpUnitExponent)
	if err != nil {
		logger.FromContext(ctx).Error("Error calculating PIB in dollars", "error", err)
		return nil, err
	}
	return series, nil
}

// GDPPerCapitaInUSD returns the yearly PIB per capita in USD.
func (p *ConversionProcessor) GDPPerCapitaInUSD(ctx context.Context) (models.ConvertedSeries, error) {
	series, err := p.convert(ctx, true, 0)
	if err != nil {
		logger.FromContext(ctx).Error("Error calculating PIB per capita in dollars", "error", err)
		return nil, err
	}
	return series, nil
}

// convert fetches the raw series and the rates concurrently and converts every
// year. A single missing rate fails the whole batch.
func (p *ConversionProcessor) convert(ctx context.Context, perCapita bool, unitExponent int32) (models.ConvertedSeries, error) {
	var (
		raw   models.RawSeries
		rates models.ExchangeRateTable
		g     errgroup.Group
	)
	g.Go(func() error {
		var err error
		raw, err = p.gdpService.FetchGDPSeries(ctx, perCapita)
		return err
	})
	g.Go(func() error {
		var err error
		rates, err = p.rateService.FetchExchangeRates(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", errMissingData, err)
	}
	if raw == nil || rates == nil {
		return nil, errMissingData
	}

	converted := make(models.ConvertedSeries, len(raw))
	for _, year := range models.SortedYears(raw) {
		amount, err := scaleAmount(raw[year], unitExponent)
		if err != nil {
			return nil, fmt.Errorf("year %d: %w", year, err)
		}
		usd, err := ConvertToUSD(year, amount, rates)
		if err != nil {
			return nil, err
		}
		converted[year] = usd
	}
	return converted, nil
}
