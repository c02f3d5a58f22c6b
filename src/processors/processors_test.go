package processors

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/username/pibconectar/src/models"
	"github.com/username/pibconectar/src/services"
)

type fakeGDPService struct {
	gdp       models.RawSeries
	perCapita models.RawSeries
	err       error
	calls     atomic.Int32
}

func (f *fakeGDPService) FetchGDPSeries(ctx context.Context, perCapita bool) (models.RawSeries, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	if perCapita {
		return f.perCapita, nil
	}
	return f.gdp, nil
}

type fakeRateService struct {
	rates models.ExchangeRateTable
	err   error
	calls atomic.Int32
}

func (f *fakeRateService) FetchExchangeRates(ctx context.Context) (models.ExchangeRateTable, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.rates, nil
}

type fakeConverter struct {
	gdp          models.ConvertedSeries
	gdpErr       error
	gdpPerCapita models.ConvertedSeries
	pcErr        error
}

func (f *fakeConverter) GDPInUSD(ctx context.Context) (models.ConvertedSeries, error) {
	return f.gdp, f.gdpErr
}

func (f *fakeConverter) GDPPerCapitaInUSD(ctx context.Context) (models.ConvertedSeries, error) {
	return f.gdpPerCapita, f.pcErr
}

var errUpstream = errors.Join(services.ErrFetchFailed, errors.New("HTTP error! status: 503"))

type atomicErr struct {
	v atomic.Value
}

func (a *atomicErr) Store(err error) {
	a.v.Store(errBox{err})
}

func (a *atomicErr) Load() error {
	b, _ := a.v.Load().(errBox)
	return b.err
}

type errBox struct{ err error }
