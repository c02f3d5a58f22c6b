package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/username/pibconectar/src/logger"
	"github.com/username/pibconectar/src/models"
)

// ipeaValuesResponse is the OData payload of ValoresSerie.
type ipeaValuesResponse struct {
	Value *[]struct {
		VALDATA  string   `json:"VALDATA"`  // aaaa-mm-ddTHH:MM:SS-03:00
		VALVALOR *float64 `json:"VALVALOR"` // BRL por 1 USD
	} `json:"value"`
}

type exchangeRateServiceImpl struct {
	httpClient *http.Client
	url        string
}

func NewExchangeRateService(client *http.Client, url string) ExchangeRateService {
	return &exchangeRateServiceImpl{httpClient: client, url: url}
}

func (s *exchangeRateServiceImpl) FetchExchangeRates(ctx context.Context) (models.ExchangeRateTable, error) {
	rates, err := s.fetch(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("Error fetching exchange rates", "error", err)
		return nil, err
	}
	return rates, nil
}

func (s *exchangeRateServiceImpl) fetch(ctx context.Context) (models.ExchangeRateTable, error) {
	body, err := getJSON(ctx, s.httpClient, s.url)
	if err != nil {
		return nil, err
	}
	return parseExchangeRates(body)
}

func parseExchangeRates(body []byte) (models.ExchangeRateTable, error) {
	var data ipeaValuesResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: failed to decode IPEA response: %v", ErrFetchFailed, err)
	}
	if data.Value == nil {
		return nil, fmt.Errorf("%w: IPEA response has no value field", ErrFetchFailed)
	}

	rates := make(models.ExchangeRateTable, len(*data.Value))
	for _, element := range *data.Value {
		if len(element.VALDATA) < 4 {
			return nil, fmt.Errorf("%w: invalid VALDATA %q", ErrFetchFailed, element.VALDATA)
		}
		year, err := parseYear(element.VALDATA[:4])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
		}
		if element.VALVALOR == nil {
			logger.L.Debug("IPEA rate missing, skipping", "date", element.VALDATA)
			continue
		}
		if *element.VALVALOR <= 0 {
			return nil, fmt.Errorf("%w: non-positive rate %v for %s", ErrFetchFailed, *element.VALVALOR, element.VALDATA)
		}
		// last one wins
		rates[year] = *element.VALVALOR
	}
	return rates, nil
}
