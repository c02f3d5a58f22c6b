package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/username/pibconectar/src/logger"
	"github.com/username/pibconectar/src/models"
)

// Positions of the two variables in the aggregates response.
const (
	gdpResultIndex          = 0 // 9808: PIB a preços correntes (milhões de reais)
	gdpPerCapitaResultIndex = 1 // 9812: PIB per capita (reais)
)

// IBGE publishes these placeholders instead of a number when a value is not available.
var ibgeMissingMarkers = map[string]bool{
	"...": true,
	"..":  true,
	"-":   true,
	"X":   true,
}

// --- API Response Structs ---

type ibgeAggregateResponse []struct {
	ID         string `json:"id"`
	Variavel   string `json:"variavel"`
	Unidade    string `json:"unidade"`
	Resultados []struct {
		Series []struct {
			Serie map[string]json.RawMessage `json:"serie"`
		} `json:"series"`
	} `json:"resultados"`
}

type gdpServiceImpl struct {
	httpClient *http.Client
	url        string
}

func NewGDPService(client *http.Client, url string) GDPService {
	return &gdpServiceImpl{httpClient: client, url: url}
}

func (s *gdpServiceImpl) FetchGDPSeries(ctx context.Context, perCapita bool) (models.RawSeries, error) {
	series, err := s.fetch(ctx, perCapita)
	if err != nil {
		logger.FromContext(ctx).Error("Error fetching PIB data", "perCapita", perCapita, "error", err)
		return nil, err
	}
	return series, nil
}

func (s *gdpServiceImpl) fetch(ctx context.Context, perCapita bool) (models.RawSeries, error) {
	body, err := getJSON(ctx, s.httpClient, s.url)
	if err != nil {
		return nil, err
	}
	return parseGDPResponse(body, perCapita)
}

func parseGDPResponse(body []byte, perCapita bool) (models.RawSeries, error) {
	var data ibgeAggregateResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: failed to decode IBGE response: %v", ErrFetchFailed, err)
	}

	index := gdpResultIndex
	if perCapita {
		index = gdpPerCapitaResultIndex
	}
	if len(data) <= gdpPerCapitaResultIndex {
		return nil, fmt.Errorf("%w: expected 2 variables in IBGE response, got %d", ErrFetchFailed, len(data))
	}
	variable := data[index]
	if len(variable.Resultados) == 0 || len(variable.Resultados[0].Series) == 0 {
		return nil, fmt.Errorf("%w: IBGE variable %q has no series", ErrFetchFailed, variable.ID)
	}
	serie := variable.Resultados[0].Series[0].Serie
	if serie == nil {
		return nil, fmt.Errorf("%w: IBGE variable %q has no serie object", ErrFetchFailed, variable.ID)
	}

	series := make(models.RawSeries, len(serie))
	for yearStr, raw := range serie {
		year, err := parseYear(yearStr)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
		}
		value, ok, err := parseIBGEValue(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: year %d: %v", ErrFetchFailed, year, err)
		}
		if !ok {
			logger.L.Debug("IBGE value not available, skipping year", "variable", variable.ID, "year", year)
			continue
		}
		series[year] = value
	}
	return series, nil
}

// parseIBGEValue accepts both JSON numbers and numeric strings. ok is false for
// the "not available" markers.
func parseIBGEValue(raw json.RawMessage) (value float64, ok bool, err error) {
	text := strings.TrimSpace(string(raw))
	if text == "null" {
		return 0, false, nil
	}
	if unquoted, uerr := strconv.Unquote(text); uerr == nil {
		text = strings.TrimSpace(unquoted)
	}
	if ibgeMissingMarkers[text] {
		return 0, false, nil
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return 0, false, fmt.Errorf("invalid value %q", text)
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false, fmt.Errorf("value %q out of range", text)
	}
	return f, true, nil
}

func parseYear(s string) (int, error) {
	if len(s) != 4 {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("invalid year %q", s)
		}
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	return year, nil
}
