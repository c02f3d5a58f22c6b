package processors

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/username/pibconectar/src/logger"
	"github.com/username/pibconectar/src/models"
)

// PIBProcessor merges PIB and PIB per capita into one ordered series.
type PIBProcessor struct {
	converter Converter
}

func NewPIBProcessor(converter Converter) *PIBProcessor {
	return &PIBProcessor{converter: converter}
}

// Assemble runs both conversions concurrently and joins them by year. When
// either conversion fails the records are empty (never nil) and err carries
// every failure.
func (p *PIBProcessor) Assemble(ctx context.Context) ([]models.PIBRecord, error) {
	var (
		wg                sync.WaitGroup
		gdp, gdpPerCapita models.ConvertedSeries
		gdpErr, pcErr     error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		gdp, gdpErr = p.converter.GDPInUSD(ctx)
	}()
	go func() {
		defer wg.Done()
		gdpPerCapita, pcErr = p.converter.GDPPerCapitaInUSD(ctx)
	}()
	wg.Wait()

	var result *multierror.Error
	if gdpErr != nil || gdp == nil {
		result = multierror.Append(result, fmt.Errorf("PIB: %w", orMissing(gdpErr)))
	}
	if pcErr != nil || gdpPerCapita == nil {
		result = multierror.Append(result, fmt.Errorf("PIB per capita: %w", orMissing(pcErr)))
	}
	if err := result.ErrorOrNil(); err != nil {
		return []models.PIBRecord{}, err
	}
	return JoinPIBSeries(gdp, gdpPerCapita), nil
}

// AssemblePIBRecords is the degrade-to-empty form of Assemble: any upstream
// failure is logged and yields an empty sequence.
func (p *PIBProcessor) AssemblePIBRecords(ctx context.Context) []models.PIBRecord {
	records, err := p.Assemble(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn("PIB data unavailable, returning empty dataset", "error", err)
	}
	return records
}

// Load assembles the records and hands them to apply unless ctx is done by
// then. In-flight requests are not aborted when ctx is cancelled; only the
// delivery of the late result is suppressed. It reports whether apply ran.
func (p *PIBProcessor) Load(ctx context.Context, apply func([]models.PIBRecord, error)) bool {
	records, err := p.Assemble(context.WithoutCancel(ctx))
	if ctx.Err() != nil {
		logger.FromContext(ctx).Debug("Consumer went away, discarding PIB records", "records", len(records))
		return false
	}
	apply(records, err)
	return true
}

// JoinPIBSeries inner-joins the two USD series by year and sorts the result
// ascending. Years missing from either side are dropped.
func JoinPIBSeries(gdp, gdpPerCapita models.ConvertedSeries) []models.PIBRecord {
	combined := make([]models.PIBRecord, 0, len(gdp))
	for year, pib := range gdp {
		pibPerCapita, ok := gdpPerCapita[year]
		if !ok {
			continue
		}
		combined = append(combined, models.PIBRecord{Year: year, PIB: pib, PIBPerCapita: pibPerCapita})
	}
	sort.Slice(combined, func(i, j int) bool { return combined[i].Year < combined[j].Year })
	return combined
}

func orMissing(err error) error {
	if err == nil {
		return errMissingData
	}
	return err
}
