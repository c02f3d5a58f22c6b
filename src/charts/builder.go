package charts

import (
	"strconv"

	"github.com/username/pibconectar/src/models"
)

const chartTitle = "Brazilian PIB/PIB Per Capita Evolution"

// Dataset is one line of the chart.
type Dataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BorderColor     string    `json:"borderColor"`
	BackgroundColor string    `json:"backgroundColor"`
	YAxisID         string    `json:"yAxisID"`
}

// ChartConfig is the line chart payload served to the browser.
type ChartConfig struct {
	Title    string    `json:"title"`
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
	Axes     []Axis    `json:"axes"`
}

// BuildPIBChart turns ordered records into a two-axis line chart. Records are
// plotted in the order given.
func BuildPIBChart(records []models.PIBRecord) ChartConfig {
	Register()

	labels := make([]string, 0, len(records))
	pib := make([]float64, 0, len(records))
	pibPerCapita := make([]float64, 0, len(records))
	for _, r := range records {
		labels = append(labels, strconv.Itoa(r.Year))
		pib = append(pib, r.PIB)
		pibPerCapita = append(pibPerCapita, r.PIBPerCapita)
	}

	return ChartConfig{
		Title:  chartTitle,
		Labels: labels,
		Datasets: []Dataset{
			newDataset(SeriesPIB, pib),
			newDataset(SeriesPIBPerCapita, pibPerCapita),
		},
		Axes: append([]Axis(nil), axes...),
	}
}

func newDataset(series string, data []float64) Dataset {
	style := styles[series]
	return Dataset{
		Label:           style.Label,
		Data:            data,
		BorderColor:     style.BorderColor,
		BackgroundColor: style.BackgroundColor,
		YAxisID:         style.YAxisID,
	}
}
