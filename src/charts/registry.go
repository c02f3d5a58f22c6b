package charts

import (
	"sync"
	"sync/atomic"
)

// DatasetStyle is the presentation of one series on the PIB chart.
type DatasetStyle struct {
	Label           string
	BorderColor     string
	BackgroundColor string
	YAxisID         string
}

// Axis describes one scale of the chart.
type Axis struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Position string `json:"position"`
	Title    string `json:"title"`
	Grid     bool   `json:"drawOnChartArea"`
}

const (
	SeriesPIB          = "pib"
	SeriesPIBPerCapita = "pibPerCapita"
)

var (
	registerOnce sync.Once
	registered   atomic.Bool
	styles       map[string]DatasetStyle
	axes         []Axis
)

// Register installs the dataset styles and axes used by every PIB chart.
// It is safe to call more than once; only the first call has an effect.
func Register() {
	registerOnce.Do(func() {
		styles = map[string]DatasetStyle{
			SeriesPIB: {
				Label:           "PIB (USD)",
				BorderColor:     "#1bb17a",
				BackgroundColor: "#1bb17a3a",
				YAxisID:         "y",
			},
			SeriesPIBPerCapita: {
				Label:           "PIB Per Capita (USD)",
				BorderColor:     "#f58561",
				BackgroundColor: "#f5866148",
				YAxisID:         "y1",
			},
		}
		axes = []Axis{
			{ID: "x", Type: "category", Position: "bottom", Title: "Year", Grid: true},
			{ID: "y", Type: "linear", Position: "left", Title: "PIB (USD)", Grid: true},
			{ID: "y1", Type: "linear", Position: "right", Title: "PIB Per Capita (USD)", Grid: false},
		}
		registered.Store(true)
	})
}

// isRegistered reports whether Register has run.
func isRegistered() bool {
	return registered.Load()
}
