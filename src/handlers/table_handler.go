package handlers

import (
	"html/template"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/username/pibconectar/src/models"
)

var tableTemplate = template.Must(template.New("table").Funcs(template.FuncMap{
	"usd": formatUSD,
}).Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head><meta charset="utf-8"><title>PIB Conéctar</title></head>
<body>
<h1>Brazilian PIB (USD)</h1>
{{if .Unavailable}}<p class="notice">Data is temporarily unavailable.</p>{{end}}
<table>
<thead><tr><th>Year</th><th>PIB</th><th>PIB Per Capita</th></tr></thead>
<tbody>
{{range .Records}}<tr><td>{{.Year}}</td><td>{{usd .PIB}}</td><td>{{usd .PIBPerCapita}}</td></tr>
{{end}}</tbody>
</table>
</body>
</html>
`))

type tablePage struct {
	Records     []models.PIBRecord
	Unavailable bool
}

// formatUSD renders 1234567.891 as "$1,234,567.89" and 6000 as "$6,000.00".
func formatUSD(v float64) string {
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// HandleGetPIBTable renders the merged records as an HTML table. Upstream
// failures render an empty table with a notice.
func (h *PIBHandler) HandleGetPIBTable(w http.ResponseWriter, r *http.Request) {
	h.pibProcessor.Load(r.Context(), func(records []models.PIBRecord, err error) {
		page := tablePage{Records: records, Unavailable: err != nil}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tableTemplate.Execute(w, page); err != nil {
			http.Error(w, "failed to render table", http.StatusInternalServerError)
		}
	})
}
