package models

import "sort"

// RawSeries maps a year to an amount in local currency (BRL), exactly as the
// statistics API reports it. Aggregate PIB comes in millions of BRL, PIB per
// capita in whole BRL.
type RawSeries map[int]float64

// ExchangeRateTable maps a year to the BRL per 1 USD rate.
type ExchangeRateTable map[int]float64

// ConvertedSeries maps a year to an amount in USD.
type ConvertedSeries map[int]float64

// PIBRecord is one row of the merged output. Sequences of PIBRecord are always
// sorted ascending by Year.
type PIBRecord struct {
	Year         int     `json:"year"`
	PIB          float64 `json:"pib"`
	PIBPerCapita float64 `json:"pibPerCapita"`
}

// YearValue is the list form of a year-keyed table, used by the JSON endpoints.
type YearValue struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// SortedYears returns the keys of table in ascending order.
func SortedYears[M ~map[int]float64](table M) []int {
	years := make([]int, 0, len(table))
	for year := range table {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

// ToYearValues flattens table into a slice ordered by year.
func ToYearValues[M ~map[int]float64](table M) []YearValue {
	out := make([]YearValue, 0, len(table))
	for _, year := range SortedYears(table) {
		out = append(out, YearValue{Year: year, Value: table[year]})
	}
	return out
}
