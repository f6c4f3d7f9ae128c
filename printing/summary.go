package printing

import (
	"encoding/csv"
	"io"

	"github.com/activecm/synplot/histogram"
	"github.com/olekukonko/tablewriter"
)

func summaryRows(s histogram.Summary) [][]string {
	return [][]string{
		{"Records", i(s.Records)},
		{"Bins", i(s.Bins)},
		{"Bin Width", f(s.BinWidth)},
		{"Mean", f(s.Mean)},
		{"Median", f(s.Median)},
		{"Std Dev", f(s.StdDev)},
		{"Peak Count", i(s.MaxCount)},
		{"Peak Start", f(s.PeakStart)},
		{"Peak End", f(s.PeakEnd)},
		{"Window Start", f(s.WindowStart)},
		{"Window End", f(s.WindowEnd)},
		{"In Window", i(s.InWindow)},
		{"Outside Window", i(s.OutsideWindow)},
	}
}

// WriteSummary prints the summary statistics as CSV
func WriteSummary(w io.Writer, s histogram.Summary) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write([]string{"Statistic", "Value"}); err != nil {
		return err
	}
	if err := csvWriter.WriteAll(summaryRows(s)); err != nil {
		return err
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// WriteSummaryHuman prints the summary statistics as an ascii table
func WriteSummaryHuman(w io.Writer, s histogram.Summary) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Statistic", "Value"})
	table.AppendBulk(summaryRows(s))
	table.Render()
	return nil
}
