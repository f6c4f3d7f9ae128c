package printing

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/activecm/synplot/histogram"
	jsoniter "github.com/json-iterator/go"
	"github.com/olekukonko/tablewriter"
)

// binHeader names the columns of the bin listing
var binHeader = []string{"Bin", "Start", "End", "Count"}

type (
	// binJSON is the machine readable form of a single bin
	binJSON struct {
		Bin   int     `json:"bin"`
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Count int     `json:"count"`
	}

	// histogramJSON is the machine readable form of a histogram
	histogramJSON struct {
		Records int       `json:"records"`
		Bins    []binJSON `json:"bins"`
	}
)

// helper functions for formatting floats and integers
func f(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}
func i(i int) string {
	return strconv.Itoa(i)
}

func binRows(h *histogram.Histogram) [][]string {
	rows := make([][]string, 0, h.Bins())
	for idx, count := range h.Counts {
		rows = append(rows, []string{i(idx), f(h.Edges[idx]), f(h.Edges[idx+1]), i(count)})
	}
	return rows
}

// WriteBins prints one CSV row per bin
func WriteBins(w io.Writer, h *histogram.Histogram) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(binHeader); err != nil {
		return err
	}
	if err := csvWriter.WriteAll(binRows(h)); err != nil {
		return err
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// WriteBinsHuman prints the bins as an ascii table
func WriteBinsHuman(w io.Writer, h *histogram.Histogram) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader(binHeader)
	table.AppendBulk(binRows(h))
	table.SetFooter([]string{"", "", "Total", i(h.Total)})
	table.Render()
	return nil
}

// WriteBinsJSON prints the bins as an indented JSON document
func WriteBinsJSON(w io.Writer, h *histogram.Histogram) error {
	doc := histogramJSON{
		Records: h.Total,
		Bins:    make([]binJSON, 0, h.Bins()),
	}
	for idx, count := range h.Counts {
		doc.Bins = append(doc.Bins, binJSON{
			Bin:   idx,
			Start: h.Edges[idx],
			End:   h.Edges[idx+1],
			Count: count,
		})
	}

	out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}
