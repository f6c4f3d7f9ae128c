package plotting

import (
	"fmt"
	"math"
	"strings"

	"github.com/activecm/synplot/histogram"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// barGlyph is the cell used to draw a bar in the terminal
const barGlyph = "█"

// markerRows returns, for every bin, the markers whose x position falls
// inside it. Markers outside the histogram range are attached to the
// nearest edge bin.
func markerRows(f *Figure) map[int][]Marker {
	rows := make(map[int][]Marker)
	h := f.Histogram
	last := h.Bins() - 1
	for _, marker := range f.Markers {
		row := last
		for i := 0; i < h.Bins(); i++ {
			if marker.X < h.Edges[i+1] {
				row = i
				break
			}
		}
		rows[row] = append(rows[row], marker)
	}
	return rows
}

// tviewColor converts a chart color into a tview color tag
func tviewColor(c drawing.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// TerminalBars renders the histogram as one horizontal bar per bin using
// tview color tags. width is the number of cells the longest bar occupies.
func TerminalBars(f *Figure, width int) string {
	h := f.Histogram
	max := h.MaxCount()
	markers := markerRows(f)

	var b strings.Builder
	fmt.Fprintf(&b, "[::b]%s[::-]\n", tview.Escape(f.XLabel))
	for i, count := range h.Counts {
		cells := 0
		if max > 0 {
			cells = int(math.Round(float64(count) / float64(max) * float64(width)))
		}
		fmt.Fprintf(&b, "%8.1f-%-8.1f [%s]%s[-]%s %d",
			h.Edges[i], h.Edges[i+1],
			tviewColor(f.Bars.Color), strings.Repeat(barGlyph, cells),
			strings.Repeat(" ", width-cells), count,
		)
		for _, marker := range markers[i] {
			fmt.Fprintf(&b, " [%s]<- %s (x=%g)[-]", tviewColor(marker.Color), tview.Escape(marker.Label), marker.X)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "[::b]%s[::-] per bar, %s = %s", tview.Escape(f.YLabel), tview.Escape(f.Bars.Label), barGlyph)
	return b.String()
}

// terminalSummary formats the descriptive statistics panel
func terminalSummary(summary histogram.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Records:    %d\n", summary.Records)
	fmt.Fprintf(&b, "Bins:       %d (width %.2f)\n", summary.Bins, summary.BinWidth)
	fmt.Fprintf(&b, "Mean:       %.2f\n", summary.Mean)
	fmt.Fprintf(&b, "Median:     %.2f\n", summary.Median)
	fmt.Fprintf(&b, "Std Dev:    %.2f\n", summary.StdDev)
	fmt.Fprintf(&b, "Peak:       %d in [%.1f, %.1f]\n", summary.MaxCount, summary.PeakStart, summary.PeakEnd)
	fmt.Fprintf(&b, "\nWindow:     [%g, %g]\n", summary.WindowStart, summary.WindowEnd)
	fmt.Fprintf(&b, "Inside:     %d\n", summary.InWindow)
	fmt.Fprintf(&b, "Outside:    %d\n", summary.OutsideWindow)
	return b.String()
}

// terminalView is an interactive tview page showing the figure
type terminalView struct {
	app     *tview.Application
	bars    *tview.TextView
	summary *tview.TextView
}

func newTerminalView(f *Figure, summary histogram.Summary) *terminalView {
	v := &terminalView{app: tview.NewApplication()}

	v.bars = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	v.bars.SetBorder(true).
		SetTitle(" " + f.Title + " ")
	v.bars.SetText(TerminalBars(f, 50))

	v.summary = tview.NewTextView().
		SetDynamicColors(true)
	v.summary.SetBorder(true).
		SetTitle(" Summary ")
	v.summary.SetText(terminalSummary(summary))

	help := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText("q/Esc: quit   Up/Down: scroll")

	body := tview.NewFlex().
		AddItem(v.bars, 0, 3, true).
		AddItem(v.summary, 36, 1, false)

	root := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(body, 0, 1, true).
		AddItem(help, 1, 0, false)

	v.app.SetRoot(root, true).
		SetFocus(v.bars).
		SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
			switch event.Key() {
			case tcell.KeyEsc:
				v.app.Stop()
				return nil
			case tcell.KeyRune:
				if event.Rune() == 'q' {
					v.app.Stop()
					return nil
				}
			}
			return event
		})
	return v
}

// run blocks until the user leaves the view
func (v *terminalView) run() error {
	return v.app.Run()
}
