// Package report turns benchmark records into an ASCII table, a CSV file and
// per-experiment charts.
package report

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sbezverk/sortcount/experiment"
)

var header = []string{"Experiment", "Algorithm", "Size, 2^x", "Elapsed, ms", "Comparisons"}

// lineData is a table row, hr draws a rule under it.
type lineData struct {
	values []string
	hr     bool
}

// Table renders records as an ASCII table, ordered like Order does, with a
// rule between experiments.
func Table(records []*experiment.Record) (string, error) {
	if len(records) == 0 {
		return "", errors.New("no records to display")
	}
	records = Order(records)
	lines := make([]*lineData, 0, len(records))
	for i, r := range records {
		lines = append(lines, &lineData{
			values: row(r),
			hr:     i == len(records)-1 || records[i+1].Experiment != r.Experiment,
		})
	}

	widths := columnsWidths(header, lines)
	builder := &strings.Builder{}
	drawHR(builder, widths)
	drawLine(builder, widths, header)
	drawHR(builder, widths)
	for _, l := range lines {
		drawLine(builder, widths, l.values)
		if l.hr {
			drawHR(builder, widths)
		}
	}

	return builder.String(), nil
}

func row(r *experiment.Record) []string {
	return []string{
		r.Experiment.String(),
		r.Title,
		fmt.Sprintf("%d", r.Size),
		fmt.Sprintf("%.3f", milliseconds(r)),
		fmt.Sprintf("%d", r.Comparisons),
	}
}

func milliseconds(r *experiment.Record) float64 {
	return float64(r.Elapsed.Nanoseconds()) / 1e6
}

func columnsWidths(header []string, lines []*lineData) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, l := range lines {
		for j, v := range l.values {
			if j >= len(widths) {
				widths = append(widths, len(v))
				continue
			}
			if widths[j] < len(v) {
				widths[j] = len(v)
			}
		}
	}
	return widths
}

func drawHR(builder *strings.Builder, widths []int) {
	builder.WriteByte('+')
	for _, w := range widths {
		builder.WriteString(strings.Repeat("-", w+2))
		builder.WriteByte('+')
	}
	builder.WriteByte('\n')
}

func drawLine(builder *strings.Builder, widths []int, values []string) {
	builder.WriteByte('|')
	for i, w := range widths {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		builder.WriteByte(' ')
		builder.WriteString(v)
		builder.WriteString(strings.Repeat(" ", w-len(v)))
		builder.WriteString(" |")
	}
	builder.WriteByte('\n')
}
