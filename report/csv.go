package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/sbezverk/sortcount/experiment"
)

// WriteCSV writes records to w, one row per record plus a header row.
func WriteCSV(w io.Writer, records []*experiment.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"experiment", "algorithm", "size", "elapsed_ms", "comparisons"}); err != nil {
		return err
	}
	for _, r := range Order(records) {
		if err := cw.Write([]string{
			r.Experiment.String(),
			r.Algorithm,
			fmt.Sprintf("%d", r.Size),
			fmt.Sprintf("%.6f", milliseconds(r)),
			fmt.Sprintf("%d", r.Comparisons),
		}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
