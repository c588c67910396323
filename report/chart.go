package report

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/golang/glog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/sbezverk/sortcount/experiment"
)

const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 5 * vg.Inch
)

type metric struct {
	suffix string
	label  string
	value  func(*experiment.Record) float64
}

var metrics = []metric{
	{
		suffix: "elapsed",
		label:  "Elapsed time, ms",
		value:  milliseconds,
	},
	{
		suffix: "num_compares",
		label:  "Number of compares",
		value:  func(r *experiment.Record) float64 { return float64(r.Comparisons) },
	},
}

// ChartName returns the file name of the chart of metric suffix for
// experiment k.
func ChartName(k experiment.Kind, suffix string) string {
	title := k.String()
	if len(title) > 4 {
		title = title[:4]
	}
	return fmt.Sprintf("%s_%s.png", title, suffix)
}

// Charts draws, for every experiment found in records, the elapsed time and
// the number of comparisons against the size, one line per algorithm, on a
// logarithmic scale. It returns the paths of the files written into dir.
// Values which are not positive cannot be placed on the scale and are left
// out.
func Charts(dir string, records []*experiment.Record) ([]string, error) {
	records = Order(records)
	var files []string
	for _, group := range groupByExperiment(records) {
		for _, m := range metrics {
			fn := filepath.Join(dir, ChartName(group[0].Experiment, m.suffix))
			ok, err := drawChart(fn, group, m)
			if err != nil {
				return files, err
			}
			if !ok {
				glog.Warningf("Nothing to draw for %s, skipping", fn)
				continue
			}
			glog.V(5).Infof("Chart saved to %s", fn)
			files = append(files, fn)
		}
	}

	return files, nil
}

// groupByExperiment splits ordered records into runs of the same experiment.
func groupByExperiment(records []*experiment.Record) [][]*experiment.Record {
	var groups [][]*experiment.Record
	for i, r := range records {
		if i == 0 || records[i-1].Experiment != r.Experiment {
			groups = append(groups, nil)
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], r)
	}
	return groups
}

func drawChart(fn string, records []*experiment.Record, m metric) (bool, error) {
	p := plot.New()
	p.Title.Text = records[0].Experiment.String()
	p.X.Label.Text = "Size of array, 2^x elements"
	p.Y.Label.Text = m.label
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = log2Ticks{}
	p.Legend.Top = true
	p.Legend.Left = true

	lines := 0
	minY, maxY := math.Inf(1), math.Inf(-1)
	for start := 0; start < len(records); {
		end := start
		var xys plotter.XYs
		for ; end < len(records) && records[end].Algorithm == records[start].Algorithm; end++ {
			if v := m.value(records[end]); v > 0 {
				xys = append(xys, plotter.XY{X: float64(records[end].Size), Y: v})
				minY = math.Min(minY, v)
				maxY = math.Max(maxY, v)
			}
		}
		if len(xys) != 0 {
			l, err := plotter.NewLine(xys)
			if err != nil {
				return false, fmt.Errorf("failed to build line for %s with error: %w", records[start].Title, err)
			}
			l.Color = plotutil.Color(lines)
			l.Width = vg.Points(1.5)
			p.Add(l)
			p.Legend.Add(records[start].Title, l)
			lines++
		}
		start = end
	}
	if lines == 0 {
		return false, nil
	}
	// a flat range would be widened by 1 on each side, reaching 0
	if minY == maxY {
		minY, maxY = minY/2, maxY*2
	}
	p.Y.Min, p.Y.Max = minY, maxY
	if err := p.Save(chartWidth, chartHeight, fn); err != nil {
		return false, fmt.Errorf("failed to save chart %s with error: %w", fn, err)
	}

	return true, nil
}

// log2Ticks marks powers of two on a logarithmic axis, labelling at most
// maxLabels of them.
type log2Ticks struct{}

const maxLabels = 10

var _ plot.Ticker = log2Ticks{}

func (log2Ticks) Ticks(min, max float64) []plot.Tick {
	if min <= 0 || max < min {
		return nil
	}
	lo := int(math.Ceil(math.Log2(min)))
	hi := int(math.Floor(math.Log2(max)))
	if lo > hi {
		return []plot.Tick{
			{Value: min, Label: fmt.Sprintf("%.3g", min)},
			{Value: max, Label: fmt.Sprintf("%.3g", max)},
		}
	}
	step := (hi - lo + maxLabels) / maxLabels
	ticks := make([]plot.Tick, 0, hi-lo+1)
	for e := lo; e <= hi; e++ {
		t := plot.Tick{Value: math.Exp2(float64(e))}
		if (e-lo)%step == 0 {
			t.Label = fmt.Sprintf("2^%d", e)
		}
		ticks = append(ticks, t)
	}
	return ticks
}
