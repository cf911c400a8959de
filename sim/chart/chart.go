// Package chart renders finalized batch results into PNG artifacts: bar
// charts of average wait and peak queue length per scenario, and a line
// chart of the queue-length series over time. The output directory is an
// explicit parameter; the package holds no global paths.
package chart

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/callsim/callsim/sim/experiment"
)

// File names of the three rendered artifacts, relative to the output dir.
const (
	AvgWaitFile     = "avg_wait.png"
	MaxQueueFile    = "max_queue.png"
	QueueSeriesFile = "queue_timeseries.png"
)

// RenderAll writes the three comparison charts for a batch into dir,
// creating it if needed.
func RenderAll(dir string, summaries []*experiment.ScenarioSummary) error {
	if len(summaries) == 0 {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating chart dir: %w", err)
	}

	labels := make([]string, len(summaries))
	avgWaits := make(plotter.Values, len(summaries))
	maxQueues := make(plotter.Values, len(summaries))
	for i, ss := range summaries {
		labels[i] = ss.Config.Label
		avgWaits[i] = ss.MeanAvgWait
		maxQueues[i] = ss.MeanMaxQueue
	}

	if err := renderBars(filepath.Join(dir, AvgWaitFile),
		"Average Waiting Time by Scenario", "Average wait (steps)", labels, avgWaits); err != nil {
		return err
	}
	if err := renderBars(filepath.Join(dir, MaxQueueFile),
		"Max Queue Length by Scenario", "Max queue length", labels, maxQueues); err != nil {
		return err
	}
	return renderQueueSeries(filepath.Join(dir, QueueSeriesFile), summaries)
}

func renderBars(path, title, yLabel string, labels []string, values plotter.Values) error {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return fmt.Errorf("building bar chart: %w", err)
	}
	bars.LineStyle.Width = 0
	bars.Color = plotutil.Color(0)
	p.Add(bars)
	p.NominalX(labels...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// renderQueueSeries overlays each scenario's representative queue-length
// series over time.
func renderQueueSeries(path string, summaries []*experiment.ScenarioSummary) error {
	p := plot.New()
	p.Title.Text = "Queue Length Over Time"
	p.X.Label.Text = "Time (steps)"
	p.Y.Label.Text = "Queue length"

	args := make([]interface{}, 0, 2*len(summaries))
	for _, ss := range summaries {
		series := ss.Representative().QueueLengthSeries
		xys := make(plotter.XYs, len(series))
		for t, length := range series {
			xys[t].X = float64(t)
			xys[t].Y = float64(length)
		}
		args = append(args, ss.Config.Label, xys)
	}
	if err := plotutil.AddLines(p, args...); err != nil {
		return fmt.Errorf("building queue series chart: %w", err)
	}

	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
