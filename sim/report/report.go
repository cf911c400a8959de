// Package report formats finalized simulation results for the console:
// a summary table per batch plus the percentage-improvement comparison
// against the first scenario.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/callsim/callsim/sim"
	"github.com/callsim/callsim/sim/experiment"
)

// WriteResult prints the metrics of a single finalized run.
func WriteResult(w io.Writer, r *sim.RunResult) error {
	table := tablewriter.NewWriter(w)
	table.Header("Scenario", "Arrived", "Served", "Avg Wait", "P95 Wait", "Max Queue", "Utilization")
	if err := table.Append(
		r.Label,
		fmt.Sprint(r.CallsArrived),
		fmt.Sprint(r.CallsServed),
		fmt.Sprintf("%.2f", r.AvgWait),
		fmt.Sprintf("%.2f", r.P95Wait),
		fmt.Sprint(r.MaxQueue),
		fmt.Sprintf("%.1f%%", r.Utilization*100),
	); err != nil {
		return err
	}
	return table.Render()
}

// WriteComparison prints one row per scenario plus the avg-wait improvement
// of every scenario relative to the first one, mirroring how call center
// sizing studies are usually read: "what did the extra agents buy us".
func WriteComparison(w io.Writer, summaries []*experiment.ScenarioSummary) error {
	if len(summaries) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("Scenario", "Agents", "Avg Wait", "Max Queue", "Throughput", "Utilization")
	for _, ss := range summaries {
		if err := table.Append(
			ss.Config.Label,
			fmt.Sprint(ss.Config.NumAgents),
			fmt.Sprintf("%.2f", ss.MeanAvgWait),
			fmt.Sprintf("%.1f", ss.MeanMaxQueue),
			fmt.Sprintf("%.0f", ss.MeanThroughput),
			fmt.Sprintf("%.1f%%", ss.MeanUtilization*100),
		); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	base := summaries[0]
	fmt.Fprintln(w, "\nComparison against", base.Config.Label+":")
	fmt.Fprintf(w, "  %-12s avg wait = %.2f steps (baseline)\n", base.Config.Label, base.MeanAvgWait)
	for _, ss := range summaries[1:] {
		improvement := improvementPct(base.MeanAvgWait, ss.MeanAvgWait)
		line := fmt.Sprintf("  %-12s avg wait = %.2f steps (%.1f%% improvement)",
			ss.Config.Label, ss.MeanAvgWait, improvement)
		if improvement > 0 {
			line = color.GreenString(line)
		} else if improvement < 0 {
			line = color.RedString(line)
		}
		fmt.Fprintln(w, line)
	}
	return nil
}

// improvementPct returns how much lower next is than base, as a percentage
// of base. Defined as 0 when base is 0 to keep idle systems comparable.
func improvementPct(base, next float64) float64 {
	if base == 0 {
		return 0
	}
	return (base - next) / base * 100
}
