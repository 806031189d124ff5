package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/expknap/bench"
	"github.com/katalvlaran/expknap/instance"
	"github.com/katalvlaran/expknap/knapsack"
)

const floatPrecision = 2

func newTable(w io.Writer) table.Writer {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)

	return tbl
}

// renderSummary prints a run summary as a two-column table.
func renderSummary(w io.Writer, s bench.Summary) {
	fmt.Fprintf(w, "expknap n=%s r=%s\n", humanize.Comma(int64(s.Items)), humanize.Comma(int64(s.Range)))

	tbl := newTable(w)
	tbl.AppendHeader(table.Row{"statistic", "value"})
	tbl.AppendRows([]table.Row{
		{"type", s.Type},
		{"instances", s.Tests},
		{"iterations", humanize.CommafWithDigits(s.Iterations, 0)},
		{"touched", fmt.Sprintf("%s (%.1f%%)", humanize.CommafWithDigits(s.Touched, 1), s.TouchedPct)},
		{"reduced", humanize.CommafWithDigits(s.Reduced, 1)},
		{"core size", fmt.Sprintf("%s (%.2f%%)", humanize.CommafWithDigits(s.CoreSize, 0), s.CorePct)},
		{"greedy gap", humanize.CommafWithDigits(s.GreedyGap, 1)},
		{"LP gap", humanize.CommafWithDigits(s.Gap, 1)},
		{"zsum", s.ZSum},
		{"csum", s.CSum},
	})
	tbl.AppendSeparator()
	tbl.AppendRows([]table.Row{
		{"mean time", humanize.SIWithDigits(s.MeanTime, floatPrecision, "s")},
		{"variance", fmt.Sprintf("%.3g s²", s.Variance)},
		{"stddev", humanize.SIWithDigits(s.StdDev, floatPrecision, "s")},
	})
	tbl.Render()
}

// renderSolution prints the selected items of a solved instance. With all
// set, rejected items are listed as well.
func renderSolution(w io.Writer, in instance.Instance, res knapsack.Result, all bool) {
	tbl := newTable(w)
	tbl.AppendHeader(table.Row{"#", "profit", "weight", "selected"})

	var weight int64
	for i, it := range in.Items {
		if res.Selected[i] {
			weight += it.Weight
		}
		if !all && !res.Selected[i] {
			continue
		}
		tbl.AppendRow(table.Row{i, humanize.Comma(it.Profit), humanize.Comma(it.Weight), res.Selected[i]})
	}

	tbl.AppendFooter(table.Row{
		"total",
		humanize.Comma(res.Profit),
		fmt.Sprintf("%s / %s", humanize.Comma(weight), humanize.Comma(in.Capacity)),
		"",
	})
	tbl.Render()
}

// renderStats prints the search statistics of one solve.
func renderStats(w io.Writer, st knapsack.Stats) {
	tbl := newTable(w)
	tbl.AppendHeader(table.Row{"statistic", "value"})
	tbl.AppendRows([]table.Row{
		{"iterations", humanize.Comma(st.Iterations)},
		{"expansions", humanize.Comma(st.Expansions)},
		{"touched", humanize.Comma(st.Touched)},
		{"reduced", humanize.Comma(st.Reduced)},
		{"core size", humanize.Comma(int64(st.CoreSize))},
		{"heuristic", humanize.Comma(st.Heuristic)},
		{"dantzig bound", humanize.Comma(st.Dantzig)},
	})
	tbl.Render()
}

// renderMetrics prints the current value of every gathered series.
func renderMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	sort.Slice(families, func(i, j int) bool { return families[i].GetName() < families[j].GetName() })

	tbl := newTable(w)
	tbl.AppendHeader(table.Row{"metric", "labels", "value"})
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}

			var value string
			switch {
			case m.GetCounter() != nil:
				value = humanize.Commaf(m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				value = humanize.Commaf(m.GetGauge().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				value = fmt.Sprintf("count=%d sum=%s", h.GetSampleCount(), humanize.SIWithDigits(h.GetSampleSum(), floatPrecision, "s"))
			}
			tbl.AppendRow(table.Row{mf.GetName(), strings.Join(labels, ","), value})
		}
	}
	tbl.Render()

	return nil
}
