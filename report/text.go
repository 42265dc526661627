package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/hsivonen/udhrlen/model"
	"github.com/hsivonen/udhrlen/stats"
)

// WriteText renders the comparison as a plain terminal table: the same rows
// and columns as the HTML report, without the color scale.
func WriteText(w io.Writer, records []model.Record, summaries stats.Summaries) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	header := table.Row{"Name"}
	for _, axis := range model.Axes {
		header = append(header, axis.String(), "Δ%")
	}
	header = append(header, "Script")
	t.AppendHeader(header)

	for _, rec := range byUTF8(records) {
		t.AppendRow(textRow(rec, summaries))
	}

	t.AppendFooter(textRow(summaryRecord("Min", summaries, func(s stats.Summary) int { return s.Min }), summaries))
	medianRow := table.Row{"Median"}
	for _, axis := range model.Axes {
		medianRow = append(medianRow, summaries.Get(axis).Median, "")
	}
	medianRow = append(medianRow, "")
	t.AppendFooter(medianRow)
	t.AppendFooter(textRow(summaryRecord("Mean", summaries, func(s stats.Summary) int { return s.Mean }), summaries))
	t.AppendFooter(textRow(summaryRecord("Max (ignoring outlier)", summaries, func(s stats.Summary) int { return s.MaxExcl }), summaries))
	t.AppendFooter(textRow(summaryRecord("Max", summaries, func(s stats.Summary) int { return s.Max }), summaries))

	t.Render()
	return nil
}

func textRow(rec model.Record, summaries stats.Summaries) table.Row {
	row := table.Row{rec.Name}
	for _, axis := range model.Axes {
		count := rec.Counts.Get(axis)
		row = append(row, count, fmt.Sprintf("%.1f", DeviationPercent(count, summaries.Get(axis).Median)))
	}
	row = append(row, rec.Script)
	return row
}
