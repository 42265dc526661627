package report

import (
	"fmt"
	"io"
	"sort"

	"golang.org/x/net/html"

	"github.com/hsivonen/udhrlen/model"
	"github.com/hsivonen/udhrlen/stats"
)

// linkBase is where unicode.org publishes the per-translation pages the
// name column links to.
const linkBase = "https://www.unicode.org/udhr/d/"

// printer writes formatted fragments and remembers the first write error,
// so row helpers can stay free of error plumbing.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, args...)
	}
}

// WriteHTML renders the comparison table as HTML markup. Body rows appear in
// ascending UTF-8 order. Each metric renders two cells, the count and its
// deviation percent from the axis median, both carrying an inline hsl
// background derived from that comparison.
func WriteHTML(w io.Writer, records []model.Record, summaries stats.Summaries) error {
	p := &printer{w: w}

	p.printf("<table id=counts>\n")
	p.printf("<thead>\n")
	p.printf("<tr><th>Name</th>")
	for _, axis := range model.Axes {
		p.printf("<th>%s</th><th>Δ%%</th>", axis)
	}
	p.printf("<th>Script</th></tr>\n")
	p.printf("</thead>\n")

	p.printf("<tbody>\n")
	for _, rec := range byUTF8(records) {
		writeRow(p, rec, summaries)
	}
	p.printf("</tbody>\n")

	p.printf("<tfoot>\n")
	writeRow(p, summaryRecord("Min", summaries, func(s stats.Summary) int { return s.Min }), summaries)
	writeMedianRow(p, summaries)
	writeRow(p, summaryRecord("Mean", summaries, func(s stats.Summary) int { return s.Mean }), summaries)
	writeRow(p, summaryRecord("Max (ignoring outlier)", summaries, func(s stats.Summary) int { return s.MaxExcl }), summaries)
	writeRow(p, summaryRecord("Max", summaries, func(s stats.Summary) int { return s.Max }), summaries)
	p.printf("</tfoot>\n")
	p.printf("</table>\n")

	return p.err
}

// byUTF8 returns the records ordered by ascending UTF-8 count without
// touching the caller's slice.
func byUTF8(records []model.Record) []model.Record {
	ordered := make([]model.Record, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Counts.UTF8 < ordered[j].Counts.UTF8
	})
	return ordered
}

// summaryRecord synthesizes a footer row from one statistic of each axis.
func summaryRecord(name string, summaries stats.Summaries, pick func(stats.Summary) int) model.Record {
	return model.Record{
		Name: name,
		Counts: model.Counts{
			UTF8:      pick(summaries.Get(model.UTF8)),
			UTF16:     pick(summaries.Get(model.UTF16)),
			UTF32:     pick(summaries.Get(model.UTF32)),
			Graphemes: pick(summaries.Get(model.Graphemes)),
			Width:     pick(summaries.Get(model.Width)),
		},
	}
}

func writeRow(p *printer, rec model.Record, summaries stats.Summaries) {
	p.printf("<tr>\n")
	if rec.Code != "" {
		p.printf("<th><a href=\"%sudhr_%s.html\">%s</a></th>\n",
			linkBase, rec.Code, html.EscapeString(rec.Name))
	} else {
		p.printf("<th>%s</th>\n", html.EscapeString(rec.Name))
	}
	for _, axis := range model.Axes {
		writeCountCells(p, rec.Counts.Get(axis), summaries.Get(axis).Median)
	}
	p.printf("<td>%s</td>\n", html.EscapeString(rec.Script))
	p.printf("</tr>\n")
}

func writeCountCells(p *printer, count, median int) {
	hue, saturation := Colorize(median, count)
	p.printf("<td style='background-color: hsl(%d, %.6f%%, 65%%);'>%d</td>"+
		"<td style='background-color: hsl(%d, %.6f%%, 65%%);'>%.1f</td>\n",
		hue, saturation, count,
		hue, saturation, DeviationPercent(count, median))
}

// writeMedianRow renders the medians as plain cells; a median's deviation
// from itself is always zero, so the Δ% cells stay empty.
func writeMedianRow(p *printer, summaries stats.Summaries) {
	p.printf("<tr><th>Median</th>")
	for _, axis := range model.Axes {
		p.printf("<td>%d</td><td></td>", summaries.Get(axis).Median)
	}
	p.printf("<td></td></tr>\n")
}
