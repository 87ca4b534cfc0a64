// Package outputlib renders analysis results as text, tables, TSV, JSON or terminal charts
package outputlib

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"goWordStats/freqlib"
	"goWordStats/statlib"
	"goWordStats/wordcountlib"
)

// Output formats
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
	FormatChart = "chart"
)

// Writer prints results in one format
type Writer struct {
	Out        io.Writer
	Format     string
	ChartWidth int
}

// New returns a writer; an empty format means text
func New(out io.Writer, format string, chartWidth int) *Writer {
	if format == "" {
		format = FormatText
	}
	if chartWidth <= 0 {
		chartWidth = 50
	}
	return &Writer{Out: out, Format: format, ChartWidth: chartWidth}
}

// grid is a titled block of rows shared by the text, table and tsv formats
type grid struct {
	title  string
	header []string
	rows   [][]string
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (w *Writer) writeJSON(v interface{}) error {
	enc := json.NewEncoder(w.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (w *Writer) writeText(grids []grid) error {
	for i, g := range grids {
		if i > 0 {
			fmt.Fprintln(w.Out)
		}
		if g.title != "" {
			fmt.Fprintln(w.Out, g.title)
		}
		fmt.Fprintln(w.Out, "# "+strings.Join(g.header, "\t"))
		for _, row := range g.rows {
			if _, err := fmt.Fprintln(w.Out, strings.Join(row, "\t")); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *Writer) writeTable(grids []grid) error {
	for _, g := range grids {
		if g.title != "" {
			fmt.Fprintln(w.Out, g.title)
		}
		table := tablewriter.NewWriter(w.Out)
		table.SetHeader(g.header)
		table.SetAlignment(tablewriter.ALIGN_RIGHT)
		table.AppendBulk(g.rows)
		table.Render()
	}
	return nil
}

// writeTSV writes one tab separated record per row, the grid title as first column
func (w *Writer) writeTSV(grids []grid) error {
	csvWriter := csv.NewWriter(w.Out)
	csvWriter.Comma = '\t'

	for i, g := range grids {
		if i == 0 {
			if err := csvWriter.Write(append([]string{"name"}, g.header...)); err != nil {
				return err
			}
		}
		for _, row := range g.rows {
			if err := csvWriter.Write(append([]string{g.title}, row...)); err != nil {
				return err
			}
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

func (w *Writer) writeGrids(grids []grid, jsonValue interface{}, charts []bars) error {
	switch w.Format {
	case FormatJSON:
		return w.writeJSON(jsonValue)
	case FormatTable:
		return w.writeTable(grids)
	case FormatTSV:
		return w.writeTSV(grids)
	case FormatChart:
		return w.writeCharts(charts)
	case FormatText:
		return w.writeText(grids)
	default:
		return fmt.Errorf("unknown output format %q", w.Format)
	}
}

// Words prints a word count result. The text format follows the classic word list
// layout: only words, or word, count and relative frequency when showFreq is set.
func (w *Writer) Words(r wordcountlib.Result, showFreq, showTotals bool) error {
	withBaseline := false
	for _, e := range r.Entries {
		if e.Baseline != 0 || e.Keyness != 0 {
			withBaseline = true
			break
		}
	}

	if w.Format == FormatText {
		for _, e := range r.Entries {
			line := e.Word
			if showFreq {
				line = fmt.Sprintf("%-21s %8d %18s", e.Word, e.Count, fmtFloat(e.Relative))
				if withBaseline {
					line += fmt.Sprintf(" %18s %12.3f %s", fmtFloat(e.Baseline), e.Keyness, tag(e))
				}
			}
			fmt.Fprintln(w.Out, line)
		}
		if showTotals {
			fmt.Fprintln(w.Out, "Total words:", r.Total)
			fmt.Fprintln(w.Out, "Total unique words:", r.Uniques)
		}
		return nil
	}

	g := grid{header: []string{"word", "count", "relative"}}
	if withBaseline {
		g.header = append(g.header, "baseline", "keyness", "tag")
	}
	chart := bars{title: "word counts"}
	for _, e := range r.Entries {
		row := []string{e.Word, strconv.Itoa(e.Count), fmtFloat(e.Relative)}
		if withBaseline {
			row = append(row, fmtFloat(e.Baseline), strconv.FormatFloat(e.Keyness, 'f', 3, 64), tag(e))
		}
		g.rows = append(g.rows, row)
		chart.labels = append(chart.labels, e.Word)
		chart.values = append(chart.values, float64(e.Count))
	}

	if err := w.writeGrids([]grid{g}, r, []bars{chart}); err != nil {
		return err
	}
	if showTotals && w.Format != FormatJSON && w.Format != FormatTSV {
		fmt.Fprintln(w.Out, "Total words:", r.Total)
		fmt.Fprintln(w.Out, "Total unique words:", r.Uniques)
	}
	return nil
}

// tag is the baseline part of speech, "-" for words missing from the baseline
func tag(e wordcountlib.Entry) string {
	if e.Tag == "" {
		return "-"
	}
	return e.Tag
}

// Series prints block frequencies, one grid per document
func (w *Writer) Series(series []freqlib.Series) error {
	grids := make([]grid, 0, len(series))
	var charts []bars
	for _, s := range series {
		g := grid{title: s.Name, header: append([]string{"block", "len"}, s.Columns...)}
		perColumn := make([]bars, len(s.Columns))
		for c, col := range s.Columns {
			perColumn[c] = bars{title: s.Name + ": " + col}
		}
		for _, r := range s.Records {
			row := []string{strconv.Itoa(r.Index), strconv.Itoa(r.Len)}
			for c, v := range r.Values {
				row = append(row, fmtFloat(v))
				perColumn[c].labels = append(perColumn[c].labels, "block "+strconv.Itoa(r.Index))
				perColumn[c].values = append(perColumn[c].values, v)
			}
			g.rows = append(g.rows, row)
		}
		grids = append(grids, g)
		charts = append(charts, perColumn...)
	}
	return w.writeGrids(grids, series, charts)
}

// Sentences prints per-chunk sentence stats followed by each document summary
func (w *Writer) Sentences(reports []statlib.SentenceReport, showMin, showMax bool) error {
	grids := make([]grid, 0, len(reports))
	var charts []bars
	for _, r := range reports {
		g := grid{title: r.Name, header: []string{"chunk", "sentences", "avg"}}
		if showMin {
			g.header = append(g.header, "min")
		}
		if showMax {
			g.header = append(g.header, "max")
		}

		avg := bars{title: fmt.Sprintf("%s: avg. num. of words in sentence (%.2f)", r.Name, r.Summary.Avg)}
		minimum := bars{title: fmt.Sprintf("%s: min num. of words in sentence (%d)", r.Name, r.Summary.Min)}
		maximum := bars{title: fmt.Sprintf("%s: max num. of words in sentence (%d)", r.Name, r.Summary.Max)}
		for i, c := range r.Chunks {
			label := "chunk " + strconv.Itoa(i)
			row := []string{strconv.Itoa(i), strconv.Itoa(c.Sentences), strconv.FormatFloat(c.Avg, 'f', 2, 64)}
			avg.add(label, c.Avg)
			if showMin {
				row = append(row, strconv.Itoa(c.Min))
				minimum.add(label, float64(c.Min))
			}
			if showMax {
				row = append(row, strconv.Itoa(c.Max))
				maximum.add(label, float64(c.Max))
			}
			g.rows = append(g.rows, row)
		}

		summary := []string{"all", strconv.Itoa(r.Summary.Sentences), strconv.FormatFloat(r.Summary.Avg, 'f', 2, 64)}
		if showMin {
			summary = append(summary, strconv.Itoa(r.Summary.Min))
		}
		if showMax {
			summary = append(summary, strconv.Itoa(r.Summary.Max))
		}
		g.rows = append(g.rows, summary)

		grids = append(grids, g)
		charts = append(charts, avg)
		if showMin {
			charts = append(charts, minimum)
		}
		if showMax {
			charts = append(charts, maximum)
		}
	}
	return w.writeGrids(grids, reports, charts)
}

// POS prints tag distributions, largest first
func (w *Writer) POS(reports []statlib.POSReport, raw bool) error {
	valueName := "share"
	if raw {
		valueName = "count"
	}

	grids := make([]grid, 0, len(reports))
	charts := make([]bars, 0, len(reports))
	for _, r := range reports {
		g := grid{title: r.Name, header: []string{"tag", valueName}}
		chart := bars{title: r.Name}
		for _, s := range r.Tags {
			v := fmtFloat(s.Value)
			if !raw {
				v = strconv.FormatFloat(s.Value, 'f', 4, 64)
			}
			g.rows = append(g.rows, []string{s.Tag, v})
			chart.add(s.Tag, s.Value)
		}
		grids = append(grids, g)
		charts = append(charts, chart)
	}
	return w.writeGrids(grids, reports, charts)
}
