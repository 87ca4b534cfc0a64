package outputlib

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	styleBar   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// bars is one horizontal bar chart
type bars struct {
	title  string
	labels []string
	values []float64
}

func (b *bars) add(label string, v float64) {
	b.labels = append(b.labels, label)
	b.values = append(b.values, v)
}

// render draws one line per value, the longest bar taking width cells
func (b bars) render(width int) string {
	var sb strings.Builder
	sb.WriteString(styleTitle.Render(b.title))
	sb.WriteByte('\n')

	maxValue := 0.0
	labelWidth := 0
	for i, v := range b.values {
		if v > maxValue {
			maxValue = v
		}
		if n := len([]rune(b.labels[i])); n > labelWidth {
			labelWidth = n
		}
	}

	for i, v := range b.values {
		n := 0
		if maxValue > 0 {
			n = int(math.Round(v / maxValue * float64(width)))
		}
		sb.WriteString(fmt.Sprintf("%-*s ", labelWidth, b.labels[i]))
		sb.WriteString(styleBar.Render(strings.Repeat("█", n)))
		sb.WriteString(" " + styleDim.Render(fmtFloat(v)))
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (w *Writer) writeCharts(charts []bars) error {
	for i, c := range charts {
		if i > 0 {
			fmt.Fprintln(w.Out)
		}
		if _, err := fmt.Fprint(w.Out, c.render(w.ChartWidth)); err != nil {
			return err
		}
	}
	return nil
}
