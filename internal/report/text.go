package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const columnGap = "  "

// WriteText renders doc as a summary block followed by one row per item.
// The selected item is marked with ">".
func WriteText(w io.Writer, doc Document) error {
	summary := [][2]string{
		{"mode", doc.Mode},
		{"axis", doc.Axis},
		{"layout style", doc.LayoutStyle},
		{"frame", num(doc.Frame.Width) + "x" + num(doc.Frame.Height)},
		{"offset", num(doc.Offset)},
		{"scroll offset", num(doc.ScrollOffset)},
		{"children", num(doc.ChildrenMainSize)},
		{"use item width", strconv.FormatBool(doc.UseItemWidth)},
		{"selected mask", rectText(doc.SelectedMask)},
		{"unselected mask", rectText(doc.UnselectedMask)},
	}
	keyWidth := 0
	for _, kv := range summary {
		keyWidth = max(keyWidth, len(kv[0]))
	}

	var b strings.Builder
	for _, kv := range summary {
		fmt.Fprintf(&b, "%-*s  %s\n", keyWidth, kv[0], kv[1])
	}
	b.WriteString("\n")

	rows := [][]string{{"", "#", "LABEL", "X", "Y", "W", "H"}}
	for i, it := range doc.Items {
		marker := ""
		if i == doc.Indicator {
			marker = ">"
		}
		rows = append(rows, []string{
			marker,
			strconv.Itoa(i),
			it.Label,
			num(it.X),
			num(it.Y),
			num(it.Width),
			num(it.Height),
		})
	}
	writeTable(&b, rows)

	_, err := io.WriteString(w, b.String())
	return err
}

func rectText(r *Rect) string {
	if r == nil {
		return "collapsed"
	}
	return fmt.Sprintf("%s,%s %sx%s", num(r.X), num(r.Y), num(r.Width), num(r.Height))
}

func writeTable(b *strings.Builder, rows [][]string) {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], ansi.StringWidth(cell))
		}
	}
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = pad(cell, widths[i])
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, columnGap), " "))
		b.WriteString("\n")
	}
}

func pad(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
