// Package x_view renders mined itemsets for people and scripts.
package x_view

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rskv-p/fpgrowth/constant"
	"github.com/rskv-p/fpgrowth/pkg/x_fp"
	"github.com/rskv-p/fpgrowth/pkg/x_log"
)

var ErrUnknownOutput = errors.New("unknown output format")

// Options tune the rendering.
type Options struct {
	Transactions int  // enables the relative support column when > 0
	Color        bool // table only
}

// Render writes itemsets to w in the given format.
func Render(w io.Writer, format string, sets []x_fp.Itemset[string], opts Options) error {
	switch format {
	case constant.OutputTable, "":
		return renderTable(w, sets, opts)
	case constant.OutputJSON:
		return renderJSON(w, sets)
	case constant.OutputPlain:
		return renderPlain(w, sets)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutput, format)
	}
}

// FormatSet prints items as {a, b}.
func FormatSet(items []string) string {
	return "{" + strings.Join(items, ", ") + "}"
}

// WritePlain prints one itemset as "{a, b} 2" with its items ascending.
func WritePlain(w io.Writer, set x_fp.Itemset[string]) error {
	_, err := fmt.Fprintf(w, "%s %d\n", FormatSet(slices.Sorted(slices.Values(set.Items))), set.Support)
	return err
}

func renderPlain(w io.Writer, sets []x_fp.Itemset[string]) error {
	for _, s := range sets {
		if err := WritePlain(w, s); err != nil {
			return err
		}
	}
	return nil
}

func renderJSON(w io.Writer, sets []x_fp.Itemset[string]) error {
	out := make([]x_fp.Itemset[string], len(sets))
	for i, s := range sets {
		if s.Items == nil {
			s.Items = []string{}
		}
		out[i] = s
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func renderTable(w io.Writer, sets []x_fp.Itemset[string], opts Options) error {
	headers := []string{"ITEMSET", "SIZE", "SUPPORT"}
	if opts.Transactions > 0 {
		headers = append(headers, "RATIO")
	}

	rows := make([][]string, 0, len(sets))
	for _, s := range sets {
		row := []string{FormatSet(s.Items), strconv.Itoa(len(s.Items)), strconv.Itoa(s.Support)}
		if opts.Transactions > 0 {
			row = append(row, fmt.Sprintf("%.1f%%", 100*float64(s.Support)/float64(opts.Transactions)))
		}
		rows = append(rows, row)
	}
	return Table(w, headers, rows, opts.Color)
}

// Table draws a bordered table; columns after the first are right aligned.
func Table(w io.Writer, headers []string, rows [][]string, color bool) error {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(cellStyle(color))
	if color {
		t = t.BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(x_log.ColorGray60)))
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func cellStyle(color bool) func(row, col int) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1)
	return func(row, col int) lipgloss.Style {
		s := base
		if col > 0 {
			s = s.Align(lipgloss.Right)
		}
		if !color {
			return s
		}
		switch {
		case row == table.HeaderRow:
			return s.Bold(true).Foreground(lipgloss.Color(x_log.ColorBlue40))
		case col == 0:
			return s.Foreground(lipgloss.Color(x_log.ColorGray10))
		default:
			return s.Foreground(lipgloss.Color(x_log.ColorTeal40))
		}
	}
}

// Summary prints a one-line report of a run.
func Summary(w io.Writer, transactions, minSupport, itemsets int, elapsed time.Duration, color bool) {
	line := fmt.Sprintf("%d itemsets from %d transactions (min support %d) in %s",
		itemsets, transactions, minSupport, elapsed.Round(time.Microsecond))
	if color {
		line = lipgloss.NewStyle().Foreground(lipgloss.Color(x_log.ColorGray60)).Render(line)
	}
	fmt.Fprintln(w, line)
}
