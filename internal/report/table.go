package report

import (
	"fmt"
	"io"

	"drilldown/internal/analytics"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// newTable creates a borderless two-column table writing to w.
func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					ShowHeader: tw.Off,
				},
			},
		}),
	)
}

// WriteTables writes each section as a title line, a table and the caption.
func WriteTables(w io.Writer, sections []Section) error {
	for i, s := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, s.Title); err != nil {
			return err
		}

		table := newTable(w)
		table.Header([]string{"Action", "Count"})
		if err := table.Bulk(rowCells(s.Rows)); err != nil {
			return fmt.Errorf("failed to add rows for %q: %w", s.Title, err)
		}
		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render %q: %w", s.Title, err)
		}

		if _, err := fmt.Fprintln(w, analytics.TableCaption); err != nil {
			return err
		}
	}
	return nil
}
