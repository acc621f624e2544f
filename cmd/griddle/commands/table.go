package commands

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/griddle/pkg/box"
	"github.com/arthur-debert/griddle/pkg/config"
	"github.com/arthur-debert/griddle/pkg/console"
	"github.com/arthur-debert/griddle/pkg/table"
)

func newTableCmd() *cobra.Command {
	var (
		title   string
		columns []string
		rows    []string
		width   int
		boxName string
		format  string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "table",
		Short: MsgTableShort,
		Long:  MsgTableLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if boxName == "" {
				boxName = cfg.Table.Box
			}
			if !cmd.Flags().Changed("width") {
				width = cfg.Table.Width
			}
			noColor = noColor || cfg.NoColor

			tbl, err := buildTable(title, columns, rows, cmd.InOrStdin())
			if err != nil {
				return err
			}

			style, err := box.Get(boxName)
			if err != nil {
				return err
			}
			tbl.SetBox(style)

			switch format {
			case "grid", "":
				opts := []console.Option{}
				if noColor {
					opts = append(opts, console.WithoutColor())
				}
				c := console.New(opts...)
				cmd.Println(tbl.Render(c, table.RenderOptions{Width: width}))
			case "csv":
				cmd.Println(tbl.ToCSV(table.DefaultCSVOptions()))
			case "html":
				cmd.Println(tbl.ToHTML(table.DefaultHTMLOptions()))
			default:
				return fmt.Errorf("unknown format: %s", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "Table", "Table name, shown above the grid")
	cmd.Flags().StringSliceVar(&columns, "columns", nil, "Comma-separated column labels")
	cmd.Flags().StringArrayVar(&rows, "row", nil, "Comma-separated row values (repeatable)")
	cmd.Flags().IntVar(&width, "width", 0, MsgFlagWidth)
	cmd.Flags().StringVar(&boxName, "box", "", MsgFlagBox)
	cmd.Flags().StringVar(&format, "format", "grid", "Output format: grid, csv or html")
	cmd.Flags().BoolVar(&noColor, "no-color", false, MsgFlagNoColor)

	return cmd
}

// buildTable assembles a table from flags, or from CSV on stdin when no
// columns were given (first record becomes the header).
func buildTable(title string, columns, rows []string, stdin io.Reader) (*table.Table, error) {
	if len(columns) > 0 {
		tbl, err := table.New(title, columns)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			values := toValues(strings.Split(row, ","))
			if err := tbl.AddRow(values...); err != nil {
				return nil, err
			}
		}
		return tbl, nil
	}

	records, err := csv.NewReader(stdin).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV input: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no CSV input: provide --columns or pipe CSV to stdin")
	}

	tbl, err := table.New(title, records[0])
	if err != nil {
		return nil, err
	}
	for _, record := range records[1:] {
		if err := tbl.AddRow(toValues(record)...); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}

func toValues(fields []string) []interface{} {
	values := make([]interface{}, len(fields))
	for i, field := range fields {
		values[i] = field
	}
	return values
}
