package commands

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/griddle/pkg/box"
	"github.com/arthur-debert/griddle/pkg/console"
	"github.com/arthur-debert/griddle/pkg/table"
)

var boxHeadingStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)

func newBoxesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "boxes",
		Short: MsgBoxesShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Force rich glyphs: the point of the preview is to show
			// the Unicode styles even when output is piped.
			c := console.New(console.WithForceRich())

			for _, name := range box.Names() {
				style, err := box.Get(name)
				if err != nil {
					return err
				}

				sample, err := table.New(name, []string{"One", "Two"})
				if err != nil {
					return err
				}
				if err := sample.AddRow("a", "b"); err != nil {
					return err
				}
				if err := sample.AddRow("c", "d"); err != nil {
					return err
				}
				sample.SetBox(style)

				cmd.Println(boxHeadingStyle.Render(name))
				cmd.Println(sample.Render(c, table.RenderOptions{}))
			}
			return nil
		},
	}
}
