package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/griddle/pkg/box"
	"github.com/arthur-debert/griddle/pkg/config"
	"github.com/arthur-debert/griddle/pkg/console"
	"github.com/arthur-debert/griddle/pkg/panel"
	"github.com/arthur-debert/griddle/pkg/style"
)

func newPanelCmd() *cobra.Command {
	var (
		title      string
		borderSpec string
		boxName    string
		width      int
		noColor    bool
	)

	cmd := &cobra.Command{
		Use:   "panel [text]",
		Short: MsgPanelShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if boxName == "" {
				boxName = cfg.Panel.Box
			}
			noColor = noColor || cfg.NoColor

			opts := []panel.Option{}
			if title != "" {
				opts = append(opts, panel.WithTitle(title))
			}
			if width > 0 {
				opts = append(opts, panel.WithWidth(width))
			}
			if borderSpec != "" {
				parsed, err := style.Parse(borderSpec)
				if err != nil {
					return err
				}
				opts = append(opts, panel.WithBorderStyle(parsed))
			}
			if boxName != "" {
				frame, err := box.Get(boxName)
				if err != nil {
					return fmt.Errorf("selecting box style: %w", err)
				}
				opts = append(opts, panel.WithBox(frame))
			}

			consoleOpts := []console.Option{}
			if noColor {
				consoleOpts = append(consoleOpts, console.WithoutColor())
			}

			content := strings.Join(args, " ")
			cmd.Println(panel.New(content, opts...).Render(console.New(consoleOpts...)))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title embedded in the top border")
	cmd.Flags().StringVar(&borderSpec, "border-style", "", `Border style spec, e.g. "green"`)
	cmd.Flags().StringVar(&boxName, "box", "", MsgFlagBox)
	cmd.Flags().IntVar(&width, "width", 0, MsgFlagWidth)
	cmd.Flags().BoolVar(&noColor, "no-color", false, MsgFlagNoColor)

	return cmd
}
