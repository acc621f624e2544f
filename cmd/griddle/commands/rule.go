package commands

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/griddle/pkg/config"
	"github.com/arthur-debert/griddle/pkg/console"
	"github.com/arthur-debert/griddle/pkg/rule"
	"github.com/arthur-debert/griddle/pkg/style"
)

func newRuleCmd() *cobra.Command {
	var (
		title      string
		characters string
		styleSpec  string
		width      int
		noColor    bool
	)

	cmd := &cobra.Command{
		Use:   "rule",
		Short: MsgRuleShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if characters == "" {
				characters = cfg.Rule.Characters
			}
			noColor = noColor || cfg.NoColor

			opts := []rule.Option{}
			if title != "" {
				opts = append(opts, rule.WithTitle(title))
			}
			if characters != "" {
				opts = append(opts, rule.WithCharacters(characters))
			}
			if width > 0 {
				opts = append(opts, rule.WithWidth(width))
			}
			if styleSpec != "" {
				parsed, err := style.Parse(styleSpec)
				if err != nil {
					return err
				}
				opts = append(opts, rule.WithStyle(parsed))
			}

			consoleOpts := []console.Option{}
			if noColor {
				consoleOpts = append(consoleOpts, console.WithoutColor())
			}

			cmd.Println(rule.New(opts...).Render(console.New(consoleOpts...)))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title centered inside the rule")
	cmd.Flags().StringVar(&characters, "characters", "", `Repeated character unit (default "─")`)
	cmd.Flags().StringVar(&styleSpec, "style", "", `Style spec, e.g. "bold red on white"`)
	cmd.Flags().IntVar(&width, "width", 0, MsgFlagWidth)
	cmd.Flags().BoolVar(&noColor, "no-color", false, MsgFlagNoColor)

	return cmd
}
