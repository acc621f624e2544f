package commands

import (
	"embed"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/griddle/pkg/cobrax/topics"
)

//go:embed topics
var topicFiles embed.FS

// initHelpTopics extends the help command with the embedded topic pages,
// rendered as markdown. Help still works without them.
func initHelpTopics(rootCmd *cobra.Command) {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return
	}
	_ = topics.Initialize(rootCmd, sub, topics.Options{
		Renderer: topics.NewGlamourRenderer(),
	})
}
