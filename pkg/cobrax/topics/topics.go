// Package topics extends Cobra's help system with arbitrary help topics
// loaded from a file system, typically an embed.FS shipped with the
// binary. `app help <topic>` shows a topic; `app help topics` lists them.
package topics

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// TopicManager holds the topics discovered in a file system.
type TopicManager struct {
	topics       map[string]*Topic
	originalHelp func(*cobra.Command, []string)
	extensions   []string
	renderer     Renderer
}

// Topic is a single help topic.
type Topic struct {
	Name    string
	Format  string // file extension, including the dot
	Content string
}

// Options configures the TopicManager.
type Options struct {
	// Extensions lists the file extensions treated as topics.
	// Defaults to [".txt", ".md"].
	Extensions []string

	// Renderer formats topic content. Defaults to PlainRenderer.
	Renderer Renderer
}

// New creates a TopicManager and scans fsys for topic files.
func New(fsys fs.FS, opts Options) (*TopicManager, error) {
	tm := &TopicManager{
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(tm.extensions) == 0 {
		tm.extensions = []string{".txt", ".md"}
	}
	if tm.renderer == nil {
		tm.renderer = &PlainRenderer{}
	}

	if err := tm.scan(fsys); err != nil {
		return nil, fmt.Errorf("scanning help topics: %w", err)
	}
	return tm, nil
}

func (tm *TopicManager) scan(fsys fs.FS) error {
	return fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(p)
		supported := false
		for _, validExt := range tm.extensions {
			if ext == validExt {
				supported = true
				break
			}
		}
		if !supported {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), ext)
		tm.topics[name] = &Topic{
			Name:    name,
			Format:  ext,
			Content: string(content),
		}
		return nil
	})
}

// GetTopic retrieves a topic by name. Flag-style names ("--width") are
// looked up without their dashes, then with an "option-" prefix.
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")

	if topic, exists := tm.topics[name]; exists {
		return topic, true
	}
	topic, exists := tm.topics["option-"+name]
	return topic, exists
}

// ListTopics returns all topic names, sorted.
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Initialize replaces rootCmd's help command with one that also serves
// topics from fsys. Command help is unchanged; unknown help arguments
// fall through to Cobra's original handler.
func Initialize(rootCmd *cobra.Command, fsys fs.FS, opts Options) error {
	tm, err := New(fsys, opts)
	if err != nil {
		return err
	}

	tm.originalHelp = rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic.
Type ` + rootCmd.Name() + ` help [command or topic] for full details.

To see all available help topics:
  ` + rootCmd.Name() + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, tm.ListTopics()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				tm.originalHelp(rootCmd, nil)
				return
			}

			if args[0] == "topics" {
				tm.printTopicList(cmd)
				return
			}

			if topic, exists := tm.GetTopic(args[0]); exists {
				cmd.Print(tm.renderer.Render(topic.Content, topic.Format))
				return
			}

			tm.originalHelp(rootCmd, args)
		},
	}

	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "help" {
			rootCmd.RemoveCommand(cmd)
			break
		}
	}
	rootCmd.AddCommand(helpCmd)

	// Serve topics through the --help flag path as well.
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if topic, exists := tm.GetTopic(args[0]); exists {
				cmd.Print(tm.renderer.Render(topic.Content, topic.Format))
				return
			}
		}
		tm.originalHelp(cmd, args)
	})

	return nil
}

func (tm *TopicManager) printTopicList(cmd *cobra.Command) {
	names := tm.ListTopics()
	if len(names) == 0 {
		cmd.Println("No help topics available.")
		return
	}

	var options []string
	var general []string
	for _, name := range names {
		if strings.HasPrefix(name, "option-") {
			options = append(options, strings.TrimPrefix(name, "option-"))
		} else {
			general = append(general, name)
		}
	}

	cmd.Println("Available help topics:")
	if len(general) > 0 {
		cmd.Println("\nGeneral topics:")
		for _, name := range general {
			cmd.Printf("  %s\n", name)
		}
	}
	if len(options) > 0 {
		cmd.Println("\nOption topics:")
		for _, name := range options {
			cmd.Printf("  --%s\n", name)
		}
	}
	cmd.Printf("\nUse '%s help <topic>' to read about a specific topic.\n", cmd.Root().Name())
}
