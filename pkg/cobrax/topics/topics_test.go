package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"styles.md":          {Data: []byte("# Styles\n\nStyle grammar.\n")},
		"formats.txt":        {Data: []byte("Output formats.\n")},
		"option-width.txt":   {Data: []byte("The --width flag.\n")},
		"ignored.json":       {Data: []byte("{}")},
		"nested/deep.txt":    {Data: []byte("Nested topic.\n")},
		"nested/skipped.xml": {Data: []byte("<x/>")},
	}
}

func TestScanFindsSupportedExtensions(t *testing.T) {
	tm, err := New(testFS(), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"deep", "formats", "option-width", "styles"}, tm.ListTopics())
}

func TestScanCustomExtensions(t *testing.T) {
	tm, err := New(testFS(), Options{Extensions: []string{".json"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"ignored"}, tm.ListTopics())
}

func TestGetTopic(t *testing.T) {
	tm, err := New(testFS(), Options{})
	require.NoError(t, err)

	tests := []struct {
		name    string
		lookup  string
		found   bool
		content string
	}{
		{"exact match", "formats", true, "Output formats.\n"},
		{"flag style strips dashes", "--width", true, "The --width flag.\n"},
		{"option prefix fallback", "width", true, "The --width flag.\n"},
		{"unknown", "nope", false, ""},
		{"unsupported extension not scanned", "skipped", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic, found := tm.GetTopic(tt.lookup)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.content, topic.Content)
			}
		})
	}
}

func TestPlainRendererPassesThrough(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# Raw\n", r.Render("# Raw\n", ".md"))
}

func TestGlamourRendererIgnoresNonMarkdown(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}

func TestInitializeServesTopics(t *testing.T) {
	root := &cobra.Command{Use: "app"}
	require.NoError(t, Initialize(root, testFS(), Options{}))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"help", "formats"})
	require.NoError(t, root.Execute())

	assert.Equal(t, "Output formats.\n", out.String())
}

func TestInitializeListsTopics(t *testing.T) {
	root := &cobra.Command{Use: "app"}
	require.NoError(t, Initialize(root, testFS(), Options{}))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"help", "topics"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "General topics:")
	assert.Contains(t, out.String(), "  styles")
	assert.Contains(t, out.String(), "Option topics:")
	assert.Contains(t, out.String(), "  --width")
}

func TestInitializeFallsBackToCommandHelp(t *testing.T) {
	root := &cobra.Command{Use: "app"}
	sub := &cobra.Command{Use: "sub", Short: "A subcommand", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(sub)
	require.NoError(t, Initialize(root, testFS(), Options{}))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"help", "sub"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "A subcommand")
}
