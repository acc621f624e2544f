package rule

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/griddle/pkg/console"
	"github.com/arthur-debert/griddle/pkg/style"
)

func richConsole(width int) *console.Console {
	return console.New(console.WithForceRich(), console.WithWidth(width))
}

func plainConsole(t *testing.T, width int) *console.Console {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return console.New(console.WithOutput(f), console.WithWidth(width))
}

func TestRender(t *testing.T) {
	r := New()
	got := r.Render(richConsole(10))
	assert.Equal(t, strings.Repeat("─", 10), got)
}

func TestRenderTitle(t *testing.T) {
	r := New(WithTitle("Hi"))
	got := r.Render(richConsole(20))

	// 20 - title(2) - padding(4) leaves 14 fill characters, 7 per side.
	assert.Equal(t, "───────  Hi  ───────", got)
	assert.Len(t, []rune(got), 20)
}

func TestRenderMultiCharacterUnit(t *testing.T) {
	r := New(WithCharacters("-~="))
	got := r.Render(richConsole(10))

	// The 3-rune unit repeats 3 whole times inside 10 columns.
	assert.Equal(t, "-~=-~=-~=", got)
}

func TestRenderASCIIDowngrade(t *testing.T) {
	t.Setenv("FORCE_COLOR", "")

	r := New()
	got := r.Render(plainConsole(t, 10))

	assert.Equal(t, strings.Repeat("-", 10), got)
}

func TestRenderKeepsASCIICharacters(t *testing.T) {
	t.Setenv("FORCE_COLOR", "")

	r := New(WithCharacters("="))
	got := r.Render(plainConsole(t, 10))
	assert.Equal(t, strings.Repeat("=", 10), got)
}

func TestRenderStyled(t *testing.T) {
	t.Setenv("FORCE_COLOR", "1")
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm-256color")

	r := New(WithStyle(style.MustParse("red on white")))
	got := r.Render(richConsole(5))

	assert.Equal(t, "\x1b[31;47m─────\x1b[0m", got)
}

func TestRenderStyleDroppedWithoutColor(t *testing.T) {
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("NO_COLOR", "")

	r := New(WithStyle(style.MustParse("red")))
	got := r.Render(plainConsole(t, 5))
	assert.Equal(t, "-----", got)
}

func TestToHTML(t *testing.T) {
	plain := New().ToHTML()
	assert.Contains(t, plain, "<hr />")
	assert.NotContains(t, plain, "nowrap")

	titled := New(WithTitle("a < b")).ToHTML()
	assert.Contains(t, titled, "a &lt; b")
	assert.Contains(t, titled, "nowrap")
}
