package topics

// Renderer formats topic content for terminal display.
type Renderer interface {
	// Render takes raw content and returns formatted content. The format
	// argument is the topic file's extension, including the dot.
	Render(content string, format string) string
}

// PlainRenderer returns content unchanged.
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
