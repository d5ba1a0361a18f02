package render

type RenderOption func(*renderState)

// Indent renders each child on its own line, indented by n spaces per
// tree depth. Zero (the default) keeps the whole tree on one line.
func Indent(n int) RenderOption {
	return func(rs *renderState) { rs.indent = n }
}

// WithColors enables ANSI colored output.
func WithColors(c *Colors) RenderOption {
	return func(rs *renderState) { rs.Color = c.Color }
}
