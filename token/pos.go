package token

import "fmt"

// Pos is a source position. Line and Col are zero-based; Off is the
// byte offset in the input.
type Pos struct {
	Off  int
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("offset %d (line=%d, col=%d)", p.Off, p.Line, p.Col)
}
