package main

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/quill-lang/go-quill/ast"
	"github.com/quill-lang/go-quill/render"
	"github.com/quill-lang/go-quill/token"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.root == nil {
		return nil, nil
	}

	pos := params.Position
	line := int(pos.Line)
	col := int(pos.Character)

	targetNode := findNodeAtPosition(doc.root, doc.positions, line, col)
	if targetNode == nil {
		return nil, nil
	}

	hoverText := buildHoverText(targetNode)
	if hoverText == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

// findNodeAtPosition picks the node whose recorded position is on the
// requested line, nearest to the requested column. Positions record
// where a node's first token starts, so nearest-start is the best
// guess available without token widths.
func findNodeAtPosition(root *ast.Node, positions map[*ast.Node]*token.Pos, line, col int) *ast.Node {
	var bestNode *ast.Node
	var bestPos *token.Pos

	_ = root.Visit(func(n *ast.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		pos := positions[n]
		if pos == nil || pos.Line != line {
			return true, nil
		}
		if bestPos == nil || abs(pos.Col-col) <= abs(bestPos.Col-col) {
			bestNode = n
			bestPos = pos
		}
		return true, nil
	})
	return bestNode
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func buildHoverText(n *ast.Node) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("**Kind:** %s", n.Kind()))

	switch n.Shape() {
	case ast.IntShape:
		v, _ := n.Int()
		parts = append(parts, fmt.Sprintf("**Value:** `%d`", v))
	case ast.FloatShape:
		v, _ := n.Float()
		parts = append(parts, fmt.Sprintf("**Value:** `%g`", v))
	case ast.TextShape:
		v, _ := n.Str()
		if len(v) > 50 {
			v = v[:50] + "..."
		}
		parts = append(parts, fmt.Sprintf("**Value:** `%s`", v))
	case ast.IdentShape:
		id, _ := n.Name()
		parts = append(parts, fmt.Sprintf("**Name:** `%s`", id.Name()))
	case ast.SymbolShape:
		s, _ := n.Sym()
		parts = append(parts, fmt.Sprintf("**Symbol:** %s `%s`", s.Kind(), s.Name()))
	case ast.KidsShape:
		parts = append(parts, fmt.Sprintf("**Children:** %d", n.Len()))
		tree := render.MustString(n, render.Indent(2))
		if len(tree) <= 500 {
			parts = append(parts, "```\n"+tree+"\n```")
		}
	}

	return strings.Join(parts, "\n\n")
}
