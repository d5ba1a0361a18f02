// Package render writes quill syntax trees in their canonical textual
// form.
//
// Leaves render as the kind name followed by the payload, for example
// `IntLit 42` or `Ident "x"`. Branch nodes render as the kind name with
// the parenthesized child list: `Call(Ident "echo", StrLit "hi")`. The
// Indent option spreads children over lines for deep trees, and Colors
// enables ANSI colors on terminals.
package render

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/quill-lang/go-quill/ast"
)

type renderState struct {
	depth  int
	indent int

	Color func(ast.Shape, ColorAttr, string) string
}

// Render writes the canonical form of n to w.
func Render(n *ast.Node, w io.Writer, opts ...RenderOption) error {
	rs := &renderState{}
	for _, opt := range opts {
		opt(rs)
	}
	return render(n, w, rs)
}

// String renders n to a string with the given options.
func String(n *ast.Node, opts ...RenderOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Render(n, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MustString renders n, panicking on write errors. Rendering to a
// buffer cannot fail, so this is safe for debug output.
func MustString(n *ast.Node, opts ...RenderOption) string {
	s, err := String(n, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func render(n *ast.Node, w io.Writer, rs *renderState) error {
	shape := n.Shape()
	if err := writeColored(w, rs, shape, KindColor, n.Kind().String()); err != nil {
		return err
	}
	switch shape {
	case ast.NoneShape:
		return nil
	case ast.IntShape:
		v, _ := n.Int()
		return writePayload(w, rs, shape, strconv.FormatInt(v, 10))
	case ast.FloatShape:
		v, _ := n.Float()
		return writePayload(w, rs, shape, formatFloat(v))
	case ast.TextShape:
		v, _ := n.Str()
		return writePayload(w, rs, shape, strconv.Quote(v))
	case ast.IdentShape:
		v, _ := n.Name()
		return writePayload(w, rs, shape, strconv.Quote(v.Name()))
	case ast.SymbolShape:
		v, _ := n.Sym()
		if err := writePayload(w, rs, shape, v.Kind().String()); err != nil {
			return err
		}
		return writePayload(w, rs, shape, strconv.Quote(v.Name().Name()))
	default:
		return renderKids(n, w, rs)
	}
}

func renderKids(n *ast.Node, w io.Writer, rs *renderState) error {
	if err := writeColored(w, rs, ast.KidsShape, SepColor, "("); err != nil {
		return err
	}
	rs.depth++
	kids := n.Kids()
	for i, kid := range kids {
		if i > 0 {
			if err := writeColored(w, rs, ast.KidsShape, SepColor, ","); err != nil {
				return err
			}
			if rs.indent == 0 {
				if err := writeString(w, " "); err != nil {
					return err
				}
			}
		}
		if err := writeNL(w, rs); err != nil {
			return err
		}
		if err := render(kid, w, rs); err != nil {
			return err
		}
	}
	rs.depth--
	if len(kids) > 0 {
		if err := writeNL(w, rs); err != nil {
			return err
		}
	}
	return writeColored(w, rs, ast.KidsShape, SepColor, ")")
}

// formatFloat keeps a decimal point so float payloads stay visually
// distinct from integer ones.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeColored(w io.Writer, rs *renderState, shape ast.Shape, attr ColorAttr, s string) error {
	if rs.Color != nil {
		s = rs.Color(shape, attr, s)
	}
	return writeString(w, s)
}

func writePayload(w io.Writer, rs *renderState, shape ast.Shape, s string) error {
	if err := writeString(w, " "); err != nil {
		return err
	}
	return writeColored(w, rs, shape, ValueColor, s)
}

func writeNL(w io.Writer, rs *renderState) error {
	if rs.indent == 0 {
		return nil
	}
	pad := strings.Repeat(" ", rs.indent*rs.depth)
	return writeString(w, "\n"+pad)
}
