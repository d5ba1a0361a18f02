package render

import (
	"strings"

	"github.com/quill-lang/go-quill/ast"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	KindColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colorable struct {
	Shape ast.Shape
	Attr  ColorAttr
}

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, s := range []ast.Shape{
		ast.NoneShape, ast.IntShape, ast.FloatShape, ast.TextShape,
		ast.IdentShape, ast.SymbolShape, ast.KidsShape,
	} {
		able := Colorable{Shape: s, Attr: KindColor}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Shape = ast.IntShape
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Shape = ast.FloatShape
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Shape = ast.TextShape
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Shape = ast.IdentShape
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	able.Shape = ast.SymbolShape
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(s ast.Shape, a ColorAttr, v string) string {
	return c.Get(s, a)(v)
}

func (c *Colors) Get(s ast.Shape, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Shape: s, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
