package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/quill-lang/go-quill/ast"
	"github.com/quill-lang/go-quill/render"
)

// Logf writes to stderr, rendering *ast.Node arguments as trees and
// structured arguments as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ast.Node:
			args[i] = render.MustString(x, render.Indent(2))
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
