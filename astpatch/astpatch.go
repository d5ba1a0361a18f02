// Package astpatch rewrites quill trees with RFC 6902 JSON patches.
//
// A tree marshals to JSON as nested {"kind": ..., ...} objects, so
// patch paths address nodes structurally: /kids/0/kids/1/int selects
// the integer payload of a grandchild. Applying a patch decodes the
// patched JSON back into a fresh tree; the input tree is not touched.
package astpatch

import (
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/quill-lang/go-quill/ast"
)

type Patch struct {
	ops jsonpatch.Patch
}

// Decode decodes a JSON patch document, a JSON array of operation
// objects.
func Decode(d []byte) (*Patch, error) {
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, err
	}
	return &Patch{ops: ops}, nil
}

// Apply patches doc and returns the resulting tree. The patched JSON
// must still describe a well-formed tree; a patch that, say, adds kids
// to a literal fails at decode.
func (p *Patch) Apply(doc *ast.Node) (*ast.Node, error) {
	d, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	out, err := p.ops.Apply(d)
	if err != nil {
		return nil, err
	}
	res := &ast.Node{}
	if err := json.Unmarshal(out, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Apply decodes and applies a patch in one step.
func Apply(doc *ast.Node, patch []byte) (*ast.Node, error) {
	p, err := Decode(patch)
	if err != nil {
		return nil, err
	}
	return p.Apply(doc)
}
