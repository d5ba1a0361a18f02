package ast

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// One process-wide seed so subtree hashes combine consistently.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of the tree rooted at n.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ast: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)

	h.WriteByte(byte(n.kind))

	switch n.kind.Shape() {
	case NoneShape:
	case IntShape:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(n.ival))
		h.Write(b[:])
	case FloatShape:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(n.fval))
		h.Write(b[:])
	case TextShape:
		h.WriteString(n.sval)
	case IdentShape:
		h.WriteString(n.name.Name())
	case SymbolShape:
		h.WriteByte(byte(n.sym.Kind()))
		h.WriteString(n.sym.Name().Name())
	case KidsShape:
		var b [8]byte
		for _, kid := range n.kids {
			// Writing the child hash combines subtrees order-dependently.
			binary.LittleEndian.PutUint64(b[:], kid.Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
