package ast

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVisitOrder(t *testing.T) {
	inner := mustNode(t)(New(ParKind, intLit(t, 1), intLit(t, 2)))
	root := mustNode(t)(New(StmtListKind, inner, intLit(t, 3)))

	var trace []string
	err := root.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			trace = append(trace, "post "+n.String())
		} else {
			trace = append(trace, "pre "+n.String())
		}
		return true, nil
	})
	if err != nil {
		t.Fatalf("Visit: %v", err)
	}
	want := []string{
		"pre StmtList(2)",
		"pre Par(2)",
		"pre IntLit 1",
		"post IntLit 1",
		"pre IntLit 2",
		"post IntLit 2",
		"post Par(2)",
		"pre IntLit 3",
		"post IntLit 3",
		"post StmtList(2)",
	}
	if diff := cmp.Diff(want, trace); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
}

func TestVisitSkip(t *testing.T) {
	inner := mustNode(t)(New(ParKind, intLit(t, 1)))
	root := mustNode(t)(New(StmtListKind, inner))
	var pre int
	err := root.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost {
			pre++
		}
		return n.Kind() != ParKind, nil
	})
	if err != nil {
		t.Fatalf("Visit: %v", err)
	}
	if pre != 2 {
		t.Errorf("pre visits = %d, want 2 (children of Par skipped)", pre)
	}
}

func TestVisitError(t *testing.T) {
	boom := errors.New("boom")
	root := mustNode(t)(New(StmtListKind, intLit(t, 1), intLit(t, 2)))
	var seen int
	err := root.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost && n.Kind() == IntLitKind {
			seen++
			return false, boom
		}
		return true, nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Visit err = %v, want boom", err)
	}
	if seen != 1 {
		t.Errorf("visit continued after error, seen = %d", seen)
	}
}
