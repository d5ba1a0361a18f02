package main

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.lsp.dev/protocol"

	"github.com/quill-lang/go-quill/ast"
	"github.com/quill-lang/go-quill/debug"
	"github.com/quill-lang/go-quill/parse"
	"github.com/quill-lang/go-quill/resolve"
	"github.com/quill-lang/go-quill/token"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri       string
	content   string
	version   int32
	root      *ast.Node
	positions map[*ast.Node]*token.Pos

	parseErr   error
	resolveErr error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	doc := &document{
		uri:       uri,
		content:   content,
		version:   version,
		positions: make(map[*ast.Node]*token.Pos),
	}
	root, err := parse.Parse([]byte(content), parse.ParsePositions(doc.positions))
	if err != nil {
		doc.parseErr = err
		ds.docs[uri] = doc
		return
	}
	doc.root = root
	doc.resolveErr = resolve.Resolve(root, resolve.WithPositions(doc.positions))
	ds.docs[uri] = doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := s.validateDocument(doc)
	if debug.LSP() {
		debug.Logf("%s: %d diagnostics\n", uri, len(diagnostics))
	}

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func (s *Server) validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	if doc.parseErr != nil {
		diagnostics = append(diagnostics,
			errDiagnostic(doc.parseErr.Error(), protocol.DiagnosticSeverityError))
		return diagnostics
	}
	if doc.resolveErr != nil {
		// a joined resolution error holds one line per unresolved name
		for _, msg := range strings.Split(doc.resolveErr.Error(), "\n") {
			if msg == "" {
				continue
			}
			diagnostics = append(diagnostics,
				errDiagnostic(msg, protocol.DiagnosticSeverityWarning))
		}
	}

	return diagnostics
}

func errDiagnostic(msg string, severity protocol.DiagnosticSeverity) protocol.Diagnostic {
	diagnostic := protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: 0, Character: 0},
		},
		Severity: severity,
		Message:  msg,
		Source:   "quill",
	}
	if pos := extractPosition(msg); pos != nil {
		diagnostic.Range = protocol.Range{
			Start: protocol.Position{
				Line:      uint32(pos.line),
				Character: uint32(pos.col),
			},
			End: protocol.Position{
				Line:      uint32(pos.line),
				Character: uint32(pos.col + 1),
			},
		}
	}
	return diagnostic
}

type position struct {
	line int
	col  int
}

// extractPosition pulls the "line=X, col=Y" part of a token position
// out of an error message.
func extractPosition(errMsg string) *position {
	var line, col int
	_, err := fmt.Sscanf(errMsg, "%*[^l]line=%d%*[^c]col=%d", &line, &col)
	if err != nil {
		return nil
	}
	return &position{line: line, col: col}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}

	// full sync: the last change carries the whole document
	content := doc.content
	for _, change := range params.ContentChanges {
		content = change.Text
	}

	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
