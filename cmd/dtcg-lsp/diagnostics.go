package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.lsp.dev/protocol"

	"github.com/dtcg-format/go-dtcg"
	"github.com/dtcg-format/go-dtcg/debug"
	"github.com/dtcg-format/go-dtcg/format"
	"github.com/dtcg-format/go-dtcg/ir"
	"github.com/dtcg-format/go-dtcg/parse"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	format  format.Format
	node    *ir.Node
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	f, err := format.Sniff(uri)
	if err != nil {
		f = format.JSONFormat
	}
	// Keep the content on parse errors; diagnostics reparse for the
	// error position.
	node, perr := parse.Parse([]byte(content), parse.ParseFormat(f))
	if perr != nil {
		node = nil
	}
	ds.docs[uri] = &document{
		uri:     uri,
		content: content,
		version: version,
		format:  f,
		node:    node,
	}
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
		debug.Logf("publish %d diagnostics for %s\n", len(diagnostics), uri)
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

	if doc.node == nil {
		_, err := parse.Parse([]byte(doc.content), parse.ParseFormat(doc.format))
		if err != nil {
			diagnostics = append(diagnostics, parseDiagnostic(doc.content, err))
		}
		return diagnostics
	}

	if _, err := dtcg.DefaultTool().Run(doc.node); err != nil {
		diagnostics = append(diagnostics, resolveDiagnostic(doc.content, err))
	}

	return diagnostics
}

// parseDiagnostic places a syntax error as precisely as the error allows:
// json errors carry a byte offset, yaml errors lead with "[line:col]".
func parseDiagnostic(content string, err error) protocol.Diagnostic {
	d := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Message:  err.Error(),
		Source:   "dtcg",
	}
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		line, col := offsetToLineCol(content, int(syn.Offset))
		d.Range = pointRange(line, col)
		return d
	}
	var typ *json.UnmarshalTypeError
	if errors.As(err, &typ) {
		line, col := offsetToLineCol(content, int(typ.Offset))
		d.Range = pointRange(line, col)
		return d
	}
	var line, col int
	if _, serr := fmt.Sscanf(err.Error(), "[%d:%d]", &line, &col); serr == nil {
		d.Range = pointRange(line-1, col-1)
	}
	return d
}

// resolveDiagnostic points at the failing token or group when the error
// names one.
func resolveDiagnostic(content string, err error) protocol.Diagnostic {
	d := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Message:  err.Error(),
		Source:   "dtcg",
	}
	if key, ok := errKey(err.Error()); ok {
		if line, col, ok := findKey(content, key); ok {
			d.Range = pointRange(line, col)
		}
	}
	return d
}

// errKey extracts the last segment of the dotted path an error message
// carries after a "token " or "group " prefix.
func errKey(msg string) (string, bool) {
	for _, prefix := range []string{"token ", "group "} {
		i := strings.Index(msg, prefix)
		if i < 0 {
			continue
		}
		rest := msg[i+len(prefix):]
		end := strings.IndexAny(rest, ": ")
		if end < 0 {
			end = len(rest)
		}
		path := rest[:end]
		if path == "" || path == "$" {
			continue
		}
		segs := strings.Split(path, ".")
		return segs[len(segs)-1], true
	}
	return "", false
}

// findKey locates the key's first occurrence in the document text, quoted
// for json, bare before a colon for yaml.
func findKey(content, key string) (int, int, bool) {
	idx := strings.Index(content, `"`+key+`"`)
	if idx < 0 {
		idx = strings.Index(content, key+":")
	}
	if idx < 0 {
		return 0, 0, false
	}
	line, col := offsetToLineCol(content, idx)
	return line, col, true
}

func offsetToLineCol(content string, off int) (int, int) {
	line, col := 0, 0
	for i, r := range content {
		if i >= off {
			break
		}
		if r == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return line, col
}

func pointRange(line, col int) protocol.Range {
	if line < 0 {
		line = 0
	}
	if col < 0 {
		col = 0
	}
	return protocol.Range{
		Start: protocol.Position{Line: uint32(line), Character: uint32(col)},
		End:   protocol.Position{Line: uint32(line), Character: uint32(col + 1)},
	}
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

	content := doc.content
	for _, change := range params.ContentChanges {
		// A zero range means full document replacement.
		rangeVal := change.Range
		if rangeVal.Start.Line == 0 && rangeVal.Start.Character == 0 && rangeVal.End.Line == 0 && rangeVal.End.Character == 0 {
			content = change.Text
		} else {
			startOffset := lineColToOffset(content, int(rangeVal.Start.Line), int(rangeVal.Start.Character))
			endOffset := lineColToOffset(content, int(rangeVal.End.Line), int(rangeVal.End.Character))
			if startOffset <= len(content) && endOffset <= len(content) && startOffset <= endOffset {
				content = content[:startOffset] + change.Text + content[endOffset:]
			}
		}
	}

	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error {
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	for i, r := range content {
		if currentLine == line && currentCol == col {
			return i
		}
		if r == '\n' {
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(content)
}
