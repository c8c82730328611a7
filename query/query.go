package query

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/dtcg-format/go-dtcg/debug"
	"github.com/dtcg-format/go-dtcg/ir"
)

// Query is a compiled token filter.
type Query struct {
	src string
	prg *vm.Program
}

// Compile builds a filter from an expression over the entry variables.
func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("compile query %q: %w", src, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.AsBool(),
		expr.AllowUndefinedVariables(),
		expr.Function("segment", func(params ...any) (any, error) {
			if len(params) != 2 {
				return nil, fmt.Errorf("segment expects a path and an index")
			}
			path, ok := params[0].(string)
			if !ok {
				return nil, fmt.Errorf("segment expects a string path, got %T", params[0])
			}
			idx, ok := params[1].(int)
			if !ok {
				return nil, fmt.Errorf("segment expects an int index, got %T", params[1])
			}
			segs := strings.Split(path, ".")
			if idx < 0 || idx >= len(segs) {
				return "", nil
			}
			return segs[idx], nil
		}),
	}
}

func (q *Query) String() string {
	return q.src
}

// Match reports whether the entry satisfies the query.
func (q *Query) Match(e Entry) (bool, error) {
	res, err := expr.Run(q.prg, e.env())
	if err != nil {
		return false, fmt.Errorf("run query %q: %w", q.src, err)
	}
	v, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("query %q produced %T, not a boolean", q.src, res)
	}
	return v, nil
}

// Select returns the tokens of doc satisfying the query, in document
// order.
func (q *Query) Select(doc *ir.Node) ([]Entry, error) {
	if debug.Query() {
		debug.Logf("query %q\n", q.src)
	}
	var res []Entry
	for _, e := range Flatten(doc) {
		ok, err := q.Match(e)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, e)
		}
	}
	return res, nil
}

// Select compiles src and filters doc in one step.
func Select(doc *ir.Node, src string) ([]Entry, error) {
	q, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return q.Select(doc)
}

func (e Entry) env() map[string]any {
	return map[string]any{
		"path":        e.Path,
		"type":        e.Type,
		"value":       e.Value,
		"description": e.Description,
		"deprecated":  e.Deprecated,
	}
}
