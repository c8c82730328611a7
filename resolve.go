package dtcg

import (
	"fmt"
	"maps"
	"slices"

	"github.com/dtcg-format/go-dtcg/debug"
	"github.com/dtcg-format/go-dtcg/ir"
	"github.com/dtcg-format/go-dtcg/ref"
	"github.com/dtcg-format/go-dtcg/token"
)

// Resolve returns a copy of doc in which every $extends has been merged
// away and every alias and pointer reference has been replaced by the
// value it designates. Tokens whose resolved target carries a $type adopt
// it unless they declare their own. doc is not modified.
//
// Extensions are applied over the whole document before any reference is
// chased, so references into extended groups see the merged content.
func Resolve(doc *ir.Node) (*ir.Node, error) {
	if doc == nil || doc.Type != ir.ObjectType {
		return nil, fmt.Errorf("document root must be an object")
	}
	if debug.Resolve() {
		debug.Logf("resolve %s\n", debug.Doc{Node: doc})
	}
	ex, err := resolveExtensions(doc)
	if err != nil {
		return nil, err
	}
	r := &refResolver{root: ex}
	return r.node(ex, nil)
}

func resolveExtensions(doc *ir.Node) (*ir.Node, error) {
	e := &extender{root: doc}
	return e.node(doc, nil, nil, map[string]bool{})
}

// extender rebuilds a document with every $extends merged into its group.
// Targets are located in the original, unextended document.
type extender struct {
	root *ir.Node
}

// node rebuilds n with extensions applied. chain and visited track the
// extension targets active on this branch of the extends graph. Children
// inherit them, so a cycle routed through a child of an extended base is
// caught; extend adds entries only to copies, so sibling branches never
// observe one another's targets.
func (e *extender) node(n *ir.Node, path, chain []string, visited map[string]bool) (*ir.Node, error) {
	if token.Classify(n) != token.Group {
		return n.Clone(), nil
	}
	cur := n
	if ext := ir.Get(n, token.KeyExtends); ext != nil {
		merged, err := e.extend(n, ext, path, chain, visited)
		if err != nil {
			return nil, err
		}
		cur = merged
	}
	res := make(map[string]*ir.Node, len(cur.Fields))
	for i, f := range cur.Fields {
		key, v := f.String, cur.Values[i]
		if token.IsReserved(key) {
			if key != token.KeyExtends {
				res[key] = v.Clone()
			}
			continue
		}
		child, err := e.node(v, append(path, key), chain, visited)
		if err != nil {
			return nil, err
		}
		res[key] = child
	}
	return ir.FromMap(res), nil
}

// extend applies n's $extends. Failures of the extension itself are
// located by path; errors out of the recursion come back located already.
func (e *extender) extend(n, ext *ir.Node, path, chain []string, visited map[string]bool) (*ir.Node, error) {
	fail := func(err error) error {
		return fmt.Errorf("group %s: %w", pathString(path), err)
	}
	if ext.Type != ir.StringType {
		return nil, fail(fmt.Errorf("$extends must be a string, got %s", ext.Type))
	}
	r, ok := ref.Parse(ext.String)
	if !ok {
		return nil, fail(fmt.Errorf("$extends %q is not a reference", ext.String))
	}
	key := r.Dotted()
	if visited[key] {
		return nil, fail(&CycleError{Chain: append(slices.Clone(chain), key)})
	}
	target := ir.Descend(e.root, r.Segments)
	if target == nil {
		return nil, fail(fmt.Errorf("$extends %q %w", ext.String, ErrUnresolvable))
	}
	if token.Classify(target) != token.Group {
		return nil, fail(fmt.Errorf("$extends %q %w", ext.String, ErrExtendsTarget))
	}
	if debug.Merge() {
		debug.Logf("extend with %s\n", ext.String)
	}
	v2 := maps.Clone(visited)
	v2[key] = true
	base, err := e.node(target, r.Segments, append(chain, key), v2)
	if err != nil {
		return nil, err
	}
	local := make(map[string]*ir.Node, len(n.Fields))
	for i, f := range n.Fields {
		if f.String == token.KeyExtends {
			continue
		}
		local[f.String] = n.Values[i].Clone()
	}
	return Merge(base, ir.FromMap(local)), nil
}

// refResolver rebuilds an extension-free document with every alias and
// pointer replaced by its target value.
type refResolver struct {
	root *ir.Node
}

func (r *refResolver) node(n *ir.Node, path []string) (*ir.Node, error) {
	switch token.Classify(n) {
	case token.Token:
		res, err := r.token(n)
		if err != nil {
			return nil, fmt.Errorf("token %s: %w", pathString(path), err)
		}
		return res, nil
	case token.Group:
		return r.group(n, path)
	default:
		return n.Clone(), nil
	}
}

func (r *refResolver) group(n *ir.Node, path []string) (*ir.Node, error) {
	res := make(map[string]*ir.Node, len(n.Fields))
	for i, f := range n.Fields {
		key, v := f.String, n.Values[i]
		if token.IsReserved(key) {
			res[key] = v.Clone()
			continue
		}
		child, err := r.node(v, append(path, key))
		if err != nil {
			return nil, err
		}
		res[key] = child
	}
	return ir.FromMap(res), nil
}

func (r *refResolver) token(tok *ir.Node) (*ir.Node, error) {
	val := ir.Get(tok, token.KeyValue)
	ptr := ir.Get(tok, token.KeyRef)
	if val != nil && ptr != nil {
		return nil, ErrValueAndRef
	}
	res := make(map[string]*ir.Node, len(tok.Fields))
	for i, f := range tok.Fields {
		if f.String == token.KeyValue || f.String == token.KeyRef {
			continue
		}
		res[f.String] = tok.Values[i].Clone()
	}
	var (
		out *ir.Node
		typ string
		err error
	)
	switch {
	case ptr != nil:
		if ptr.Type != ir.StringType {
			return nil, fmt.Errorf("$ref must be a string, got %s", ptr.Type)
		}
		out, typ, err = r.pointer(ptr.String, chain{})
	case val.Type == ir.StringType && ref.IsAlias(val.String):
		out, typ, err = r.alias(val.String, chain{})
	default:
		out, err = r.value(val, chain{})
	}
	if err != nil {
		return nil, err
	}
	res[token.KeyValue] = out
	if typ != "" && res[token.KeyType] == nil {
		res[token.KeyType] = ir.FromString(typ)
	}
	return ir.FromMap(res), nil
}

// value resolves a token value in place. Alias strings and reference
// objects are replaced wherever they occur; other leaves copy over.
func (r *refResolver) value(v *ir.Node, ch chain) (*ir.Node, error) {
	switch v.Type {
	case ir.ObjectType:
		if p := ir.Get(v, token.KeyRef); p != nil {
			if p.Type != ir.StringType {
				return nil, fmt.Errorf("$ref must be a string, got %s", p.Type)
			}
			out, _, err := r.pointer(p.String, ch)
			return out, err
		}
		res := make(map[string]*ir.Node, len(v.Fields))
		for i, f := range v.Fields {
			child, err := r.value(v.Values[i], ch)
			if err != nil {
				return nil, err
			}
			res[f.String] = child
		}
		return ir.FromMap(res), nil
	case ir.ArrayType:
		vals := make([]*ir.Node, len(v.Values))
		for i, elt := range v.Values {
			out, err := r.value(elt, ch)
			if err != nil {
				return nil, err
			}
			vals[i] = out
		}
		return ir.FromSlice(vals), nil
	case ir.StringType:
		if ref.IsAlias(v.String) {
			out, _, err := r.alias(v.String, ch)
			return out, err
		}
		return v.Clone(), nil
	default:
		return v.Clone(), nil
	}
}

func (r *refResolver) alias(raw string, ch chain) (*ir.Node, string, error) {
	ch, cyc := ch.push(raw)
	if cyc != nil {
		return nil, "", cyc
	}
	ar, _ := ref.ParseAlias(raw)
	if debug.Resolve() {
		debug.Logf("alias %s\n", raw)
	}
	target := ir.Descend(r.root, ar.Segments)
	if token.Classify(target) != token.Token {
		return nil, "", fmt.Errorf("reference %q %w", raw, ErrNotAToken)
	}
	tval := ir.Get(target, token.KeyValue)
	tref := ir.Get(target, token.KeyRef)
	if tval != nil && tref != nil {
		return nil, "", fmt.Errorf("token %s: %w", ar.Dotted(), ErrValueAndRef)
	}
	var (
		out     *ir.Node
		deepTyp string
		err     error
	)
	switch {
	case tref != nil:
		if tref.Type != ir.StringType {
			return nil, "", fmt.Errorf("$ref must be a string, got %s", tref.Type)
		}
		out, deepTyp, err = r.pointer(tref.String, ch)
	case tval.Type == ir.StringType && ref.IsAlias(tval.String):
		out, deepTyp, err = r.alias(tval.String, ch)
	default:
		out, err = r.value(tval, ch)
	}
	if err != nil {
		return nil, "", err
	}
	typ := token.Type(target)
	if typ == "" {
		typ = token.InheritedType(r.root, ar.Segments)
	}
	if typ == "" {
		typ = deepTyp
	}
	return out, typ, nil
}

func (r *refResolver) pointer(raw string, ch chain) (*ir.Node, string, error) {
	ch, cyc := ch.push(raw)
	if cyc != nil {
		return nil, "", cyc
	}
	pr, ok := ref.ParsePointer(raw)
	if !ok {
		return nil, "", fmt.Errorf("pointer %q %w", raw, ErrUnresolvable)
	}
	if debug.Resolve() {
		debug.Logf("pointer %s\n", raw)
	}
	target := ir.Descend(r.root, pr.Segments)
	if target == nil {
		return nil, "", fmt.Errorf("pointer %q %w", raw, ErrUnresolvable)
	}
	// A pointer may address a token's $value member or any node inside
	// it, but never a token object itself.
	inValue := slices.Contains(pr.Segments, token.KeyValue)
	if !inValue && token.Classify(target) == token.Token {
		return nil, "", fmt.Errorf("pointer %q %w", raw, ErrAmbiguousPointer)
	}
	typ := ""
	if n := len(pr.Segments); n > 0 && pr.Segments[n-1] == token.KeyValue {
		tokSegs := pr.Segments[:n-1]
		if tokNode := ir.Descend(r.root, tokSegs); token.Classify(tokNode) == token.Token {
			typ = token.Type(tokNode)
			if typ == "" {
				typ = token.InheritedType(r.root, tokSegs)
			}
		}
	}
	var (
		out *ir.Node
		err error
	)
	if target.Type == ir.StringType && ref.IsAlias(target.String) {
		out, _, err = r.alias(target.String, ch)
	} else {
		out, err = r.value(target, ch)
	}
	if err != nil {
		return nil, "", err
	}
	return out, typ, nil
}

// chain tracks the references visited along one resolution path. push
// copies, so sibling branches of a composite value never share state.
type chain struct {
	order []string
	seen  map[string]bool
}

func (c chain) push(ref string) (chain, *CycleError) {
	if c.seen[ref] {
		return c, &CycleError{Chain: append(slices.Clone(c.order), ref)}
	}
	seen := maps.Clone(c.seen)
	if seen == nil {
		seen = map[string]bool{}
	}
	seen[ref] = true
	return chain{order: append(slices.Clone(c.order), ref), seen: seen}, nil
}
