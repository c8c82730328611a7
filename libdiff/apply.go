package libdiff

import (
	"fmt"
	"strconv"

	"github.com/dtcg-format/go-dtcg/ir"
)

// Apply rewrites doc per a diff produced by the Diff functions. The
// document's current values must match the diff's $from sides, so a
// stale diff fails instead of silently corrupting the document.
func Apply(doc, diff *ir.Node) (*ir.Node, error) {
	if diff == nil {
		return doc.Clone(), nil
	}
	if IsChange(diff) {
		return applyChange(doc, diff)
	}
	if diff.Type != ir.ObjectType {
		return nil, fmt.Errorf("invalid diff node type %s at %s", diff.Type, diff.Path())
	}
	switch doc.Type {
	case ir.ArrayType:
		return applyArray(doc, diff)
	case ir.ObjectType:
		return applyObject(doc, diff)
	default:
		return nil, fmt.Errorf("cannot apply, unexpected value at %s", doc.Path())
	}
}

// applyChange handles a whole-value replacement. Inserts and deletes
// only occur inside object and array diffs, where the walkers handle
// them.
func applyChange(doc, rec *ir.Node) (*ir.Node, error) {
	op, from, to, err := changeParts(rec)
	if err != nil {
		return nil, err
	}
	if op != OpReplace {
		return nil, fmt.Errorf("unexpected %s %q at %s", OpKey, op, rec.Path())
	}
	if !ir.Equal(doc, from) {
		return nil, fmt.Errorf("cannot apply, unexpected value at %s", doc.Path())
	}
	return to.Clone(), nil
}

func changeParts(rec *ir.Node) (string, *ir.Node, *ir.Node, error) {
	op := ir.Get(rec, OpKey)
	if op.Type != ir.StringType {
		return "", nil, nil, fmt.Errorf("wrong type for %s: %s at %s", OpKey, op.Type, rec.Path())
	}
	from, to := ir.Get(rec, FromKey), ir.Get(rec, ToKey)
	switch op.String {
	case OpInsert:
		if to == nil {
			return "", nil, nil, fmt.Errorf("missing %s in %s at %s", ToKey, OpInsert, rec.Path())
		}
	case OpDelete:
		if from == nil {
			return "", nil, nil, fmt.Errorf("missing %s in %s at %s", FromKey, OpDelete, rec.Path())
		}
	case OpReplace:
		if from == nil || to == nil {
			return "", nil, nil, fmt.Errorf("missing %s/%s in %s at %s", FromKey, ToKey, OpReplace, rec.Path())
		}
	default:
		return "", nil, nil, fmt.Errorf("unknown %s %q at %s", OpKey, op.String, rec.Path())
	}
	return op.String, from, to, nil
}

func applyObject(doc, diff *ir.Node) (*ir.Node, error) {
	out := make(map[string]*ir.Node, len(doc.Fields))
	for i, f := range doc.Fields {
		out[f.String] = doc.Values[i]
	}
	for i, f := range diff.Fields {
		key := f.String
		d := diff.Values[i]
		cur := out[key]
		if !IsChange(d) {
			if cur == nil {
				return nil, fmt.Errorf("cannot apply, no field %q at %s", key, diff.Path())
			}
			v, err := Apply(cur, d)
			if err != nil {
				return nil, err
			}
			out[key] = v
			continue
		}
		op, from, to, err := changeParts(d)
		if err != nil {
			return nil, err
		}
		switch op {
		case OpInsert:
			if cur != nil {
				return nil, fmt.Errorf("cannot apply, field %q already present at %s", key, cur.Path())
			}
			out[key] = to
		case OpDelete:
			if cur == nil || !ir.Equal(cur, from) {
				return nil, fmt.Errorf("cannot apply, unexpected value for field %q at %s", key, doc.Path())
			}
			delete(out, key)
		case OpReplace:
			if cur == nil || !ir.Equal(cur, from) {
				return nil, fmt.Errorf("cannot apply, unexpected value for field %q at %s", key, doc.Path())
			}
			out[key] = to
		}
	}
	res := make(map[string]*ir.Node, len(out))
	for k, v := range out {
		res[k] = v.Clone()
	}
	return ir.FromMap(res), nil
}

// applyArray walks the merged alignment index space the array diff is
// keyed by: positions without an entry copy an element through, deletes
// and replaces consume one, inserts consume none.
func applyArray(doc, diff *ir.Node) (*ir.Node, error) {
	diffMap, err := intKeys(diff)
	if err != nil {
		return nil, err
	}
	out := []*ir.Node{}
	docVals := doc.Values
	fi, di := 0, 0
	n := len(docVals)
	applied := 0
	for applied <= len(diffMap) {
		op := diffMap[di]
		if op == nil {
			if applied == len(diffMap) {
				if fi < n {
					out = append(out, docVals[fi:]...)
				}
				break
			}
			if fi < n {
				out = append(out, docVals[fi])
				fi++
			}
			di++
			continue
		}
		applied++
		if !IsChange(op) {
			if fi >= n {
				return nil, fmt.Errorf("cannot apply, no element for diff at %s", op.Path())
			}
			v, err := Apply(docVals[fi], op)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
			fi++
			di++
			continue
		}
		opName, from, to, err := changeParts(op)
		if err != nil {
			return nil, err
		}
		switch opName {
		case OpDelete:
			if fi >= n || !ir.Equal(docVals[fi], from) {
				return nil, fmt.Errorf("cannot apply, unexpected value at index %d of %s", fi, doc.Path())
			}
			fi++
			di++
		case OpReplace:
			if fi >= n || !ir.Equal(docVals[fi], from) {
				return nil, fmt.Errorf("cannot apply, unexpected value at index %d of %s", fi, doc.Path())
			}
			out = append(out, to)
			fi++
			di++
		case OpInsert:
			out = append(out, to)
			di++
		}
	}
	res := make([]*ir.Node, len(out))
	for i, v := range out {
		res[i] = v.Clone()
	}
	return ir.FromSlice(res), nil
}

func intKeys(diff *ir.Node) (map[int]*ir.Node, error) {
	m := make(map[int]*ir.Node, len(diff.Fields))
	for i, f := range diff.Fields {
		n, err := strconv.Atoi(f.String)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("array diff key %q is not an index at %s", f.String, diff.Path())
		}
		m[n] = diff.Values[i]
	}
	return m, nil
}
