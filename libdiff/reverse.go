package libdiff

import (
	"fmt"

	"github.com/dtcg-format/go-dtcg/ir"
)

// Reverse swaps the direction of a diff, so inserts become deletes and
// replacements trade $from for $to. Reversing a reversed diff yields the
// original.
func Reverse(diff *ir.Node) (*ir.Node, error) {
	if diff == nil {
		return nil, nil
	}
	if IsChange(diff) {
		op := ir.Get(diff, OpKey)
		if op.Type != ir.StringType {
			return nil, fmt.Errorf("wrong type for %s: %s at %s", OpKey, op.Type, diff.Path())
		}
		from, to := ir.Get(diff, FromKey), ir.Get(diff, ToKey)
		switch op.String {
		case OpInsert:
			if to == nil {
				return nil, fmt.Errorf("missing %s in %s at %s", ToKey, OpInsert, diff.Path())
			}
			return MakeDiff(to, nil), nil
		case OpDelete:
			if from == nil {
				return nil, fmt.Errorf("missing %s in %s at %s", FromKey, OpDelete, diff.Path())
			}
			return MakeDiff(nil, from), nil
		case OpReplace:
			if from == nil || to == nil {
				return nil, fmt.Errorf("missing %s/%s in %s at %s", FromKey, ToKey, OpReplace, diff.Path())
			}
			return MakeDiff(to, from), nil
		default:
			return nil, fmt.Errorf("unknown %s %q at %s", OpKey, op.String, diff.Path())
		}
	}
	if diff.Type != ir.ObjectType {
		return diff.Clone(), nil
	}
	kvs := make([]ir.KeyVal, len(diff.Fields))
	for i, f := range diff.Fields {
		r, err := Reverse(diff.Values[i])
		if err != nil {
			return nil, err
		}
		kvs[i] = ir.KeyVal{Key: ir.FromString(f.String), Val: r}
	}
	return ir.FromKeyVals(kvs), nil
}
