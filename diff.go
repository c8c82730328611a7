package dtcg

import (
	"github.com/dtcg-format/go-dtcg/ir"
	"github.com/dtcg-format/go-dtcg/libdiff"
)

// Diff produces a succinct comparison of from and to. If there are no
// differences, Diff returns nil.
//
// A resulting diff may be reversed using [libdiff.Reverse] and applied
// with [ApplyDiff].
//
// The structure returned by Diff mirrors the documents being compared:
//
//   - if the types of from and to differ, the result is a single change
//     record replacing one with the other
//
//   - for objects, any field in one side only becomes an insert or
//     delete record; fields that differ contain a diff of their values;
//     equal fields are absent
//
//   - arrays are aligned element by element and presented as an object
//     keyed by element index
//
// Comparing the resolved forms of two documents shows effective changes;
// comparing unresolved forms shows authored changes.
func Diff(from, to *ir.Node) *ir.Node {
	return doDiff(from, to)
}

// ApplyDiff transforms doc per a diff produced by Diff, yielding the
// document the diff's to side describes. Applying Diff(a, b) to a gives
// b; applying its reverse to b gives a back.
func ApplyDiff(doc, diff *ir.Node) (*ir.Node, error) {
	return libdiff.Apply(doc, diff)
}

func doDiff(from, to *ir.Node) *ir.Node {
	if from.Type != to.Type {
		return libdiff.MakeDiff(from, to)
	}
	switch from.Type {
	case ir.ObjectType:
		return libdiff.DiffObject(from, to, doDiff)

	case ir.ArrayType:
		return libdiff.DiffArrayByIndex(from, to, doDiff)

	case ir.NumberType:
		return libdiff.DiffNumber(from, to)

	case ir.StringType:
		if from.String == to.String {
			return nil
		}
		return libdiff.MakeDiff(from, to)

	case ir.BoolType:
		if from.Bool == to.Bool {
			return nil
		}
		return libdiff.MakeDiff(from, to)

	case ir.NullType:
		return nil
	}
	return nil
}
