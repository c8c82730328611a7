package libdiff

import "github.com/dtcg-format/go-dtcg/ir"

// DiffNumber compares two numbers by their stored representation, so an
// int64 and a float64 of equal value still differ.
func DiffNumber(from, to *ir.Node) *ir.Node {
	if (from.Int64 == nil) != (to.Int64 == nil) ||
		(from.Float64 == nil) != (to.Float64 == nil) {
		return MakeDiff(from, to)
	}
	if from.Int64 != nil {
		if *from.Int64 != *to.Int64 {
			return MakeDiff(from, to)
		}
		return nil
	}
	if from.Float64 != nil {
		if *from.Float64 != *to.Float64 {
			return MakeDiff(from, to)
		}
		return nil
	}
	if from.Number != to.Number {
		return MakeDiff(from, to)
	}
	return nil
}
