package libdiff

import (
	"strconv"
	"strings"

	"github.com/dtcg-format/go-dtcg/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffArrayByIndex aligns two arrays element by element and produces an
// object keyed by element index. Each element is summarized as a rune so
// the sequences can be aligned; matched composite elements recurse
// through df, mismatched elements become change records. Returns nil
// when nothing differs.
func DiffArrayByIndex(from, to *ir.Node, df DiffFunc) *ir.Node {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	resMap := make(map[int]*ir.Node, len(diffs))

	fi, ti, ri := 0, 0, 0
	var delIndex *int
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				resMap[ri] = MakeDiff(from.Values[fi], nil)
				tmp := ri
				delIndex = &tmp
				ri++
				fi++
			}
		case diffpatch.DiffEqual:
			delIndex = nil
			for range diff.Text {
				di := df(from.Values[fi], to.Values[ti])
				if di != nil {
					resMap[ri] = di
				}
				ri++
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				// a delete directly before an insert is a replacement
				if delIndex != nil && *delIndex == ri-1 {
					old := ir.Get(resMap[ri-1], FromKey)
					resMap[ri-1] = MakeDiff(old, to.Values[ti])
				} else {
					resMap[ri] = MakeDiff(nil, to.Values[ti])
				}
				ri++
				ti++
				delIndex = nil
			}
		}
	}
	if len(resMap) == 0 {
		return nil
	}
	return ir.FromIntMap(resMap)
}

// mapValues summarizes each element for alignment. Composites summarize
// by type only, so same-typed composites align and recurse; scalars
// summarize by value.
func mapValues(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(node *ir.Node) string {
	switch node.Type {
	case ir.ObjectType, ir.ArrayType, ir.NullType:
		return node.Type.String()
	case ir.BoolType:
		return node.Type.String() + "-" + strconv.FormatBool(node.Bool)
	case ir.StringType:
		if strings.Contains(node.String, "\n") {
			return node.Type.String() + "/m"
		}
		return node.Type.String() + "-" + node.String
	case ir.NumberType:
		if node.Int64 != nil {
			return node.Type.String() + "-i-" + strconv.FormatInt(*node.Int64, 10)
		}
		if node.Float64 != nil {
			return node.Type.String() + "-f-" + strconv.FormatFloat(*node.Float64, 'f', -1, 64)
		}
		return node.Type.String() + "-s-" + node.Number
	default:
		panic("type")
	}
}
