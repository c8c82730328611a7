package dtcg

import (
	"github.com/dtcg-format/go-dtcg/debug"
	"github.com/dtcg-format/go-dtcg/ir"
	"github.com/dtcg-format/go-dtcg/token"
)

// Merge combines overlay onto base, returning a new document. Groups merge
// key by key, with nested groups merged recursively. Everything else,
// including every $-prefixed metadata value, is taken wholesale from
// overlay when both sides define it. Neither input is modified.
func Merge(base, overlay *ir.Node) *ir.Node {
	if debug.Merge() {
		debug.Logf("merge %s onto %s\n", debug.Doc{Node: overlay}, debug.Doc{Node: base})
	}
	if token.Classify(base) != token.Group || token.Classify(overlay) != token.Group {
		return overlay.Clone()
	}
	return mergeGroups(base, overlay)
}

func mergeGroups(base, overlay *ir.Node) *ir.Node {
	res := make(map[string]*ir.Node, len(base.Fields)+len(overlay.Fields))
	for i, f := range base.Fields {
		res[f.String] = base.Values[i].Clone()
	}
	for i, f := range overlay.Fields {
		key, ov := f.String, overlay.Values[i]
		bv, ok := res[key]
		if ok && !token.IsReserved(key) &&
			token.Classify(bv) == token.Group && token.Classify(ov) == token.Group {
			res[key] = mergeGroups(bv, ov)
			continue
		}
		res[key] = ov.Clone()
	}
	return ir.FromMap(res)
}
