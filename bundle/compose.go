package bundle

import (
	"fmt"
	"maps"
	"slices"

	"github.com/dtcg-format/go-dtcg"
	"github.com/dtcg-format/go-dtcg/debug"
	"github.com/dtcg-format/go-dtcg/ir"
	"github.com/dtcg-format/go-dtcg/resolver"
)

// Compose validates doc and merges the token documents it names into
// one document. Sets compose in resolution order; a resolver document
// without a resolution order composes every set in name order. Modifier
// entries and indirect order entries describe downstream behavior and
// are skipped.
func Compose(doc *resolver.Document, src Source) (*ir.Node, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	res := ir.FromMap(nil)
	for _, name := range composeOrder(doc) {
		set := doc.Sets[name]
		if set == nil {
			// a modifier name; not composed here
			continue
		}
		merged, err := composeSet(doc, set, src)
		if err != nil {
			return nil, err
		}
		res = dtcg.Merge(res, merged)
	}
	return res, nil
}

func composeOrder(doc *resolver.Document) []string {
	if len(doc.Order) == 0 {
		return slices.Sorted(maps.Keys(doc.Sets))
	}
	res := make([]string, 0, len(doc.Order))
	for _, entry := range doc.Order {
		if entry.Name == "" {
			continue
		}
		res = append(res, entry.Name)
	}
	return res
}

func composeSet(doc *resolver.Document, set *resolver.Set, src Source) (*ir.Node, error) {
	if debug.Bundle() {
		debug.Logf("compose set %q\n", set.Name)
	}
	res := ir.FromMap(nil)
	for i, s := range set.Sources {
		var (
			part *ir.Node
			err  error
		)
		switch {
		case s.File != "":
			part, err = src.Load(s.File)
			if err != nil {
				err = fmt.Errorf("set %q: %w", set.Name, err)
			}
		case s.SetRef != "":
			part, err = composeSet(doc, doc.Sets[s.SetRef], src)
		case s.Inline != nil:
			part = s.Inline
		default:
			err = fmt.Errorf("set %q: values entry %d is empty", set.Name, i)
		}
		if err != nil {
			return nil, err
		}
		res = dtcg.Merge(res, part)
	}
	return res, nil
}
