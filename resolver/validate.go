package resolver

import (
	"fmt"
	"maps"
	"slices"

	"github.com/dtcg-format/go-dtcg"
	"github.com/dtcg-format/go-dtcg/debug"
	"github.com/dtcg-format/go-dtcg/ir"
)

// Validate checks the document's semantics: resolution order entries
// must carry distinct names, and the set-reference graph must be
// acyclic. The document is accepted or rejected, never rewritten.
func (d *Document) Validate() error {
	if debug.Resolve() {
		debug.Logf("validate resolver document %q\n", d.Name)
	}
	if err := d.checkOrder(); err != nil {
		return err
	}
	return d.checkSetCycles()
}

// checkOrder scans the resolution order for duplicates. Only inline
// entries carry a name; indirect entries are exempt from the check.
func (d *Document) checkOrder() error {
	seen := map[string]bool{}
	for _, entry := range d.Order {
		if entry.Name == "" {
			continue
		}
		if seen[entry.Name] {
			return fmt.Errorf("duplicate name %q in resolution order", entry.Name)
		}
		seen[entry.Name] = true
		if d.Sets[entry.Name] != nil {
			continue
		}
		if d.Modifiers != nil && ir.Get(d.Modifiers, entry.Name) != nil {
			continue
		}
		return fmt.Errorf("resolution order names unknown set %q", entry.Name)
	}
	return nil
}

func (d *Document) checkSetCycles() error {
	for _, name := range slices.Sorted(maps.Keys(d.Sets)) {
		visited := map[string]bool{name: true}
		if err := d.walkSet(name, []string{name}, visited); err != nil {
			return err
		}
	}
	return nil
}

// walkSet follows set references depth first. visited holds the names on
// the active path and is copied per branch, so two sources sharing a set
// do not report a cycle.
func (d *Document) walkSet(name string, chain []string, visited map[string]bool) error {
	for _, src := range d.Sets[name].Sources {
		if src.SetRef == "" {
			continue
		}
		if d.Sets[src.SetRef] == nil {
			return fmt.Errorf("set %q references unknown set %q", name, src.SetRef)
		}
		if visited[src.SetRef] {
			return &dtcg.CycleError{Chain: append(slices.Clone(chain), src.SetRef)}
		}
		v2 := maps.Clone(visited)
		v2[src.SetRef] = true
		if err := d.walkSet(src.SetRef, append(chain, src.SetRef), v2); err != nil {
			return err
		}
	}
	return nil
}
