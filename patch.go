package dtcg

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/dtcg-format/go-dtcg/debug"
	"github.com/dtcg-format/go-dtcg/ir"
	"github.com/dtcg-format/go-dtcg/parse"
)

// ApplyPatch applies an RFC 6902 JSON patch document to doc and returns
// the patched copy. Paths in the patch address the unresolved document,
// so token members like /colors/blue/$value are valid targets.
func ApplyPatch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	if debug.Resolve() {
		debug.Logf("apply patch %s\n", string(patch))
	}
	d, err := ir.MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}
	out, err := p.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("apply patch: %w", err)
	}
	return parse.Parse(out, parse.ParseJSON())
}

// MergePatch applies an RFC 7386 merge patch to doc and returns the
// patched copy.
func MergePatch(doc, patch []byte) ([]byte, error) {
	return jsonpatch.MergePatch(doc, patch)
}

// MergePatchNode is MergePatch over parsed documents.
func MergePatchNode(doc, patch *ir.Node) (*ir.Node, error) {
	d, err := ir.MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	p, err := ir.MarshalJSON(patch)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, p)
	if err != nil {
		return nil, fmt.Errorf("merge patch: %w", err)
	}
	return parse.Parse(out, parse.ParseJSON())
}
