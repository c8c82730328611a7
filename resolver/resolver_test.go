package resolver

import (
	"errors"
	"strings"
	"testing"

	"github.com/dtcg-format/go-dtcg"
	"github.com/dtcg-format/go-dtcg/parse"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, doc string) *Document {
	t.Helper()
	node, err := parse.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	d, err := Parse(node)
	if err != nil {
		t.Fatalf("parse resolver document: %v", err)
	}
	return d
}

func TestParse(t *testing.T) {
	d := mustParse(t, `{
		"name": "theme",
		"description": "brand theme",
		"sets": {
			"core": {"values": ["core.tokens", {"colors": {"blue": {"$value": "#00f"}}}]},
			"dark": {"values": [{"$ref": "#/sets/core"}, "dark.tokens"]}
		},
		"modifiers": {
			"contrast": {"values": ["high.tokens"]}
		},
		"resolutionOrder": [
			{"name": "core"},
			{"$ref": "#/modifiers/contrast"},
			{"name": "dark"}
		]
	}`)
	if d.Name != "theme" || d.Description != "brand theme" {
		t.Errorf("name %q description %q", d.Name, d.Description)
	}
	core := d.Sets["core"]
	if core == nil || len(core.Sources) != 2 {
		t.Fatalf("core set %+v", core)
	}
	if core.Sources[0].File != "core.tokens" {
		t.Errorf("source 0: %+v", core.Sources[0])
	}
	if core.Sources[1].Inline == nil {
		t.Errorf("source 1: %+v", core.Sources[1])
	}
	dark := d.Sets["dark"]
	if dark == nil || len(dark.Sources) != 2 || dark.Sources[0].SetRef != "core" {
		t.Fatalf("dark set %+v", dark)
	}
	if d.Modifiers == nil {
		t.Error("modifiers dropped")
	}
	wantOrder := []OrderEntry{
		{Name: "core"},
		{Ref: "#/modifiers/contrast"},
		{Name: "dark"},
	}
	if diff := cmp.Diff(wantOrder, d.Order); diff != "" {
		t.Errorf("resolution order mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		errMsg string
	}{
		{
			name:   "root not object",
			doc:    `[1]`,
			errMsg: "must be an object",
		},
		{
			name:   "set without values",
			doc:    `{"sets": {"core": {}}}`,
			errMsg: `set "core": missing values list`,
		},
		{
			name:   "source of wrong type",
			doc:    `{"sets": {"core": {"values": [42]}}}`,
			errMsg: "values entry 0",
		},
		{
			name:   "source ref outside sets",
			doc:    `{"sets": {"core": {"values": [{"$ref": "#/modifiers/x"}]}}}`,
			errMsg: "does not reference a set",
		},
		{
			name:   "order entry without name",
			doc:    `{"resolutionOrder": [{}]}`,
			errMsg: "resolutionOrder entry 0: must carry a name or a $ref",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			node, err := parse.Parse([]byte(tc.doc))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			_, err = Parse(node)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.errMsg) {
				t.Errorf("error %q does not contain %q", err, tc.errMsg)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		errMsg string
	}{
		{
			name: "valid document",
			doc: `{
				"sets": {
					"x": {"values": ["x.tokens"]},
					"y": {"values": [{"$ref": "#/sets/x"}]}
				},
				"resolutionOrder": [{"name": "x"}, {"name": "y"}]
			}`,
		},
		{
			name: "duplicate name in order",
			doc: `{
				"sets": {
					"x": {"values": ["x.tokens"]},
					"y": {"values": ["y.tokens"]}
				},
				"resolutionOrder": [{"name": "x"}, {"name": "y"}, {"name": "x"}]
			}`,
			errMsg: `duplicate name "x" in resolution order`,
		},
		{
			name: "indirect entries exempt from duplicate check",
			doc: `{
				"sets": {"x": {"values": ["x.tokens"]}},
				"resolutionOrder": [
					{"$ref": "#/sets/x"},
					{"$ref": "#/sets/x"},
					{"name": "x"}
				]
			}`,
		},
		{
			name: "order names unknown set",
			doc: `{
				"sets": {"x": {"values": ["x.tokens"]}},
				"resolutionOrder": [{"name": "z"}]
			}`,
			errMsg: `unknown set "z"`,
		},
		{
			name: "order may name a modifier",
			doc: `{
				"sets": {"x": {"values": ["x.tokens"]}},
				"modifiers": {"contrast": {"values": ["high.tokens"]}},
				"resolutionOrder": [{"name": "x"}, {"name": "contrast"}]
			}`,
		},
		{
			name: "two set cycle",
			doc: `{
				"sets": {
					"A": {"values": [{"$ref": "#/sets/B"}]},
					"B": {"values": [{"$ref": "#/sets/A"}]}
				}
			}`,
			errMsg: "cyclic reference: A -> B -> A",
		},
		{
			name: "self cycle",
			doc: `{
				"sets": {"A": {"values": [{"$ref": "#/sets/A"}]}}
			}`,
			errMsg: "cyclic reference: A -> A",
		},
		{
			name: "diamond is legal",
			doc: `{
				"sets": {
					"A": {"values": [{"$ref": "#/sets/B"}, {"$ref": "#/sets/C"}]},
					"B": {"values": [{"$ref": "#/sets/D"}]},
					"C": {"values": [{"$ref": "#/sets/D"}]},
					"D": {"values": ["d.tokens"]}
				}
			}`,
		},
		{
			name: "reference to unknown set",
			doc: `{
				"sets": {"A": {"values": [{"$ref": "#/sets/Z"}]}}
			}`,
			errMsg: `set "A" references unknown set "Z"`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := mustParse(t, tc.doc)
			err := d.Validate()
			if tc.errMsg == "" {
				if err != nil {
					t.Fatalf("validate: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.errMsg) {
				t.Errorf("error %q does not contain %q", err, tc.errMsg)
			}
		})
	}
}

func TestValidateCycleError(t *testing.T) {
	d := mustParse(t, `{
		"sets": {
			"A": {"values": [{"$ref": "#/sets/B"}]},
			"B": {"values": [{"$ref": "#/sets/C"}]},
			"C": {"values": [{"$ref": "#/sets/A"}]}
		}
	}`)
	err := d.Validate()
	if err == nil {
		t.Fatal("expected cycle error")
	}
	var cyc *dtcg.CycleError
	if !errors.As(err, &cyc) {
		t.Fatalf("error %q is not a CycleError", err)
	}
	if got := strings.Join(cyc.Chain, " -> "); got != "A -> B -> C -> A" {
		t.Errorf("chain %q", got)
	}
}
