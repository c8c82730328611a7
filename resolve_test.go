package dtcg

import (
	"errors"
	"strings"
	"testing"

	"github.com/dtcg-format/go-dtcg/encode"
	"github.com/dtcg-format/go-dtcg/ir"
	"github.com/dtcg-format/go-dtcg/parse"
)

func mustParse(t *testing.T, doc string) *ir.Node {
	t.Helper()
	n, err := parse.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return n
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		want   string
		errIs  error
		errMsg string
	}{
		{
			name: "no references",
			doc:  `{"colors": {"blue": {"$type": "color", "$value": "#00f"}}}`,
			want: `{"colors": {"blue": {"$type": "color", "$value": "#00f"}}}`,
		},
		{
			name: "alias adopts value and type",
			doc: `{
				"colors": {"blue": {"$type": "color", "$value": "#00f"}},
				"accent": {"$value": "{colors.blue}"}
			}`,
			want: `{
				"colors": {"blue": {"$type": "color", "$value": "#00f"}},
				"accent": {"$type": "color", "$value": "#00f"}
			}`,
		},
		{
			name: "alias keeps declared type",
			doc: `{
				"colors": {"blue": {"$type": "color", "$value": "#00f"}},
				"accent": {"$type": "paint", "$value": "{colors.blue}"}
			}`,
			want: `{
				"colors": {"blue": {"$type": "color", "$value": "#00f"}},
				"accent": {"$type": "paint", "$value": "#00f"}
			}`,
		},
		{
			name: "alias adopts group inherited type",
			doc: `{
				"colors": {"$type": "color", "blue": {"$value": "#00f"}},
				"accent": {"$value": "{colors.blue}"}
			}`,
			want: `{
				"colors": {"$type": "color", "blue": {"$value": "#00f"}},
				"accent": {"$type": "color", "$value": "#00f"}
			}`,
		},
		{
			name: "alias chain nearest type wins",
			doc: `{
				"a": {"$value": "{g.b}"},
				"g": {"$type": "t1", "b": {"$value": "{c}"}},
				"c": {"$type": "t2", "$value": 1}
			}`,
			want: `{
				"a": {"$type": "t1", "$value": 1},
				"g": {"$type": "t1", "b": {"$type": "t2", "$value": 1}},
				"c": {"$type": "t2", "$value": 1}
			}`,
		},
		{
			name: "pointer to value member",
			doc: `{
				"base": {"$type": "dimension", "$value": "4px"},
				"pad": {"$ref": "#/base/$value"}
			}`,
			want: `{
				"base": {"$type": "dimension", "$value": "4px"},
				"pad": {"$type": "dimension", "$value": "4px"}
			}`,
		},
		{
			name: "pointer with escaped segments",
			doc: `{
				"a/b": {"$type": "x", "$value": 1},
				"p": {"$ref": "#/a~1b/$value"}
			}`,
			want: `{
				"a/b": {"$type": "x", "$value": 1},
				"p": {"$type": "x", "$value": 1}
			}`,
		},
		{
			name: "pointer to description member",
			doc: `{
				"src": {"$description": "d", "$value": 1},
				"p": {"$ref": "#/src/$description"}
			}`,
			want: `{
				"src": {"$description": "d", "$value": 1},
				"p": {"$value": "d"}
			}`,
		},
		{
			name: "pointer into composite value",
			doc: `{
				"shadow": {"$type": "shadow", "$value": {"blur": "2px", "color": "#000"}},
				"p": {"$ref": "#/shadow/$value/blur"}
			}`,
			want: `{
				"shadow": {"$type": "shadow", "$value": {"blur": "2px", "color": "#000"}},
				"p": {"$value": "2px"}
			}`,
		},
		{
			name: "pointer into array element",
			doc: `{
				"scale": {"$value": [1, 2, 3]},
				"p": {"$ref": "#/scale/$value/1"}
			}`,
			want: `{
				"scale": {"$value": [1, 2, 3]},
				"p": {"$value": 2}
			}`,
		},
		{
			name: "composite value with embedded references",
			doc: `{
				"colors": {"blue": {"$type": "color", "$value": "#00f"}},
				"border": {
					"$type": "border",
					"$value": {
						"color": "{colors.blue}",
						"style": "solid",
						"width": {"$ref": "#/widths/thin/$value"}
					}
				},
				"widths": {"thin": {"$type": "dimension", "$value": "1px"}}
			}`,
			want: `{
				"colors": {"blue": {"$type": "color", "$value": "#00f"}},
				"border": {
					"$type": "border",
					"$value": {"color": "#00f", "style": "solid", "width": "1px"}
				},
				"widths": {"thin": {"$type": "dimension", "$value": "1px"}}
			}`,
		},
		{
			name: "alias and pointer are equivalent",
			doc: `{
				"colors": {"blue": {"$type": "color", "$value": "#00f"}},
				"viaAlias": {"$value": "{colors.blue}"},
				"viaPointer": {"$ref": "#/colors/blue/$value"}
			}`,
			want: `{
				"colors": {"blue": {"$type": "color", "$value": "#00f"}},
				"viaAlias": {"$type": "color", "$value": "#00f"},
				"viaPointer": {"$type": "color", "$value": "#00f"}
			}`,
		},
		{
			name: "metadata passes through",
			doc: `{
				"$description": "token set",
				"colors": {
					"$extensions": {"com.example": {"note": "{not.a.ref}"}},
					"blue": {
						"$deprecated": true,
						"$description": "primary",
						"$type": "color",
						"$value": "#00f"
					}
				}
			}`,
			want: `{
				"$description": "token set",
				"colors": {
					"$extensions": {"com.example": {"note": "{not.a.ref}"}},
					"blue": {
						"$deprecated": true,
						"$description": "primary",
						"$type": "color",
						"$value": "#00f"
					}
				}
			}`,
		},
		{
			name: "extends merges base group",
			doc: `{
				"base": {"a": {"$type": "t", "$value": 1}},
				"g": {"$extends": "{base}", "b": {"$value": 2}}
			}`,
			want: `{
				"base": {"a": {"$type": "t", "$value": 1}},
				"g": {"a": {"$type": "t", "$value": 1}, "b": {"$value": 2}}
			}`,
		},
		{
			name: "extends by pointer",
			doc: `{
				"base": {"a": {"$value": 1}},
				"g": {"$extends": "#/base"}
			}`,
			want: `{
				"base": {"a": {"$value": 1}},
				"g": {"a": {"$value": 1}}
			}`,
		},
		{
			name: "extends local overrides base",
			doc: `{
				"base": {"a": {"$value": 1}, "b": {"$value": 2}},
				"g": {"$extends": "{base}", "a": {"$value": 10}}
			}`,
			want: `{
				"base": {"a": {"$value": 1}, "b": {"$value": 2}},
				"g": {"a": {"$value": 10}, "b": {"$value": 2}}
			}`,
		},
		{
			name: "extends merges nested groups",
			doc: `{
				"base": {"sub": {"a": {"$value": 1}, "b": {"$value": 2}}},
				"g": {"$extends": "{base}", "sub": {"b": {"$value": 20}, "c": {"$value": 3}}}
			}`,
			want: `{
				"base": {"sub": {"a": {"$value": 1}, "b": {"$value": 2}}},
				"g": {"sub": {"a": {"$value": 1}, "b": {"$value": 20}, "c": {"$value": 3}}}
			}`,
		},
		{
			name: "extends chain accumulates",
			doc: `{
				"g1": {"$extends": "{g2}", "a": {"$value": 1}},
				"g2": {"$extends": "{g3}", "b": {"$value": 2}},
				"g3": {"c": {"$value": 3}}
			}`,
			want: `{
				"g1": {"a": {"$value": 1}, "b": {"$value": 2}, "c": {"$value": 3}},
				"g2": {"b": {"$value": 2}, "c": {"$value": 3}},
				"g3": {"c": {"$value": 3}}
			}`,
		},
		{
			name: "sibling extends of one base",
			doc: `{
				"base": {"a": {"$value": 1}},
				"g1": {"$extends": "{base}"},
				"g2": {"$extends": "{base}"}
			}`,
			want: `{
				"base": {"a": {"$value": 1}},
				"g1": {"a": {"$value": 1}},
				"g2": {"a": {"$value": 1}}
			}`,
		},
		{
			name: "alias into extended group",
			doc: `{
				"a": {"$value": "{g.x}"},
				"base": {"x": {"$type": "t", "$value": 5}},
				"g": {"$extends": "{base}"}
			}`,
			want: `{
				"a": {"$type": "t", "$value": 5},
				"base": {"x": {"$type": "t", "$value": 5}},
				"g": {"x": {"$type": "t", "$value": 5}}
			}`,
		},
		{
			name: "references inside extended copies resolve",
			doc: `{
				"base": {"x": {"$value": "{c}"}},
				"c": {"$type": "t", "$value": 7},
				"g": {"$extends": "{base}"}
			}`,
			want: `{
				"base": {"x": {"$type": "t", "$value": 7}},
				"c": {"$type": "t", "$value": 7},
				"g": {"x": {"$type": "t", "$value": 7}}
			}`,
		},
		{
			name:   "cycle between aliases",
			doc:    `{"a": {"$value": "{b}"}, "b": {"$value": "{a}"}}`,
			errMsg: "cyclic reference: {b} -> {a} -> {b}",
		},
		{
			name:   "self cycle",
			doc:    `{"a": {"$value": "{a}"}}`,
			errMsg: "cyclic reference: {a} -> {a}",
		},
		{
			name:   "cycle through pointer",
			doc:    `{"a": {"$ref": "#/b/$value"}, "b": {"$value": "{a}"}}`,
			errMsg: "cyclic reference: #/b/$value -> {a} -> #/b/$value",
		},
		{
			name:   "extends cycle",
			doc:    `{"g1": {"$extends": "{g2}"}, "g2": {"$extends": "{g1}"}}`,
			errMsg: "cyclic reference: g2 -> g1 -> g2",
		},
		{
			name:   "extends cycle through child of base",
			doc:    `{"base": {"k": {"$extends": "{g}"}}, "g": {"$extends": "{base}"}}`,
			errMsg: "cyclic reference: g -> base -> g",
		},
		{
			name: "extends cycle through child of chained base",
			doc: `{
				"g1": {"$extends": "{g2}"},
				"g2": {"c": {"$extends": "{g3}"}},
				"g3": {"$extends": "{g1}"}
			}`,
			errMsg: "cyclic reference: g2 -> g3 -> g1 -> g2",
		},
		{
			name:  "value and ref are exclusive",
			doc:   `{"a": {"$ref": "#/b/$value", "$value": 1}, "b": {"$value": 2}}`,
			errIs: ErrValueAndRef,
		},
		{
			name:  "alias to group",
			doc:   `{"a": {"$value": "{g}"}, "g": {"x": {"$value": 1}}}`,
			errIs: ErrNotAToken,
		},
		{
			name:  "alias to nothing",
			doc:   `{"a": {"$value": "{missing.token}"}}`,
			errIs: ErrNotAToken,
		},
		{
			name:   "pointer to token object",
			doc:    `{"a": {"$ref": "#/b"}, "b": {"$value": 2}}`,
			errIs:  ErrAmbiguousPointer,
			errMsg: `token a: pointer "#/b"`,
		},
		{
			name:  "pointer to nothing",
			doc:   `{"a": {"$ref": "#/missing/$value"}}`,
			errIs: ErrUnresolvable,
		},
		{
			name:  "pointer without separator",
			doc:   `{"a": {"$ref": "#missing"}}`,
			errIs: ErrUnresolvable,
		},
		{
			name:   "extends unresolvable",
			doc:    `{"g": {"$extends": "{missing}"}}`,
			errIs:  ErrUnresolvable,
			errMsg: "group g:",
		},
		{
			name:  "extends points at token",
			doc:   `{"b": {"$value": 1}, "g": {"$extends": "{b}"}}`,
			errIs: ErrExtendsTarget,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := mustParse(t, tc.doc)
			orig := doc.Clone()
			got, err := Resolve(doc)
			if tc.errIs != nil || tc.errMsg != "" {
				if err == nil {
					t.Fatalf("expected error, got resolved document")
				}
				if tc.errIs != nil && !errors.Is(err, tc.errIs) {
					t.Errorf("error %q does not match %v", err, tc.errIs)
				}
				if tc.errMsg != "" && !strings.Contains(err.Error(), tc.errMsg) {
					t.Errorf("error %q does not contain %q", err, tc.errMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if !ir.Equal(doc, orig) {
				t.Errorf("input document was modified")
			}
			want := mustParse(t, tc.want)
			if !ir.Equal(got, want) {
				t.Errorf("# got\n%s# want\n%s", encode.MustString(got), encode.MustString(want))
			}
			again, err := Resolve(got)
			if err != nil {
				t.Fatalf("re-resolve: %v", err)
			}
			if !ir.Equal(again, got) {
				t.Errorf("resolution is not idempotent:\n%s", encode.MustString(again))
			}
		})
	}
}

func TestResolveCycleChain(t *testing.T) {
	doc := mustParse(t, `{
		"a": {"$value": "{b}"},
		"b": {"$value": "{c}"},
		"c": {"$value": "{a}"}
	}`)
	_, err := Resolve(doc)
	if err == nil {
		t.Fatal("expected cycle error")
	}
	var cyc *CycleError
	if !errors.As(err, &cyc) {
		t.Fatalf("error %q is not a CycleError", err)
	}
	want := []string{"{b}", "{c}", "{a}", "{b}"}
	if len(cyc.Chain) != len(want) {
		t.Fatalf("chain %v, want %v", cyc.Chain, want)
	}
	for i := range want {
		if cyc.Chain[i] != want[i] {
			t.Fatalf("chain %v, want %v", cyc.Chain, want)
		}
	}
}

func TestResolveRootMustBeObject(t *testing.T) {
	for _, doc := range []string{`[1, 2]`, `"x"`, `42`} {
		n := mustParse(t, doc)
		if _, err := Resolve(n); err == nil {
			t.Errorf("Resolve(%s): expected error", doc)
		}
	}
	if _, err := Resolve(nil); err == nil {
		t.Error("Resolve(nil): expected error")
	}
}
