package dtcg

import (
	"errors"
	"strings"
	"testing"

	"github.com/dtcg-format/go-dtcg/encode"
	"github.com/dtcg-format/go-dtcg/ir"
)

func TestPropagateTypes(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		want   string
		errIs  error
		errMsg string
	}{
		{
			name: "own type kept",
			doc:  `{"a": {"$type": "color", "$value": "#00f"}}`,
			want: `{"a": {"$type": "color", "$value": "#00f"}}`,
		},
		{
			name: "type inherited from group",
			doc: `{
				"colors": {
					"$type": "color",
					"blue": {"$value": "#00f"},
					"red": {"$value": "#f00"}
				}
			}`,
			want: `{
				"colors": {
					"$type": "color",
					"blue": {"$type": "color", "$value": "#00f"},
					"red": {"$type": "color", "$value": "#f00"}
				}
			}`,
		},
		{
			name: "nearest group wins",
			doc: `{
				"outer": {
					"$type": "t1",
					"inner": {
						"$type": "t2",
						"a": {"$value": 1}
					},
					"b": {"$value": 2}
				}
			}`,
			want: `{
				"outer": {
					"$type": "t1",
					"inner": {
						"$type": "t2",
						"a": {"$type": "t2", "$value": 1}
					},
					"b": {"$type": "t1", "$value": 2}
				}
			}`,
		},
		{
			name: "declared type beats inherited",
			doc: `{
				"colors": {
					"$type": "color",
					"blue": {"$type": "paint", "$value": "#00f"}
				}
			}`,
			want: `{
				"colors": {
					"$type": "color",
					"blue": {"$type": "paint", "$value": "#00f"}
				}
			}`,
		},
		{
			name: "metadata untouched",
			doc: `{
				"$description": "set",
				"g": {
					"$extensions": {"x": 1},
					"$type": "t",
					"a": {"$deprecated": true, "$value": 1}
				}
			}`,
			want: `{
				"$description": "set",
				"g": {
					"$extensions": {"x": 1},
					"$type": "t",
					"a": {"$deprecated": true, "$type": "t", "$value": 1}
				}
			}`,
		},
		{
			name:   "missing type",
			doc:    `{"theme": {"primary": {"$value": 1}}}`,
			errIs:  ErrMissingType,
			errMsg: "token theme.primary has no $type and no inherited $type",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := mustParse(t, tc.doc)
			orig := doc.Clone()
			got, err := PropagateTypes(doc)
			if tc.errIs != nil || tc.errMsg != "" {
				if err == nil {
					t.Fatalf("expected error, got\n%s", encode.MustString(got))
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
				t.Fatal(err)
			}
			if !ir.Equal(doc, orig) {
				t.Errorf("input document was modified")
			}
			want := mustParse(t, tc.want)
			if !ir.Equal(got, want) {
				t.Errorf("# got\n%s# want\n%s", encode.MustString(got), encode.MustString(want))
			}
		})
	}
}
