package query

import (
	"strings"
	"testing"

	"github.com/dtcg-format/go-dtcg/ir"
	"github.com/dtcg-format/go-dtcg/parse"

	"github.com/google/go-cmp/cmp"
)

const queryDoc = `{
	"colors": {
		"$type": "color",
		"blue": {"$type": "color", "$value": "#00f"},
		"old": {
			"$deprecated": "use blue",
			"$description": "legacy accent",
			"$type": "color",
			"$value": "#00e"
		}
	},
	"space": {
		"gap": {"$type": "dimension", "$value": {"unit": "px", "size": 4}}
	},
	"pending": {"$value": 1}
}`

func mustDoc(t *testing.T, doc string) *ir.Node {
	t.Helper()
	n, err := parse.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return n
}

func TestFlatten(t *testing.T) {
	entries := Flatten(mustDoc(t, queryDoc))
	wantPaths := []string{"colors.blue", "colors.old", "pending", "space.gap"}
	if len(entries) != len(wantPaths) {
		t.Fatalf("got %d entries, want %d", len(entries), len(wantPaths))
	}
	for i, want := range wantPaths {
		if entries[i].Path != want {
			t.Errorf("entry %d path %q, want %q", i, entries[i].Path, want)
		}
	}
	old := entries[1]
	if !old.Deprecated {
		t.Error("colors.old should be deprecated")
	}
	if old.Description != "legacy accent" {
		t.Errorf("description %q", old.Description)
	}
	if entries[2].Type != "" {
		t.Errorf("pending type %q, want empty", entries[2].Type)
	}
	gap := entries[3]
	val, ok := gap.Value.(map[string]any)
	if !ok {
		t.Fatalf("gap value %T", gap.Value)
	}
	if val["unit"] != "px" {
		t.Errorf("gap unit %v", val["unit"])
	}
}

func TestSelect(t *testing.T) {
	doc := mustDoc(t, queryDoc)
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "by type",
			query: `type == "color"`,
			want:  []string{"colors.blue", "colors.old"},
		},
		{
			name:  "not deprecated",
			query: `type == "color" && !deprecated`,
			want:  []string{"colors.blue"},
		},
		{
			name:  "by path prefix",
			query: `path startsWith "space."`,
			want:  []string{"space.gap"},
		},
		{
			name:  "by path segment",
			query: `segment(path, 0) == "colors"`,
			want:  []string{"colors.blue", "colors.old"},
		},
		{
			name:  "by composite value",
			query: `type == "dimension" && value.unit == "px"`,
			want:  []string{"space.gap"},
		},
		{
			name:  "untyped tokens",
			query: `type == ""`,
			want:  []string{"pending"},
		},
		{
			name:  "nothing matches",
			query: `type == "nope"`,
			want:  nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entries, err := Select(doc, tc.query)
			if err != nil {
				t.Fatal(err)
			}
			var got []string
			for _, e := range entries {
				got = append(got, e.Path)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Select() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	if _, err := Compile(`type ==`); err == nil {
		t.Error("expected compile error for malformed expression")
	}
	if _, err := Compile(`1 + 2`); err == nil {
		t.Error("expected compile error for non-boolean expression")
	}
}

func TestQueryString(t *testing.T) {
	q, err := Compile(`deprecated`)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(q.String(), "deprecated") {
		t.Errorf("String() = %q", q.String())
	}
}
