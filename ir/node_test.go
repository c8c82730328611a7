package ir

import (
	"testing"
)

func TestFromMapSortsKeys(t *testing.T) {
	n := FromMap(map[string]*Node{
		"b": FromInt(2),
		"a": FromInt(1),
		"c": FromInt(3),
	})
	want := []string{"a", "b", "c"}
	got := Keys(n)
	if len(got) != len(want) {
		t.Fatalf("got %d keys, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGet(t *testing.T) {
	n := FromMap(map[string]*Node{
		"$value": FromString("#0066cc"),
		"$type":  FromString("color"),
	})
	if v := Get(n, "$value"); v == nil || v.String != "#0066cc" {
		t.Errorf("Get($value) = %v", v)
	}
	if v := Get(n, "$missing"); v != nil {
		t.Errorf("Get($missing) = %v, want nil", v)
	}
	if v := Get(nil, "x"); v != nil {
		t.Errorf("Get(nil) = %v, want nil", v)
	}
	if v := Get(FromString("s"), "x"); v != nil {
		t.Errorf("Get(scalar) = %v, want nil", v)
	}
}

func TestSet(t *testing.T) {
	n := FromMap(map[string]*Node{
		"$value": FromString("16px"),
	})
	Set(n, "$type", FromString("dimension"))
	if v := Get(n, "$type"); v == nil || v.String != "dimension" {
		t.Fatalf("Set append failed: %v", v)
	}
	Set(n, "$type", FromString("duration"))
	if v := Get(n, "$type"); v == nil || v.String != "duration" {
		t.Fatalf("Set replace failed: %v", v)
	}
	if len(n.Fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(n.Fields))
	}
}

func TestCloneIndependence(t *testing.T) {
	orig := FromMap(map[string]*Node{
		"colors": FromMap(map[string]*Node{
			"blue": FromMap(map[string]*Node{
				"$value": FromString("#0066cc"),
			}),
		}),
	})
	cp := orig.Clone()
	if !Equal(orig, cp) {
		t.Fatal("clone differs from original")
	}
	Set(Descend(cp, []string{"colors", "blue"}), "$value", FromString("#ffffff"))
	if v := Descend(orig, []string{"colors", "blue", "$value"}); v.String != "#0066cc" {
		t.Errorf("mutating clone leaked into original: %q", v.String)
	}
}

func TestDescend(t *testing.T) {
	doc := FromMap(map[string]*Node{
		"colors": FromMap(map[string]*Node{
			"blue": FromMap(map[string]*Node{
				"$type": FromString("color"),
				"$value": FromMap(map[string]*Node{
					"components": FromSlice([]*Node{
						FromInt(0),
						FromFloat(0.4),
						FromFloat(0.8),
					}),
				}),
			}),
		}),
	})
	tests := []struct {
		name string
		segs []string
		want func(*Node) bool
	}{
		{"root", nil, func(n *Node) bool { return n == doc }},
		{"group", []string{"colors"}, func(n *Node) bool { return n != nil && n.Type == ObjectType }},
		{"scalar", []string{"colors", "blue", "$type"}, func(n *Node) bool { return n != nil && n.String == "color" }},
		{"array index", []string{"colors", "blue", "$value", "components", "1"}, func(n *Node) bool {
			return n != nil && n.Float64 != nil && *n.Float64 == 0.4
		}},
		{"missing key", []string{"colors", "red"}, func(n *Node) bool { return n == nil }},
		{"through scalar", []string{"colors", "blue", "$type", "x"}, func(n *Node) bool { return n == nil }},
		{"bad index", []string{"colors", "blue", "$value", "components", "9"}, func(n *Node) bool { return n == nil }},
		{"non-numeric index", []string{"colors", "blue", "$value", "components", "x"}, func(n *Node) bool { return n == nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Descend(doc, tt.segs); !tt.want(got) {
				t.Errorf("Descend(%v) = %v", tt.segs, got)
			}
		})
	}
}

func TestPath(t *testing.T) {
	doc := FromMap(map[string]*Node{
		"colors": FromMap(map[string]*Node{
			"blue": FromMap(map[string]*Node{
				"$value": FromSlice([]*Node{FromInt(0)}),
			}),
		}),
	})
	n := Descend(doc, []string{"colors", "blue", "$value", "0"})
	want := "$.colors.blue.'$value'[0]"
	if got := n.Path(); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}
