package dtcg

import (
	"strings"
	"testing"

	"github.com/dtcg-format/go-dtcg/encode"
	"github.com/dtcg-format/go-dtcg/libdiff"
	"github.com/dtcg-format/go-dtcg/parse"
)

type diffTest struct {
	a    string
	b    string
	diff string
}

var diffTests = []diffTest{
	{
		a: `{
			"f1": "a",
			"f2": "a",
			"f3": "a",
			"f4": "a",
			"f5": {"f5a": 1, "f5b": 2}
		}`,
		b: `{
			"f0": "b",
			"f1": "b",
			"f2": "b",
			"f5": {"f5a": 1}
		}`,
		diff: `{"f0":{"$op":"insert","$to":"b"},` +
			`"f1":{"$from":"a","$op":"replace","$to":"b"},` +
			`"f2":{"$from":"a","$op":"replace","$to":"b"},` +
			`"f3":{"$from":"a","$op":"delete"},` +
			`"f4":{"$from":"a","$op":"delete"},` +
			`"f5":{"f5b":{"$from":2,"$op":"delete"}}}`,
	},
	{
		a: `[1, 2, 3, 3, 3, 7, 8]`,
		b: `[2, 3, 3, 3, 4, 7, 9]`,
		diff: `{"0":{"$from":1,"$op":"delete"},` +
			`"5":{"$op":"insert","$to":4},` +
			`"7":{"$from":8,"$op":"replace","$to":9}}`,
	},
	{
		a:    `["a", "b", "x", "c"]`,
		b:    `["a", "b", "y", "c"]`,
		diff: `{"2":{"$from":"x","$op":"replace","$to":"y"}}`,
	},
	{
		a: `{"colors": {"blue": {"$type": "color", "$value": "#0000ff"}}}`,
		b: `{"colors": {"blue": {"$type": "color", "$value": "#0000fe"}}}`,
		diff: `{"colors":{"blue":{"$value":` +
			`{"$from":"#0000ff","$op":"replace","$to":"#0000fe"}}}}`,
	},
	{
		a:    `{"a": 1}`,
		b:    `[1]`,
		diff: `{"$from":{"a":1},"$op":"replace","$to":[1]}`,
	},
	{
		a:    `{"a": [1, {"b": true}], "c": null}`,
		b:    `{"a": [1, {"b": true}], "c": null}`,
		diff: ``,
	},
}

func TestDiff(t *testing.T) {
	for i := range diffTests {
		diffTest := &diffTests[i]
		a, err := parse.Parse([]byte(diffTest.a))
		if err != nil {
			t.Error(err)
			continue
		}
		b, err := parse.Parse([]byte(diffTest.b))
		if err != nil {
			t.Error(err)
			continue
		}

		diff := Diff(a, b)
		if diff == nil {
			if diffTest.diff == "" {
				continue
			}
			t.Errorf("got no diff, expected\n%s\n", diffTest.diff)
			continue
		}
		got := strings.TrimSpace(encode.MustString(diff, encode.Indent(0)))
		want := strings.TrimSpace(diffTest.diff)
		if got != want {
			t.Errorf("# got\n%q\n---\n# want\n%q\n", got, want)
		}
		rev, err := libdiff.Reverse(diff)
		if err != nil {
			t.Error(err)
			continue
		}
		revrev, err := libdiff.Reverse(rev)
		if err != nil {
			t.Error(err)
			continue
		}
		want = strings.TrimSpace(encode.MustString(revrev, encode.Indent(0)))
		if got != want {
			t.Errorf("# orig diff\n%s\n---\n# rev diff\n%s\n---\n# rev rev\n%s\n",
				encode.MustString(diff), encode.MustString(rev), encode.MustString(revrev))
		}
	}
}

func TestApplyDiff(t *testing.T) {
	for i := range diffTests {
		diffTest := &diffTests[i]
		a, err := parse.Parse([]byte(diffTest.a))
		if err != nil {
			t.Error(err)
			continue
		}
		b, err := parse.Parse([]byte(diffTest.b))
		if err != nil {
			t.Error(err)
			continue
		}

		diff := Diff(a, b)
		applied, err := ApplyDiff(a, diff)
		if err != nil {
			t.Errorf("test %d: apply: %v", i, err)
			continue
		}
		got := strings.TrimSpace(encode.MustString(applied, encode.Indent(0)))
		want := strings.TrimSpace(encode.MustString(b, encode.Indent(0)))
		if got != want {
			t.Errorf("test %d: # applied\n%s\n---\n# want\n%s\n", i, got, want)
		}
		if diff == nil {
			continue
		}
		rev, err := libdiff.Reverse(diff)
		if err != nil {
			t.Error(err)
			continue
		}
		back, err := ApplyDiff(b, rev)
		if err != nil {
			t.Errorf("test %d: apply reversed: %v", i, err)
			continue
		}
		got = strings.TrimSpace(encode.MustString(back, encode.Indent(0)))
		want = strings.TrimSpace(encode.MustString(a, encode.Indent(0)))
		if got != want {
			t.Errorf("test %d: # reverse applied\n%s\n---\n# want\n%s\n", i, got, want)
		}
	}
}
