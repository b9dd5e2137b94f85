package vanilla_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-formtool/pkg/forms"
	"github.com/goliatone/go-formtool/pkg/styles/vanilla"
)

func renderHTML(t *testing.T, node forms.Node) string {
	t.Helper()
	var sb strings.Builder
	if err := node.Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	return sb.String()
}

func TestElementEscapesAttributesAndText(t *testing.T) {
	el := vanilla.NewElement("div").
		Attr("title", `a"b<c`).
		Text("<script>alert(1)</script>")

	got := renderHTML(t, el)
	want := `<div title="a&#34;b&lt;c">&lt;script&gt;alert(1)&lt;/script&gt;</div>`
	if got != want {
		t.Fatalf("markup mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestElementVoidTagHasNoClosingTag(t *testing.T) {
	el := vanilla.NewElement("input").Attr("type", "text").Flag("checked")

	got := renderHTML(t, el)
	want := `<input type="text" checked>`
	if got != want {
		t.Fatalf("markup mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestElementAttrReplacesExistingValue(t *testing.T) {
	el := vanilla.NewElement("span").Attr("id", "a").Attr("id", "b")
	if got, _ := el.AttrValue("id"); got != "b" {
		t.Fatalf("id attr mismatch: got %q want %q", got, "b")
	}
	if got := renderHTML(t, el); got != `<span id="b"></span>` {
		t.Fatalf("markup mismatch: %q", got)
	}
}

func TestElementClassAccumulates(t *testing.T) {
	el := vanilla.NewElement("div").Class("a").Class("", "b")
	if got, _ := el.AttrValue("class"); got != "a b" {
		t.Fatalf("class mismatch: got %q want %q", got, "a b")
	}
}

func TestElementFindWalksSubtree(t *testing.T) {
	inner := vanilla.NewElement("input").Attr("name", "email")
	root := vanilla.NewElement("form").
		Child(vanilla.NewElement("div").Child(inner)).
		Child(vanilla.NewElement("p").Attr("name", "other"))

	if got := root.FindByName("email"); got != inner {
		t.Fatal("FindByName did not return the nested input")
	}
	if got := root.FindByName("missing"); got != nil {
		t.Fatal("FindByName should return nil for an unknown name")
	}

	all := root.FindAll(func(el *vanilla.Element) bool {
		_, ok := el.AttrValue("name")
		return ok
	})
	if len(all) != 2 {
		t.Fatalf("FindAll matched %d elements, want 2", len(all))
	}
}

func TestElementFireDispatchesRegisteredHandlerOnly(t *testing.T) {
	var got []string
	el := vanilla.NewElement("input").On("input", func(value string) {
		got = append(got, value)
	})

	if !el.Fire("input", "a") {
		t.Fatal("Fire should report a registered handler")
	}
	if el.Fire("change", "b") {
		t.Fatal("Fire should not dispatch an unregistered event")
	}
	if len(got) != 1 || got[0] != "a" {
		t.Fatalf("handler calls mismatch: %v", got)
	}
}
