package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func render(t *testing.T, n *Node) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Render(&buf, n); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func TestRender_Element(t *testing.T) {
	n := El("div",
		El("span", Text("いぬ")).Class("word-bangla"),
		El("span", Text("dog")),
	).ID("card")

	got := render(t, n)
	want := `<div id="card"><span class="word-bangla">いぬ</span><span>dog</span></div>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_EscapesTextAndAttributes(t *testing.T) {
	word := `O'Brien"><script>alert(1)</script>`
	n := El("button", Text(word)).On("click", "show-examples", map[string]string{"word": word})

	got := render(t, n)
	if strings.Contains(got, "<script>") {
		t.Errorf("Render output contains raw script tag: %s", got)
	}
	if strings.Contains(got, "onclick") {
		t.Errorf("Render output contains inline handler: %s", got)
	}
	if !strings.Contains(got, `data-on-click="show-examples"`) {
		t.Errorf("Render output missing binding: %s", got)
	}
	if !strings.Contains(got, `data-arg-word="O&#39;Brien&#34;&gt;&lt;script&gt;alert(1)&lt;/script&gt;"`) {
		t.Errorf("Render output did not escape argument: %s", got)
	}
}

func TestRender_BindingArgsAreSorted(t *testing.T) {
	n := El("span").On("click", "speak", map[string]string{"text": "ねこ", "lang": "ja-JP", "rate": "0.9"})

	got := render(t, n)
	want := `<span data-on-click="speak" data-arg-lang="ja-JP" data-arg-rate="0.9" data-arg-text="ねこ"></span>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_FragmentsAreFlattened(t *testing.T) {
	n := Fragment(
		El("p", Text("a")),
		El("div", Fragment(Text("b"), El("strong", Text("c")))),
	)

	got := render(t, n)
	want := `<p>a</p><div>b<strong>c</strong></div>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_Document(t *testing.T) {
	got := render(t, Document("Study", El("main").ID("study-app-container")))

	if !strings.HasPrefix(got, "<!DOCTYPE html>") {
		t.Errorf("Render document does not start with doctype: %s", got)
	}
	for _, part := range []string{`<title>Study</title>`, `<meta charset="utf-8"/>`, `<main id="study-app-container"></main>`} {
		if !strings.Contains(got, part) {
			t.Errorf("Render document missing %q: %s", part, got)
		}
	}
}

func TestRender_Script(t *testing.T) {
	got := render(t, Document("Study", El("main"), Script("/static/app.js")))

	want := `<body><main></main><script src="/static/app.js" defer=""></script></body>`
	if !strings.Contains(got, want) {
		t.Errorf("Render document missing %q: %s", want, got)
	}
}

func TestNode_FindAndTextContent(t *testing.T) {
	tree := El("div",
		El("p", Text("1. "), El("strong", Text("ねこ")), Text("がいます")).Class("sentence-japanese"),
		El("p", Text("(বিড়াল আছে)")).Class("sentence-bangla"),
	)

	p := tree.Find(ByClass("sentence-japanese"))
	if p == nil {
		t.Fatal("Find returned nil")
	}
	if diff := cmp.Diff("1. ねこがいます", p.TextContent()); diff != "" {
		t.Errorf("TextContent mismatch (-want +got):\n%s", diff)
	}
	strongs := tree.FindAll(func(n *Node) bool { return n.Tag == "strong" })
	if len(strongs) != 1 {
		t.Errorf("FindAll(strong) = %d nodes, want 1", len(strongs))
	}
	if tree.Find(ByID("missing")) != nil {
		t.Error("Find(ByID(missing)) should be nil")
	}
}
