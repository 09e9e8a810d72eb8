// Package view は画面を構造化されたノードツリーとして組み立て、HTMLに描画します。
//
// イベントは Binding として data-* 属性に落とし、インラインスクリプトは一切生成しません。
// 属性を解釈するのは Script で読み込む外部のバインダです。
// テキストと属性値のエスケープは golang.org/x/net/html に任せます。
package view

import (
	"sort"
	"strings"
)

type kind int

const (
	elementNode kind = iota
	textNode
	fragmentNode
	documentNode
)

// Attr は要素の属性
type Attr struct {
	Key string
	Val string
}

// Binding は要素に結びつけるイベントとアクション
type Binding struct {
	Event  string
	Action string
	Args   map[string]string
}

// Node はビューツリーの1ノード
type Node struct {
	kind     kind
	Tag      string
	Text     string
	Attrs    []Attr
	Bindings []Binding
	Children []*Node
}

// El は要素ノードを作ります
func El(tag string, children ...*Node) *Node {
	return (&Node{kind: elementNode, Tag: tag}).Append(children...)
}

// Text はテキストノードを作ります
func Text(s string) *Node {
	return &Node{kind: textNode, Text: s}
}

// Fragment は子ノードだけを並べて描画するノードを作ります
func Fragment(children ...*Node) *Node {
	return (&Node{kind: fragmentNode}).Append(children...)
}

// Document は <!DOCTYPE html> 付きの完全なページを作ります
func Document(title string, body ...*Node) *Node {
	head := El("head",
		El("meta").Attr("charset", "utf-8"),
		El("meta").Attr("name", "viewport").Attr("content", "width=device-width, initial-scale=1"),
		El("title", Text(title)),
	)
	return (&Node{kind: documentNode}).Append(
		El("html", head, El("body", body...)).Attr("lang", "en"),
	)
}

// Script は外部スクリプトを読み込む要素を作ります。本文は持たせない
func Script(src string) *Node {
	return El("script").Attr("src", src).Attr("defer", "")
}

// Append は nil を除いて子ノードを追加します
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Attr は属性を追加します
func (n *Node) Attr(key, val string) *Node {
	n.Attrs = append(n.Attrs, Attr{Key: key, Val: val})
	return n
}

// ID は id 属性を設定します
func (n *Node) ID(id string) *Node {
	return n.Attr("id", id)
}

// Class は class 属性を設定します
func (n *Node) Class(class string) *Node {
	return n.Attr("class", class)
}

// On はイベントとアクションを結びつけます
func (n *Node) On(event, action string, args map[string]string) *Node {
	n.Bindings = append(n.Bindings, Binding{Event: event, Action: action, Args: args})
	return n
}

// GetAttr は属性値を返します
func (n *Node) GetAttr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Find は深さ優先で最初に条件を満たすノードを返します
func (n *Node) Find(match func(*Node) bool) *Node {
	if n == nil {
		return nil
	}
	if match(n) {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// FindAll は条件を満たすノードをすべて返します
func (n *Node) FindAll(match func(*Node) bool) []*Node {
	var found []*Node
	n.walk(func(c *Node) {
		if match(c) {
			found = append(found, c)
		}
	})
	return found
}

// ByID は id 属性で探す条件を返します
func ByID(id string) func(*Node) bool {
	return func(n *Node) bool {
		v, ok := n.GetAttr("id")
		return ok && v == id
	}
}

// ByClass は class 属性に class を含むノードを探す条件を返します
func ByClass(class string) func(*Node) bool {
	return func(n *Node) bool {
		v, ok := n.GetAttr("class")
		if !ok {
			return false
		}
		for _, c := range strings.Fields(v) {
			if c == class {
				return true
			}
		}
		return false
	}
}

// TextContent は配下のテキストを連結して返します
func (n *Node) TextContent() string {
	var b strings.Builder
	n.walk(func(c *Node) {
		if c.kind == textNode {
			b.WriteString(c.Text)
		}
	})
	return b.String()
}

func (n *Node) walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		c.walk(fn)
	}
}

// attributes はバインディングを data-* 属性に展開した属性列を返します
func (n *Node) attributes() []Attr {
	attrs := make([]Attr, 0, len(n.Attrs)+len(n.Bindings)*2)
	attrs = append(attrs, n.Attrs...)
	for _, b := range n.Bindings {
		attrs = append(attrs, Attr{Key: "data-on-" + b.Event, Val: b.Action})
		keys := make([]string, 0, len(b.Args))
		for k := range b.Args {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			attrs = append(attrs, Attr{Key: "data-arg-" + k, Val: b.Args[k]})
		}
	}
	return attrs
}
