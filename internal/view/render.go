package view

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Render はノードツリーをHTMLとして書き出します
func Render(w io.Writer, n *Node) error {
	if n == nil {
		return nil
	}
	switch n.kind {
	case fragmentNode:
		for _, c := range n.Children {
			if err := Render(w, c); err != nil {
				return err
			}
		}
		return nil
	default:
		hn, err := toHTML(n)
		if err != nil {
			return err
		}
		return html.Render(w, hn)
	}
}

func toHTML(n *Node) (*html.Node, error) {
	var hn *html.Node
	switch n.kind {
	case textNode:
		return &html.Node{Type: html.TextNode, Data: n.Text}, nil
	case documentNode:
		hn = &html.Node{Type: html.DocumentNode}
		hn.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	case elementNode:
		if n.Tag == "" {
			return nil, fmt.Errorf("view: element without tag")
		}
		hn = &html.Node{
			Type:     html.ElementNode,
			Data:     n.Tag,
			DataAtom: atom.Lookup([]byte(n.Tag)),
		}
		for _, a := range n.attributes() {
			hn.Attr = append(hn.Attr, html.Attribute{Key: a.Key, Val: a.Val})
		}
	case fragmentNode:
		// 要素の子に現れた Fragment は親に展開する
		return nil, nil
	}

	if err := appendChildren(hn, n.Children); err != nil {
		return nil, err
	}
	return hn, nil
}

func appendChildren(parent *html.Node, children []*Node) error {
	for _, c := range children {
		if c.kind == fragmentNode {
			if err := appendChildren(parent, c.Children); err != nil {
				return err
			}
			continue
		}
		child, err := toHTML(c)
		if err != nil {
			return err
		}
		parent.AppendChild(child)
	}
	return nil
}
