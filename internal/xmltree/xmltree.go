// Package xmltree provides the minimal read-side document model the engine
// walks: named nodes with text and ordered children, plus slash-path
// selection. Document order is preserved everywhere; some interchange
// documents are order-significant (process steps, instructions).
package xmltree

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Node is one element of the parsed document tree.
type Node struct {
	Name     string
	Children []*Node

	text strings.Builder
}

// Text returns the node's accumulated character data, trimmed.
func (n *Node) Text() string {
	return strings.TrimSpace(n.text.String())
}

// Select returns the nodes reached by the slash-separated path of child tag
// names, in document order. An empty path selects the node itself.
func (n *Node) Select(path string) []*Node {
	if path == "" {
		return []*Node{n}
	}
	current := []*Node{n}
	for _, seg := range strings.Split(path, "/") {
		var next []*Node
		for _, c := range current {
			for _, child := range c.Children {
				if child.Name == seg {
					next = append(next, child)
				}
			}
		}
		current = next
	}
	return current
}

// First returns the first match of Select, or nil.
func (n *Node) First(path string) *Node {
	if matches := n.Select(path); len(matches) > 0 {
		return matches[0]
	}
	return nil
}

// charsetReader handles the encodings interchange documents actually
// declare. Many writers emit ISO-8859-1.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "utf-8", "us-ascii":
		return input, nil
	case "iso-8859-1", "latin1", "windows-1252":
		raw, err := io.ReadAll(input)
		if err != nil {
			return nil, err
		}
		var sb strings.Builder
		sb.Grow(len(raw))
		for _, b := range raw {
			sb.WriteRune(rune(b))
		}
		return strings.NewReader(sb.String()), nil
	default:
		return nil, fmt.Errorf("xmltree: unsupported document encoding %q", charset)
	}
}

// Parse builds the tree for a whole document and returns its root element.
func Parse(data []byte) (*Node, error) {
	dec := xml.NewDecoder(strings.NewReader(string(data)))
	dec.CharsetReader = charsetReader
	var stack []*Node
	var root *Node
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xmltree: malformed document: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			node := &Node{Name: t.Name.Local}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("xmltree: multiple root elements")
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("xmltree: document has no root element")
	}
	return root, nil
}
