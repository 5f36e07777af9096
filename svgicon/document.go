package svgicon

import (
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html/charset"
)

// node is an element of the parsed document.
type node struct {
	name     string
	path     string // such as /svg[1]/g[2]/rect[3]
	attrs    []xml.Attr
	children []*node
	text     string // character data, only kept for <style>
}

// attr returns the value of the attribute with the given local name,
// preferring an attribute without namespace.
func (n *node) attr(name string) (string, bool) {
	var (
		value string
		found bool
	)
	for _, a := range n.attrs {
		if a.Name.Local != name {
			continue
		}
		if a.Name.Space == "" {
			return a.Value, true
		}
		if !found {
			value, found = a.Value, true
		}
	}
	return value, found
}

// href resolves href, then the legacy xlink:href.
func (n *node) href() string {
	v, _ := n.attr("href")
	return strings.TrimSpace(v)
}

// document is the element tree of one SVG file,
// with the lookups shared by the whole parse.
type document struct {
	root    *node
	ids     map[string]*node // first element with a given id
	classes classRules
	styles  []*node
}

// classRules maps a class name to the declarations
// of the `.name { ... }` rules, in document order.
type classRules map[string][]*css.Declaration

// readDocument builds the element tree.
// It supports documents in non UTF-8 encodings.
func readDocument(stream io.Reader) (*document, error) {
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	decoder.Entity = xml.HTMLEntity

	doc := &document{ids: make(map[string]*node), classes: make(classRules)}
	var (
		stack []*node
		// sibling counts per tag name, one map per open element
		counts = []map[string]int{make(map[string]int)}
	)
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		// Inspect the type of the XML token
		switch se := t.(type) {
		case xml.StartElement:
			name := se.Name.Local
			siblings := counts[len(counts)-1]
			siblings[name]++
			parentPath := ""
			if len(stack) > 0 {
				parentPath = stack[len(stack)-1].path
			}
			n := &node{
				name:  name,
				path:  parentPath + "/" + name + "[" + strconv.Itoa(siblings[name]) + "]",
				attrs: append([]xml.Attr(nil), se.Attr...),
			}
			if len(stack) == 0 {
				if doc.root != nil {
					return nil, errors.New("multiple root elements")
				}
				doc.root = n
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, n)
			}
			if id, ok := n.attr("id"); ok && id != "" {
				if _, seen := doc.ids[id]; !seen {
					doc.ids[id] = n
				}
			}
			if name == "style" {
				doc.styles = append(doc.styles, n)
			}
			stack = append(stack, n)
			counts = append(counts, make(map[string]int))
		case xml.EndElement:
			stack = stack[:len(stack)-1]
			counts = counts[:len(counts)-1]
		case xml.CharData:
			if len(stack) > 0 && stack[len(stack)-1].name == "style" {
				stack[len(stack)-1].text += string(se)
			}
		}
	}
	if doc.root == nil {
		return nil, ErrNoSVG
	}
	return doc, nil
}

// isClassSelector accepts simple selectors such as `.name`
func isClassSelector(sel string) bool {
	if len(sel) < 2 || sel[0] != '.' {
		return false
	}
	for _, r := range sel[1:] {
		if !(r == '-' || r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9') || r > 127) {
			return false
		}
	}
	return true
}

// addStylesheet collects the class rules of a <style> element.
// Other selectors and at-rules are ignored.
func (rules classRules) addStylesheet(text string) error {
	sheet, err := parser.Parse(text)
	if err != nil {
		return err
	}
	for _, r := range sheet.Rules {
		if r.Kind == css.AtRule {
			continue
		}
		for _, sel := range r.Selectors {
			sel = strings.TrimSpace(sel)
			if !isClassSelector(sel) {
				continue
			}
			rules[sel[1:]] = append(rules[sel[1:]], r.Declarations...)
		}
	}
	return nil
}
