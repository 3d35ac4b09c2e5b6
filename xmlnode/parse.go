package xmlnode

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// SyntaxError reports malformed XML with a position hint.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("xml syntax error on line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("xml syntax error: %s", e.Msg)
}

// Parse builds a Node tree from raw XML text.
func Parse(data []byte) (*Node, error) {
	return ParseReader(bytes.NewReader(data))
}

// ParseReader builds a Node tree from a stream of XML text. A byte-order
// mark selects UTF-8 or UTF-16 decoding up front; an encoding declared in
// the prolog is honored for everything else.
func ParseReader(r io.Reader) (*Node, error) {
	// The stdlib tokenizer cannot read a UTF-16 prolog, so BOM-carrying
	// input is converted to UTF-8 before it sees a single byte.
	dec := xml.NewDecoder(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	dec.CharsetReader = charsetReader
	dec.Entity = xml.HTMLEntity

	b := treeBuilder{}
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			if b.root == nil {
				return nil, &SyntaxError{Msg: "no root element"}
			}
			return b.root, nil
		}
		if err != nil {
			var se *xml.SyntaxError
			if errors.As(err, &se) {
				return nil, &SyntaxError{Line: se.Line, Msg: se.Msg}
			}
			return nil, fmt.Errorf("read xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			b.open(t)
		case xml.EndElement:
			if done := b.close(); done {
				// Anything after the document element is ignored.
				return b.root, nil
			}
		case xml.CharData:
			b.text(t)
		}
	}
}

// charsetReader maps declared encodings onto the stream the tokenizer reads.
// UTF-16 labels are identity because the BOM layer has already converted
// those documents; every other label goes through the charset tables.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "", "utf-8", "utf8", "utf-16", "utf-16le", "utf-16be":
		return input, nil
	}
	return charset.NewReaderLabel(label, input)
}

// treeBuilder assembles Nodes from decoder tokens while tracking namespace
// declarations so element and attribute names keep their source prefixes.
// The stdlib decoder reports resolved namespace URLs, not prefixes, so each
// open element pushes its xmlns declarations and names are mapped back.
type treeBuilder struct {
	root   *Node
	stack  []*Node
	scopes []map[string]string // prefix -> URL, one frame per open element
}

func (b *treeBuilder) open(t xml.StartElement) {
	var decls map[string]string
	for _, a := range t.Attr {
		prefix, ok := xmlnsDecl(a)
		if !ok {
			continue
		}
		if decls == nil {
			decls = make(map[string]string, 2)
		}
		decls[prefix] = a.Value
	}
	b.scopes = append(b.scopes, decls)

	n := &Node{Name: b.elementName(t.Name)}
	if len(t.Attr) > 0 {
		n.Attrs = make(map[string]string, len(t.Attr))
		for _, a := range t.Attr {
			n.Attrs[b.attrName(a.Name)] = a.Value
		}
	}

	if len(b.stack) == 0 {
		if b.root == nil {
			b.root = n
		}
	} else {
		parent := b.stack[len(b.stack)-1]
		parent.Children = append(parent.Children, n)
	}
	b.stack = append(b.stack, n)
}

func (b *treeBuilder) close() (done bool) {
	if len(b.stack) > 0 {
		b.stack = b.stack[:len(b.stack)-1]
	}
	if len(b.scopes) > 0 {
		b.scopes = b.scopes[:len(b.scopes)-1]
	}
	return len(b.stack) == 0 && b.root != nil
}

func (b *treeBuilder) text(t xml.CharData) {
	if len(b.stack) == 0 {
		return
	}
	n := b.stack[len(b.stack)-1]
	n.Text += string(t)
}

// xmlnsDecl reports whether an attribute declares a namespace, returning the
// declared prefix ("" for the default namespace).
func xmlnsDecl(a xml.Attr) (string, bool) {
	if a.Name.Space == "xmlns" {
		return a.Name.Local, true
	}
	if a.Name.Space == "" && a.Name.Local == "xmlns" {
		return "", true
	}
	return "", false
}

func (b *treeBuilder) elementName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	prefix, ok := b.prefixFor(name.Space, true)
	if !ok {
		// The decoder leaves unbound prefixes in Space verbatim.
		prefix = name.Space
	}
	if prefix == "" {
		return name.Local
	}
	return prefix + ":" + name.Local
}

func (b *treeBuilder) attrName(name xml.Name) string {
	switch {
	case name.Space == "":
		return name.Local
	case name.Space == "xmlns":
		return "xmlns:" + name.Local
	}
	// Unprefixed attributes carry no namespace, so the default declaration
	// never applies here.
	prefix, ok := b.prefixFor(name.Space, false)
	if !ok {
		prefix = name.Space
	}
	return prefix + ":" + name.Local
}

// prefixFor finds the innermost prefix bound to a namespace URL. When one
// frame binds the URL more than once the default declaration wins, then the
// lexicographically first prefix, so reconstructed names are deterministic.
func (b *treeBuilder) prefixFor(url string, allowDefault bool) (string, bool) {
	for i := len(b.scopes) - 1; i >= 0; i-- {
		best, found := "", false
		for prefix, u := range b.scopes[i] {
			if u != url {
				continue
			}
			if prefix == "" {
				if allowDefault {
					return "", true
				}
				continue
			}
			if !found || prefix < best {
				best, found = prefix, true
			}
		}
		if found {
			return best, true
		}
	}
	return "", false
}
