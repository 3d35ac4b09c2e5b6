// Package xmlnode provides a namespace-agnostic XML tree for OOXML parts.
//
// Office exporters are inconsistent about namespace prefixes: the same slide
// element may arrive as <p:sp>, <sp>, or under a renamed prefix, and color
// elements mix the drawing and presentation namespaces freely. Rather than
// bind struct tags to one namespace arrangement, this package parses any part
// into a generic [Node] tree and makes every lookup compare local names only,
// so callers never deal with prefixes.
//
// # Parsing
//
//	root, err := xmlnode.Parse(partBytes)
//	if err != nil {
//		// *SyntaxError with a line hint
//	}
//
// The parser accepts the variance found in real exports: self-closing tags,
// CDATA sections, entity references (including the HTML entity set emitted by
// some tools), XML declarations, mixed text and element content, namespace
// declarations, byte-order marks, and non-UTF-8 encodings declared in the
// prolog.
//
// # Queries
//
// [FindNode] and [FindNodes] walk the tree in document order and match on the
// local (post-colon) part of the element name. [Node.Attr] does the same for
// attribute names, and [Node.TextContent] concatenates all descendant text:
//
//	fill := xmlnode.FindNode(shape, "solidFill")
//	id := node.Attr("embed") // matches r:embed
//
// All queries run in time linear in the size of the subtree they inspect.
package xmlnode
