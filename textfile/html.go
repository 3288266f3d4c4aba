package textfile

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/net/html"
)

// InnerText returns the textual content of an HTML element and all its
// descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript, except that InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents. Content of <script> and <style>
// elements is skipped.
func InnerText(n *html.Node) (string, error) {
	if n == nil {
		return "", errors.New("textfile: inner text of nil node")
	}
	var b strings.Builder
	collectText(n, &b)
	return b.String(), nil
}

func collectText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return
		}
	case html.TextNode:
		b.WriteString(n.Data)
		b.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// TextFromHTML returns the textual content of an HTML document.
func TextFromHTML(input io.Reader) (string, error) {
	doc, err := html.Parse(input)
	if err != nil {
		return "", errors.Wrap(err, "textfile: parsing HTML")
	}
	return InnerText(doc)
}
