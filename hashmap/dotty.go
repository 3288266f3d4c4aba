package hashmap

import (
	"fmt"
	"io"

	"github.com/emicklei/dot"
)

// Map2Dot outputs the bucket layout of a map in Graphviz DOT format (for
// debugging purposes). Empty buckets are omitted; tree bins are drawn
// filled. Labels are produced by printing keys with %v.
func Map2Dot[K comparable, V any](m *Map[K, V], w io.Writer) error {
	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", "LR")
	table := g.Node("table").Attr("shape", "box")
	table.Label(fmt.Sprintf("%d buckets, %d entries", len(m.buckets), m.size))
	for j := range m.buckets {
		b := &m.buckets[j]
		if b.count == 0 {
			continue
		}
		bucket := g.Node(fmt.Sprintf("b%d", j)).Attr("shape", "box")
		bucket.Label(fmt.Sprintf("[%d] %d", j, b.count))
		if b.isTree() {
			bucket.Attr("style", "filled")
			bucket.Attr("fillcolor", "#a3d7e4")
		}
		g.Edge(table, bucket)
		from := bucket
		for i, e := 0, b.head; e != nil; i, e = i+1, e.next {
			n := g.Node(fmt.Sprintf("b%d_%d", j, i))
			n.Label(fmt.Sprintf("%v %#x", e.key, e.hash))
			g.Edge(from, n)
			from = n
		}
	}
	_, err := io.WriteString(w, g.String())
	return err
}
