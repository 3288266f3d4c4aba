package hashmap

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
)

// TestScripts runs the command scripts in testdata/ against maps of int keys.
// Commands:
//
//	new [cap=<n>] [hasher=identity|const]
//	put                one "key value" pair per input line
//	get k=<key>
//	remove k=<key>
//	layout             non-empty buckets with their keys in chain order
//	stats
func TestScripts(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		var m *Map[int, int]
		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
			switch d.Cmd {
			case "new":
				cfg := Config[int, int]{}
				if d.HasArg("cap") {
					d.ScanArgs(t, "cap", &cfg.InitialCapacity)
				}
				if d.HasArg("hasher") {
					var h string
					d.ScanArgs(t, "hasher", &h)
					switch h {
					case "identity":
						cfg.Hasher = identityHasher{}
					case "const":
						cfg.Hasher = constHasher{}
					default:
						d.Fatalf(t, "unknown hasher %q", h)
					}
				}
				var err error
				if m, err = NewWithConfig(cfg); err != nil {
					return fmt.Sprintf("error: %v\n", err)
				}
				return "ok\n"
			case "put":
				var sb strings.Builder
				for _, line := range strings.Split(strings.TrimSpace(d.Input), "\n") {
					kv := strings.Fields(line)
					if len(kv) != 2 {
						d.Fatalf(t, "bad input line %q", line)
					}
					k, v := atoi(t, d, kv[0]), atoi(t, d, kv[1])
					old, found, err := m.Put(k, v)
					switch {
					case err != nil:
						fmt.Fprintf(&sb, "%d: error: %v\n", k, err)
					case found:
						fmt.Fprintf(&sb, "%d → %d (replaced %d)\n", k, v, old)
					default:
						fmt.Fprintf(&sb, "%d → %d (new)\n", k, v)
					}
				}
				checkScript(t, d, m)
				return sb.String()
			case "get":
				var k int
				d.ScanArgs(t, "k", &k)
				if v, ok := m.Get(k); ok {
					return fmt.Sprintf("%d\n", v)
				}
				return "absent\n"
			case "remove":
				var k int
				d.ScanArgs(t, "k", &k)
				v, ok := m.Remove(k)
				checkScript(t, d, m)
				if ok {
					return fmt.Sprintf("removed %d\n", v)
				}
				return "absent\n"
			case "layout":
				return layout(m)
			case "stats":
				return m.Stats().String() + "\n"
			}
			d.Fatalf(t, "unknown command %q", d.Cmd)
			return ""
		})
	})
}

func atoi(t *testing.T, d *datadriven.TestData, s string) int {
	x, err := strconv.Atoi(s)
	if err != nil {
		d.Fatalf(t, "bad number %q", s)
	}
	return x
}

func checkScript(t *testing.T, d *datadriven.TestData, m *Map[int, int]) {
	if err := m.Check(); err != nil {
		d.Fatalf(t, "%v", err)
	}
}

func layout(m *Map[int, int]) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "buckets=%d size=%d\n", len(m.buckets), m.size)
	for j := range m.buckets {
		b := &m.buckets[j]
		if b.count == 0 {
			continue
		}
		fmt.Fprintf(&sb, "[%d]", j)
		for e := b.head; e != nil; e = e.next {
			fmt.Fprintf(&sb, " %d", e.key)
		}
		if b.isTree() {
			sb.WriteString(" (tree)")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
