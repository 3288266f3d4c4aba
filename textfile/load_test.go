package textfile

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	input := "Don't panic! The STRASSE, Straße; strasse 42.\n"
	words := slices.Collect(Words(strings.NewReader(input), 1))
	expected := []string{"don't", "panic", "the", "strasse", "strasse", "strasse", "42"}
	if !slices.Equal(words, expected) {
		t.Errorf("expected %v, have %v", expected, words)
	}
	words = slices.Collect(Words(strings.NewReader(input), 4))
	expected = []string{"don't", "panic", "strasse", "strasse", "strasse"}
	if !slices.Equal(words, expected) {
		t.Errorf("expected %v, have %v", expected, words)
	}
}

func TestWordsStopEarly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	n := 0
	for range Words(strings.NewReader("a b c d e f\n"), 1) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("expected to stop after 2 words, did %d", n)
	}
}

func TestTextFromHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	doc := `<html><head><style>p { color: red; }</style><script>var x = 1;</script></head>
<body><p>Hello <b>World</b></p></body></html>`
	text, err := TextFromHTML(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	words := slices.Collect(Words(strings.NewReader(text), 1))
	if !slices.Equal(words, []string{"hello", "world"}) {
		t.Errorf("expected [hello world], have %v from %q", words, text)
	}
	if _, err := InnerText(nil); err == nil {
		t.Errorf("expected error for nil node")
	}
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "one two two\n")
	b := writeFile(t, dir, "b.html", "<p>two three</p>")
	ctx := context.Background()
	loader := NewLoader(ctx, LoaderOptions{BatchSize: 2})
	ch, err := loader.Subscribe(ctx, 4)
	if err != nil {
		t.Fatal(err)
	}
	done := make(chan error, 1)
	go func() {
		done <- loader.Load(ctx, a, b)
	}()
	counts := map[string]int{}
	for msg := range ch {
		batch := msg.(Batch)
		if len(batch.Words) > 2 {
			t.Errorf("batch from %s exceeds batch size: %v", batch.Source, batch.Words)
		}
		for _, w := range batch.Words {
			counts[w]++
		}
	}
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if counts["one"] != 1 || counts["two"] != 3 || counts["three"] != 1 || len(counts) != 3 {
		t.Errorf("unexpected word counts %v", counts)
	}
}

func TestLoadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	dir := t.TempDir()
	ctx := context.Background()
	loader := NewLoader(ctx, LoaderOptions{})
	if err := loader.Load(ctx, filepath.Join(dir, "missing.txt")); err == nil {
		t.Errorf("expected error for missing file")
	}
	loader = NewLoader(ctx, LoaderOptions{})
	if err := loader.Load(ctx, dir); err == nil {
		t.Errorf("expected error for directory")
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
