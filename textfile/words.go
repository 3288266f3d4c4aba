package textfile

import (
	"bufio"
	"io"
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
	"golang.org/x/text/cases"
)

// Words returns the case-folded words of r having at least minLength runes.
//
// Input is read incrementally; r is never held in memory as a whole.
func Words(r io.Reader, minLength int) iter.Seq[string] {
	return func(yield func(string) bool) {
		fold := cases.Fold()
		segmenter := segment.NewSegmenter(uax14.NewLineWrap())
		segmenter.Init(bufio.NewReader(r))
		for segmenter.Next() {
			for _, w := range strings.FieldsFunc(string(segmenter.Bytes()), isSeparator) {
				w = strings.Trim(w, "'’")
				if w == "" || utf8.RuneCountInString(w) < minLength {
					continue
				}
				if !yield(fold.String(w)) {
					return
				}
			}
		}
	}
}

// isSeparator reports whether r separates words. Apostrophes are kept inside
// words ("don't").
func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\'' && r != '’'
}
