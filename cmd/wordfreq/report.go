package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/containers/arraylist"
	"golang.org/x/term"
)

const defaultWidth = 65

// terminalWidth returns the usable width of the terminal attached to stdout,
// or a default if stdout is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return defaultWidth
	}
	switch {
	case w > 65:
		w -= 10
	case w > 30:
		w -= 5
	case w < 10:
		w = 10
	}
	tracer().Infof("setting report width to %d", w)
	return w
}

// reporter prints a ranking of words as a bar chart.
type reporter struct {
	width int
	word  *color.Color
	count *color.Color
	bar   *color.Color
}

func newReporter(width int, colored bool) *reporter {
	r := &reporter{
		width: width,
		word:  color.New(color.FgHiWhite, color.Bold),
		count: color.New(color.FgYellow),
		bar:   color.New(color.FgBlue),
	}
	if !colored {
		r.word.DisableColor()
		r.count.DisableColor()
		r.bar.DisableColor()
	}
	return r
}

// Write prints one line per ranked word: the word, its count, its share of
// total and a bar scaled to the most frequent word.
func (r *reporter) Write(w io.Writer, ranked *arraylist.List[WordCount], total int) error {
	if ranked.IsEmpty() || total == 0 {
		_, err := fmt.Fprintln(w, "no words found")
		return err
	}
	first, err := ranked.Get(0)
	if err != nil {
		return err
	}
	wordWidth := 0
	for wc := range ranked.Values() {
		wordWidth = max(wordWidth, utf8.RuneCountInString(wc.Word))
	}
	barSpace := max(r.width-wordWidth-16, 1)
	for wc := range ranked.Values() {
		pad := strings.Repeat(" ", wordWidth-utf8.RuneCountInString(wc.Word))
		r.word.Fprint(w, wc.Word)
		r.count.Fprintf(w, "%s %7d", pad, wc.Count)
		fmt.Fprintf(w, " %5.1f%% ", 100*float64(wc.Count)/float64(total))
		r.bar.Fprintln(w, strings.Repeat("█", max(wc.Count*barSpace/first.Count, 1)))
	}
	_, err = fmt.Fprintf(w, "%d words, showing %d\n", total, ranked.Size())
	return err
}
