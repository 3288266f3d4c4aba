/*
Wordfreq counts the frequencies of words in text and HTML files.

Usage:

	wordfreq [flags] file...

Files are read concurrently and split into case-folded words. A single
goroutine counts them in a hash map; the most frequent words are then
ranked in an array list and printed as a bar chart.

Settings are read from the environment (prefix WORDFREQ, an optional .env
file is honoured) and may be overridden by flags.
*/
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/containers/hashmap"
	"github.com/npillmayer/containers/textfile"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}

func main() {
	gtrace.CoreTracer = gologadapter.New()
	config, err := LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "wordfreq: %v\n", err)
		os.Exit(2)
	}
	if err := newRootCmd(config).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(config *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordfreq [flags] file...",
		Short: "counts word frequencies of text and HTML files",
		Long: `
	Reads all files concurrently, counts case-folded words and prints the most
	frequent ones. Files ending in .html or .htm are stripped of their markup.
	`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.validate(); err != nil {
				return err
			}
			return run(cmd.Context(), config, args, cmd.OutOrStdout())
		},
	}
	flags := cmd.Flags()
	flags.IntVarP(&config.Top, "top", "n", config.Top, "number of words to show, 0 for all")
	flags.IntVar(&config.MinLength, "min-length", config.MinLength, "ignore words shorter than this")
	flags.IntVar(&config.BatchSize, "batch", config.BatchSize, "number of words per batch sent to the counter")
	flags.BoolVar(&config.Stats, "stats", config.Stats, "print hash table statistics")
	flags.StringVar(&config.Dot, "dot", config.Dot, "write the hash table layout as a Graphviz file")
	flags.BoolVar(&config.NoColor, "no-color", config.NoColor, "disable colored output")
	flags.StringVar(&config.Trace, "trace", config.Trace, "trace level: error, info or debug")
	return cmd
}

// run counts the words of files and writes the report to out.
func run(ctx context.Context, config *Config, files []string, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := setTraceLevel(config.Trace); err != nil {
		return err
	}
	counter, err := count(ctx, config, files)
	if err != nil {
		return err
	}
	ranked, err := counter.Rank(config.Top)
	if err != nil {
		return err
	}
	width := defaultWidth
	if f, ok := out.(*os.File); ok && f == os.Stdout {
		width = terminalWidth()
	}
	if err := newReporter(width, !config.NoColor).Write(out, ranked, counter.Total()); err != nil {
		return err
	}
	if config.Stats {
		fmt.Fprintf(out, "%d distinct words; %s\n", counter.Distinct(), counter.Stats())
	}
	if config.Dot != "" {
		return writeDot(config.Dot, counter)
	}
	return nil
}

// count loads files concurrently and feeds their words to a single counting
// goroutine.
func count(ctx context.Context, config *Config, files []string) (*Counter, error) {
	counter, err := NewCounter()
	if err != nil {
		return nil, err
	}
	loader := textfile.NewLoader(ctx, textfile.LoaderOptions{
		BatchSize: config.BatchSize,
		MinLength: config.MinLength,
	})
	ch, err := loader.Subscribe(ctx, 16)
	if err != nil {
		return nil, err
	}
	counted := make(chan error, 1)
	go func() {
		counted <- counter.Consume(ch)
	}()
	loadErr := loader.Load(ctx, files...)
	if err := errors.CombineErrors(loadErr, <-counted); err != nil {
		return nil, err
	}
	tracer().Infof("counted %d words, %d distinct", counter.Total(), counter.Distinct())
	return counter, nil
}

func writeDot(name string, counter *Counter) error {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "writing graph")
	}
	if err := hashmap.Map2Dot(counter.words, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
