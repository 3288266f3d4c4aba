package textfile

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/guiguan/caster"
	"golang.org/x/sync/errgroup"
)

/*
BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

// Some defaults for batching words.
const (
	DefaultBatchSize = 256
	DefaultMinLength = 1
)

// ErrClosed is returned when words are published to a loader which has
// already been shut down.
var ErrClosed = errors.New("textfile: loader closed")

// Batch is a chunk of consecutive words from a single file.
type Batch struct {
	Source string   // file name the words are from
	Words  []string // case-folded words, in order of appearance
}

// LoaderOptions tunes a Loader. Zero values select defaults.
type LoaderOptions struct {
	BatchSize int // number of words per batch
	MinLength int // words shorter than this (in runes) are dropped
}

// Loader reads text files concurrently and broadcasts their words as
// Batch messages. Subscribers have to subscribe before calling Load, which
// closes the loader when done; subscriber channels are closed then.
type Loader struct {
	cast *caster.Caster // broadcaster for async file loading
	opts LoaderOptions
}

// NewLoader creates a loader. Cancelling ctx shuts the loader down.
func NewLoader(ctx context.Context, opts LoaderOptions) *Loader {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.MinLength <= 0 {
		opts.MinLength = DefaultMinLength
	}
	return &Loader{
		cast: caster.New(ctx),
		opts: opts,
	}
}

// Subscribe returns a channel receiving Batch messages. capacity is the
// channel's buffer size.
func (l *Loader) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, error) {
	ch, ok := l.cast.Sub(ctx, capacity)
	if !ok {
		return nil, ErrClosed
	}
	return ch, nil
}

// Load reads all the named files concurrently and publishes their words.
// Files ending in ".html" or ".htm" are stripped of their markup first.
// Load returns the first error encountered and closes the loader in any case.
func (l *Loader) Load(ctx context.Context, names ...string) error {
	defer l.cast.Close()
	g, ctx := errgroup.WithContext(ctx)
	for _, name := range names {
		g.Go(func() error {
			return l.loadFile(ctx, name)
		})
	}
	return g.Wait()
}

func (l *Loader) loadFile(ctx context.Context, name string) error {
	file, err := openFile(name)
	if err != nil {
		return err
	}
	defer file.Close()
	var r io.Reader = bufio.NewReader(file)
	if isHTML(name) {
		text, err := TextFromHTML(r)
		if err != nil {
			return errors.Wrapf(err, "loading %s", name)
		}
		r = strings.NewReader(text)
	}
	tracer().Debugf("loading words from %s", name)
	batch := make([]string, 0, l.opts.BatchSize)
	count := 0
	for w := range Words(r, l.opts.MinLength) {
		batch = append(batch, w)
		if len(batch) < l.opts.BatchSize {
			continue
		}
		if err := l.publish(ctx, name, batch); err != nil {
			return err
		}
		count += len(batch)
		batch = make([]string, 0, l.opts.BatchSize)
	}
	if len(batch) > 0 {
		if err := l.publish(ctx, name, batch); err != nil {
			return err
		}
		count += len(batch)
	}
	tracer().Infof("loaded %d words from %s", count, name)
	return nil
}

func (l *Loader) publish(ctx context.Context, name string, words []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !l.cast.Pub(Batch{Source: name, Words: words}) {
		return ErrClosed
	}
	return nil
}

// openFile opens an OS file for reading, checking that it is a regular file.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", name)
	} else if !fi.Mode().IsRegular() {
		return nil, errors.Newf("loading %s: file is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", name)
	}
	return file, nil
}

func isHTML(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".html" || ext == ".htm"
}
