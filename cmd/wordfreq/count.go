package main

import (
	"cmp"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/containers/arraylist"
	"github.com/npillmayer/containers/hashmap"
	"github.com/npillmayer/containers/textfile"
)

// WordCount is a word together with the number of its occurrences.
type WordCount struct {
	Word  string
	Count int
}

// Counter counts word occurrences. A counter is owned by a single goroutine.
type Counter struct {
	words *hashmap.Map[string, int]
	total int
}

// NewCounter creates an empty counter.
func NewCounter() (*Counter, error) {
	words, err := hashmap.NewWithConfig(hashmap.Config[string, int]{
		Hasher: hashmap.StringHasher{},
	})
	if err != nil {
		return nil, err
	}
	return &Counter{words: words}, nil
}

// Add counts one occurrence of word.
func (c *Counter) Add(word string) error {
	n := c.words.GetOrDefault(word, 0)
	if _, _, err := c.words.Put(word, n+1); err != nil {
		return errors.Wrapf(err, "counting %q", word)
	}
	c.total++
	return nil
}

// Consume counts the words of all batches received from ch, until ch is
// closed. Messages other than batches are ignored. Consume drains ch even
// after an error and returns the first error.
func (c *Counter) Consume(ch <-chan interface{}) error {
	var first error
	for msg := range ch {
		batch, ok := msg.(textfile.Batch)
		if !ok || first != nil {
			continue
		}
		for _, w := range batch.Words {
			if err := c.Add(w); err != nil {
				first = err
				break
			}
		}
	}
	return first
}

// Total is the number of words counted, including repetitions.
func (c *Counter) Total() int {
	return c.total
}

// Distinct is the number of different words counted.
func (c *Counter) Distinct() int {
	return c.words.Size()
}

// Stats returns the statistics of the underlying hash table.
func (c *Counter) Stats() hashmap.Stats {
	return c.words.Stats()
}

// Rank returns the top most frequent words, most frequent first. Words of
// equal frequency are ordered alphabetically. top = 0 returns all words.
func (c *Counter) Rank(top int) (*arraylist.List[WordCount], error) {
	ranked, err := arraylist.NewWithCapacity[WordCount](c.words.Size())
	if err != nil {
		return nil, err
	}
	var appendErr error
	err = c.words.ForEach(func(word string, count int) bool {
		appendErr = ranked.Append(WordCount{Word: word, Count: count})
		return appendErr == nil
	})
	if err = errors.CombineErrors(err, appendErr); err != nil {
		return nil, err
	}
	ranked.SortFunc(func(a, b WordCount) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(a.Word, b.Word)
	})
	if top > 0 && ranked.Size() > top {
		if err := ranked.RemoveRange(top, ranked.Size()); err != nil {
			return nil, err
		}
	}
	return ranked, nil
}
