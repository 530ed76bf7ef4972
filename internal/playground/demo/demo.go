// Package demo renders the message and pairing demos as console lines.
package demo

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"slices"

	"github.com/longkey1/playground/internal/playground/message"
	"github.com/longkey1/playground/internal/playground/pairs"
	"github.com/samber/lo"
)

// Runner writes demo output to out and diagnostics to log
type Runner struct {
	out io.Writer
	log *slog.Logger
}

// NewRunner creates a Runner
func NewRunner(out io.Writer, log *slog.Logger) *Runner {
	return &Runner{out: out, log: log}
}

// Messages creates one message per initial value. The first is updated
// without a value and every following one with replacement; the resulting
// contents are printed one per line.
func (r *Runner) Messages(initial []string, replacement string) error {
	msgs := lo.Map(initial, func(content string, _ int) *message.MyMessage {
		return message.New(content)
	})

	for i, msg := range msgs {
		if i == 0 {
			message.Update(msg, nil)
		} else {
			message.Update(msg, &replacement)
		}
		r.log.Debug("message updated", "index", i, "from", initial[i], "to", msg.Content)
	}

	for _, msg := range msgs {
		if _, err := fmt.Fprintln(r.out, msg.Content); err != nil {
			return fmt.Errorf("failed to write message: %w", err)
		}
	}
	return nil
}

// Pairs prints "<index>: <text>" for each word paired with a number
func (r *Runner) Pairs(words []string, numbers []int) error {
	r.log.Debug("pairing words with numbers", "words", len(words), "numbers", len(numbers))
	for p := range pairs.ZipSlices(words, numbers) {
		str, num := p.Unpack()
		if _, err := fmt.Fprintf(r.out, "%d: %s\n", num, str); err != nil {
			return fmt.Errorf("failed to write pair: %w", err)
		}
	}
	return nil
}

// Mapping prints "<text>: <value> - <key>" for each word paired with a
// dictionary entry. Entries follow map order unless sorted is set.
func (r *Runner) Mapping(words []string, dict map[string]int, sorted bool) error {
	r.log.Debug("pairing words with dictionary", "words", len(words), "entries", len(dict), "sorted", sorted)

	var entries iter.Seq[lo.Entry[string, int]]
	if sorted {
		entries = pairs.SortedEntries(dict)
	} else {
		entries = pairs.Entries(dict)
	}

	for p := range pairs.Zip(slices.Values(words), entries) {
		str, entry := p.Unpack()
		if _, err := fmt.Fprintf(r.out, "%s: %d - %s\n", str, entry.Value, entry.Key); err != nil {
			return fmt.Errorf("failed to write entry: %w", err)
		}
	}
	return nil
}

// Labeled prints "<label>, <index>: <text>" for each label paired with an
// already paired word and number
func (r *Runner) Labeled(labels, words []string, numbers []int) error {
	r.log.Debug("pairing labels with word pairs", "labels", len(labels))
	for p := range pairs.Zip(slices.Values(labels), pairs.ZipSlices(words, numbers)) {
		label, inner := p.Unpack()
		str, num := inner.Unpack()
		if _, err := fmt.Fprintf(r.out, "%s, %d: %s\n", label, num, str); err != nil {
			return fmt.Errorf("failed to write labeled pair: %w", err)
		}
	}
	return nil
}
