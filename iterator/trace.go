package iterator

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ddjerqq/rustkit/option"
)

// TraceIterator logs every pull of an inner iterator.  Created by
// Trace.
type TraceIterator[T any] struct {
	it  Iterator[T]
	log zerolog.Logger
	tag string
	n   int
}

// Trace returns an iterator that passes every element of it through
// unchanged, emitting a debug event per pull on log.  The tag
// distinguishes multiple traced stages in one pipeline.
func Trace[T any](it Iterator[T], log zerolog.Logger, tag string) *TraceIterator[T] {
	return &TraceIterator[T]{it: it, log: log, tag: tag}
}

func (t *TraceIterator[T]) Next() option.Option[T] {
	x := t.it.Next()
	t.n++

	ev := t.log.Debug().Str("iterator", t.tag).Int("pull", t.n)
	if v, ok := x.Get(); ok {
		ev.Str("item", fmt.Sprintf("%v", v)).Msg("next")
	} else {
		ev.Msg("exhausted")
	}
	return x
}
