package quiz

import (
	"context"
	"fmt"
	"os"

	"github.com/lumina-labs/lumina/internal/assessment"
	"github.com/lumina-labs/lumina/internal/store"
)

// ProgressSink is where in-flight sessions are persisted.
// *store.ProgressStore satisfies it.
type ProgressSink interface {
	Save(ctx context.Context, t assessment.Type, snap store.ProgressSnapshot) error
	Clear(ctx context.Context, t assessment.Type) error
}

// progressWriter persists snapshots on a background goroutine so answer
// selection never blocks on disk. The channel holds one pending
// snapshot; newer snapshots displace stale ones, so the last write
// always wins.
type progressWriter struct {
	typ  assessment.Type
	sink ProgressSink
	ch   chan store.ProgressSnapshot
	done chan struct{}
}

func newProgressWriter(t assessment.Type, sink ProgressSink) *progressWriter {
	w := &progressWriter{
		typ:  t,
		sink: sink,
		ch:   make(chan store.ProgressSnapshot, 1),
		done: make(chan struct{}),
	}
	go w.loop()
	return w
}

func (w *progressWriter) loop() {
	defer close(w.done)
	for snap := range w.ch {
		if err := w.sink.Save(context.Background(), w.typ, snap); err != nil {
			fmt.Fprintf(os.Stderr, "warning: save progress: %v\n", err)
		}
	}
}

// enqueue hands a snapshot to the writer without blocking, replacing
// any snapshot still waiting to be written.
func (w *progressWriter) enqueue(snap store.ProgressSnapshot) {
	for {
		select {
		case w.ch <- snap:
			return
		default:
			select {
			case <-w.ch:
			default:
			}
		}
	}
}

// close drains pending writes and waits for the loop to finish.
func (w *progressWriter) close() {
	close(w.ch)
	<-w.done
}
