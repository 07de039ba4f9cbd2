package notify

import (
	"strings"

	"github.com/inconshreveable/log15"
)

// Console writes each message as an error record on a log15 logger.
// The record timestamp comes from the logger's handler format.
type Console struct {
	Log log15.Logger
}

// NewConsole returns a Console sink writing to log.
func NewConsole(log log15.Logger) *Console { return &Console{Log: log} }

// Notify logs msg at error level.
func (c *Console) Notify(msg string) {
	if c == nil || c.Log == nil {
		return
	}
	c.Log.Error(msg)
}

// Buffer accumulates raw message text in memory.
//
// Buffer is not safe for concurrent use; the pipeline is single-threaded.
type Buffer struct {
	msgs []string
}

// Notify appends msg unchanged.
func (b *Buffer) Notify(msg string) {
	if b == nil {
		return
	}
	b.msgs = append(b.msgs, msg)
}

// Messages returns a copy of the messages in arrival order.
func (b *Buffer) Messages() []string {
	if b == nil {
		return nil
	}
	out := make([]string, len(b.msgs))
	copy(out, b.msgs)
	return out
}

// Len reports the number of buffered messages.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.msgs)
}

// String returns all messages concatenated with no separator.
func (b *Buffer) String() string {
	if b == nil {
		return ""
	}
	return strings.Join(b.msgs, "")
}
