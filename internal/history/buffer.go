// Package history keeps the bounded log of resolved executions and the
// keyboard navigation cursor over it.
package history

import "devconsole/internal/execute"

// NoCursor marks an inactive navigation cursor.
const NoCursor = -1

// Buffer is an append-only log of terminal ExecutionRecords in resolution
// order, capped at maxItems with FIFO eviction. The navigation cursor is an
// offset into the most-recent-first view and is independent of storage order.
// Single writer: the UI loop.
type Buffer struct {
	records  []execute.ExecutionRecord
	maxItems int
	cursor   int
}

func NewBuffer(maxItems int) *Buffer {
	if maxItems < 1 {
		maxItems = 1
	}
	return &Buffer{maxItems: maxItems, cursor: NoCursor}
}

// Append adds a resolved record, evicting the oldest entry once the bound is
// exceeded. Appending resets the navigation cursor: new output invalidates
// whatever the user was scrolled back to.
func (b *Buffer) Append(record execute.ExecutionRecord) {
	b.records = append(b.records, record)
	if len(b.records) > b.maxItems {
		b.records = b.records[1:]
	}
	b.cursor = NoCursor
}

// Len is the number of stored records.
func (b *Buffer) Len() int {
	return len(b.records)
}

// All returns the stored records, oldest first.
func (b *Buffer) All() []execute.ExecutionRecord {
	return b.records
}

// Recent returns up to n records, most recent first.
func (b *Buffer) Recent(n int) []execute.ExecutionRecord {
	if n <= 0 || len(b.records) == 0 {
		return nil
	}
	if n > len(b.records) {
		n = len(b.records)
	}
	out := make([]execute.ExecutionRecord, 0, n)
	for i := len(b.records) - 1; i >= len(b.records)-n; i-- {
		out = append(out, b.records[i])
	}
	return out
}

// Back moves the cursor one step toward older entries and returns the command
// name there. The second return is false when there is nothing to show.
func (b *Buffer) Back() (string, bool) {
	if len(b.records) == 0 {
		return "", false
	}
	if b.cursor < len(b.records)-1 {
		b.cursor++
	}
	return b.records[len(b.records)-1-b.cursor].CommandName, true
}

// Forward moves the cursor one step toward newer entries. Stepping past the
// newest entry deactivates the cursor and returns an empty command name so
// the input clears back to a fresh line.
func (b *Buffer) Forward() (string, bool) {
	if b.cursor == NoCursor {
		return "", false
	}
	b.cursor--
	if b.cursor == NoCursor {
		return "", true
	}
	return b.records[len(b.records)-1-b.cursor].CommandName, true
}

// Cursor is the current navigation offset, NoCursor when inactive.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// ResetCursor deactivates history navigation.
func (b *Buffer) ResetCursor() {
	b.cursor = NoCursor
}

// Clear drops all records and deactivates the cursor.
func (b *Buffer) Clear() {
	b.records = nil
	b.cursor = NoCursor
}
