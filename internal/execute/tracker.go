package execute

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"devconsole/internal/console"
)

// Sink receives terminal records in resolution order.
type Sink interface {
	Append(record ExecutionRecord)
}

// Tracker drives submissions through their lifecycle. Submissions are
// independent: any number may be in flight at once, each with its own record,
// and there is no de-duplication or cancellation once dispatched. All Tracker
// methods are called from the UI loop; only Invoke runs off it.
type Tracker struct {
	transport Transport
	notifier  Notifier
	sink      Sink

	lastExecution *ExecutionRecord
}

func NewTracker(transport Transport, notifier Notifier, sink Sink) *Tracker {
	return &Tracker{transport: transport, notifier: notifier, sink: sink}
}

// Submit validates and parses a command line. Empty or whitespace-only input
// is rejected locally with a warning and produces no record and no transport
// call. Otherwise the returned record is already in StatusExecuting and the
// caller is expected to run Invoke for it exactly once.
func (t *Tracker) Submit(raw string) (*ExecutionRecord, bool) {
	if strings.TrimSpace(raw) == "" {
		t.notifier.Warning("empty command ignored")
		return nil, false
	}
	name, params := console.ParseLine(raw)
	record := &ExecutionRecord{
		ID:          uuid.NewString(),
		InputText:   raw,
		CommandName: name,
		Parameters:  params,
		Status:      StatusQueued,
		IssuedAt:    time.Now(),
	}
	record.Status = StatusExecuting
	return record, true
}

// Invoke runs the transport for a record. Transport-level errors are folded
// into a failure Result so the caller always gets a resolvable outcome.
func (t *Tracker) Invoke(ctx context.Context, record *ExecutionRecord) Result {
	result, err := t.transport.ExecuteCommand(ctx, record.CommandName, record.Parameters)
	if err != nil {
		return Result{Success: false, Error: err.Error()}
	}
	return result
}

// Resolve moves a record to its terminal state, notifies, and appends it to
// the sink. Records therefore land in history in resolution order, not
// submission order. Resolving an already-terminal record is a no-op.
func (t *Tracker) Resolve(record *ExecutionRecord, result Result) {
	if record == nil || record.Status.Terminal() {
		return
	}
	record.CompletedAt = time.Now()
	if result.Success {
		record.Status = StatusCompleted
		record.ResultPayload = result.Payload
		t.notifier.Success("command " + record.CommandName + " completed")
	} else {
		record.Status = StatusFailed
		record.ErrorMessage = result.Error
		t.notifier.Error("command " + record.CommandName + " failed: " + result.Error)
	}
	t.sink.Append(*record)
	t.lastExecution = record
}

// LastExecution is the most recently resolved record, or nil before the
// first resolution.
func (t *Tracker) LastExecution() *ExecutionRecord {
	return t.lastExecution
}
