package execute

import (
	"context"
	"errors"
	"testing"
)

type fakeTransport struct {
	result Result
	err    error
	calls  int
}

func (f *fakeTransport) ExecuteCommand(ctx context.Context, name string, parameters map[string]string) (Result, error) {
	f.calls++
	return f.result, f.err
}

type fakeNotifier struct {
	successes []string
	warnings  []string
	errors    []string
}

func (f *fakeNotifier) Success(text string) { f.successes = append(f.successes, text) }
func (f *fakeNotifier) Warning(text string) { f.warnings = append(f.warnings, text) }
func (f *fakeNotifier) Error(text string)   { f.errors = append(f.errors, text) }

type fakeSink struct {
	records []ExecutionRecord
}

func (f *fakeSink) Append(record ExecutionRecord) { f.records = append(f.records, record) }

func newTestTracker(transport Transport) (*Tracker, *fakeNotifier, *fakeSink) {
	notifier := &fakeNotifier{}
	sink := &fakeSink{}
	return NewTracker(transport, notifier, sink), notifier, sink
}

func TestSubmitCreatesExecutingRecord(t *testing.T) {
	tracker, _, _ := newTestTracker(&fakeTransport{})
	record, ok := tracker.Submit("ping host=localhost")
	if !ok {
		t.Fatalf("expected submission to be accepted")
	}
	if record.Status != StatusExecuting {
		t.Fatalf("expected executing status, got %s", record.Status)
	}
	if record.CommandName != "ping" || record.Parameters["host"] != "localhost" {
		t.Fatalf("unexpected parse result: %s %v", record.CommandName, record.Parameters)
	}
	if record.ID == "" {
		t.Fatalf("expected a record id")
	}
	if record.IssuedAt.IsZero() {
		t.Fatalf("expected issuedAt to be set")
	}
}

func TestSubmitUniqueRecordPerSubmission(t *testing.T) {
	tracker, _, _ := newTestTracker(&fakeTransport{})
	a, _ := tracker.Submit("ping host=x")
	b, _ := tracker.Submit("ping host=x")
	if a.ID == b.ID {
		t.Fatalf("expected independent records per submission, both got id %s", a.ID)
	}
}

func TestSubmitEmptyInputWarnsWithoutRecord(t *testing.T) {
	transport := &fakeTransport{}
	tracker, notifier, sink := newTestTracker(transport)
	for _, raw := range []string{"", "   "} {
		record, ok := tracker.Submit(raw)
		if ok || record != nil {
			t.Fatalf("expected rejection for %q", raw)
		}
	}
	if len(notifier.warnings) != 2 {
		t.Fatalf("expected one warning per empty submission, got %d", len(notifier.warnings))
	}
	if transport.calls != 0 {
		t.Fatalf("transport must not be called for empty input, got %d calls", transport.calls)
	}
	if len(sink.records) != 0 {
		t.Fatalf("no record may reach the sink, got %d", len(sink.records))
	}
}

func TestResolveSuccess(t *testing.T) {
	tracker, notifier, sink := newTestTracker(&fakeTransport{})
	record, _ := tracker.Submit("system_info")

	tracker.Resolve(record, Result{Success: true, Payload: `{"os":"linux"}`})

	if record.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s", record.Status)
	}
	if record.ResultPayload != `{"os":"linux"}` {
		t.Fatalf("expected payload attached, got %q", record.ResultPayload)
	}
	if record.CompletedAt.IsZero() {
		t.Fatalf("expected completedAt to be set")
	}
	if len(notifier.successes) != 1 {
		t.Fatalf("expected one success notification, got %d", len(notifier.successes))
	}
	if len(sink.records) != 1 || sink.records[0].ID != record.ID {
		t.Fatalf("expected record appended to sink")
	}
	if last := tracker.LastExecution(); last == nil || last.ID != record.ID {
		t.Fatalf("expected lastExecution to point at the resolved record")
	}
}

func TestResolveFailure(t *testing.T) {
	tracker, notifier, sink := newTestTracker(&fakeTransport{})
	record, _ := tracker.Submit("reboot_device id=dev-03")

	tracker.Resolve(record, Result{Success: false, Error: "device dev-03 is offline"})

	if record.Status != StatusFailed {
		t.Fatalf("expected failed, got %s", record.Status)
	}
	if record.ErrorMessage != "device dev-03 is offline" {
		t.Fatalf("expected error message attached, got %q", record.ErrorMessage)
	}
	if len(notifier.errors) != 1 {
		t.Fatalf("expected one error notification, got %d", len(notifier.errors))
	}
	if len(sink.records) != 1 {
		t.Fatalf("failed records still land in the sink")
	}
}

func TestResolveTerminalRecordIsImmutable(t *testing.T) {
	tracker, _, sink := newTestTracker(&fakeTransport{})
	record, _ := tracker.Submit("uptime")
	tracker.Resolve(record, Result{Success: true, Payload: "up"})
	tracker.Resolve(record, Result{Success: false, Error: "late failure"})

	if record.Status != StatusCompleted {
		t.Fatalf("terminal record must not change, got %s", record.Status)
	}
	if record.ErrorMessage != "" {
		t.Fatalf("terminal record must not pick up an error, got %q", record.ErrorMessage)
	}
	if len(sink.records) != 1 {
		t.Fatalf("terminal record must not be appended twice, got %d", len(sink.records))
	}
}

func TestInvokeFoldsTransportErrorIntoFailure(t *testing.T) {
	tracker, _, _ := newTestTracker(&fakeTransport{err: errors.New("connection refused")})
	record, _ := tracker.Submit("ping host=x")
	result := tracker.Invoke(context.Background(), record)
	if result.Success {
		t.Fatalf("expected failure result")
	}
	if result.Error != "connection refused" {
		t.Fatalf("expected transport error text, got %q", result.Error)
	}
}

func TestResolutionOrderWins(t *testing.T) {
	tracker, _, sink := newTestTracker(&fakeTransport{})

	slow, _ := tracker.Submit("net_scan")
	fast, _ := tracker.Submit("ping host=10.0.4.1")

	// The later submission resolves first; history must reflect that order.
	tracker.Resolve(fast, Result{Success: true, Payload: "pong"})
	tracker.Resolve(slow, Result{Success: false, Error: "scan timed out"})

	if len(sink.records) != 2 {
		t.Fatalf("expected two resolved records, got %d", len(sink.records))
	}
	if sink.records[0].ID != fast.ID || sink.records[1].ID != slow.ID {
		t.Fatalf("expected resolution order [fast, slow], got [%s, %s]",
			sink.records[0].CommandName, sink.records[1].CommandName)
	}
	if last := tracker.LastExecution(); last.ID != slow.ID {
		t.Fatalf("lastExecution must be the last resolved, got %s", last.CommandName)
	}
}
