package llm

import (
	"context"
	"encoding/json"
	"testing"
)

func TestFailoverServesFirstSuccess(t *testing.T) {
	primary := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})
	backup := NewMockProvider(MockResponse{Content: json.RawMessage(`{"ok":true}`)})

	f, err := NewFailover(primary, backup)
	if err != nil {
		t.Fatalf("NewFailover: %v", err)
	}

	resp, err := f.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Errorf("unexpected content: %s", resp.Content)
	}
	if primary.CallCount() != 1 || backup.CallCount() != 1 {
		t.Errorf("call counts primary=%d backup=%d, want 1/1", primary.CallCount(), backup.CallCount())
	}
}

func TestFailoverSkipsBackupOnPrimarySuccess(t *testing.T) {
	primary := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	backup := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	f, _ := NewFailover(primary, backup)
	if _, err := f.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if backup.CallCount() != 0 {
		t.Errorf("backup called %d times, want 0", backup.CallCount())
	}
}

func TestFailoverReportsAllFailures(t *testing.T) {
	primary := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})
	backup := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})

	f, _ := NewFailover(primary, backup)
	if _, err := f.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error when every backend fails")
	}
}

func TestFailoverStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	primary := NewMockProvider(MockResponse{Err: ctx.Err()})
	backup := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	f, _ := NewFailover(primary, backup)
	if _, err := f.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected context error")
	}
	if backup.CallCount() != 0 {
		t.Errorf("backup tried after cancellation, calls=%d", backup.CallCount())
	}
}

func TestFailoverRequiresProvider(t *testing.T) {
	if _, err := NewFailover(); err == nil {
		t.Fatal("expected error for empty provider list")
	}
}
