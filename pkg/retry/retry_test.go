package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

var (
	errTransient = errors.New("transient")
	errFatal     = errors.New("fatal")
)

func onlyTransient(err error) bool {
	return errors.Is(err, errTransient)
}

func TestWithBackoff_Success(t *testing.T) {
	result, err := WithBackoff(context.Background(), 3, 10*time.Millisecond, onlyTransient, func() (string, error) {
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result != "ok" {
		t.Fatalf("expected 'ok', got %q", result)
	}
}

func TestWithBackoff_NonRetriableError(t *testing.T) {
	calls := 0
	_, err := WithBackoff(context.Background(), 3, 10*time.Millisecond, onlyTransient, func() (string, error) {
		calls++
		return "", errFatal
	})
	if !errors.Is(err, errFatal) {
		t.Fatalf("expected fatal error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call for non-retriable error, got %d", calls)
	}
}

func TestWithBackoff_RetriableEventualSuccess(t *testing.T) {
	calls := 0
	result, err := WithBackoff(context.Background(), 5, time.Millisecond, onlyTransient, func() (string, error) {
		calls++
		if calls < 3 {
			return "", errTransient
		}
		return "recovered", nil
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result != "recovered" {
		t.Fatalf("expected 'recovered', got %q", result)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestWithBackoff_AllRetriesFail(t *testing.T) {
	calls := 0
	err := Do(context.Background(), 3, time.Millisecond, nil, func() error {
		calls++
		return errFatal
	})
	if !errors.Is(err, errFatal) {
		t.Fatalf("expected wrapped fatal error, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestWithBackoff_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Do(ctx, 5, 10*time.Millisecond, Always, func() error {
		return errTransient
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancelled error, got %v", err)
	}
}

func TestWithBackoff_InvalidRetries(t *testing.T) {
	if err := Do(context.Background(), 0, time.Millisecond, Always, func() error { return nil }); err == nil {
		t.Fatal("expected error for zero retries")
	}
}
