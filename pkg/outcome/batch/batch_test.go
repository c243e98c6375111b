package batch

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/ib-77/outcome/pkg/outcome"
)

func TestAll_MiddleInputFails(t *testing.T) {
	t.Parallel()
	inputs := []string{"1", "bad", "3"}

	results, err := All(context.Background(), inputs, func(_ context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
	if err != nil {
		t.Fatalf("no fatal signal expected, got %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected one outcome per input, got %d", len(results))
	}
	if !results[0].IsSuccess() || results[0].GetOrZero() != 1 {
		t.Fatalf("expected element 1 to succeed, got %v", results[0])
	}
	if !results[1].IsFailure() {
		t.Fatalf("expected element 2 to fail, got %v", results[1])
	}
	if !results[2].IsSuccess() || results[2].GetOrZero() != 3 {
		t.Fatalf("expected element 3 to succeed, got %v", results[2])
	}
}

func TestAll_CapturesPanics(t *testing.T) {
	t.Parallel()
	results, err := All(context.Background(), []int{1, 2}, func(_ context.Context, v int) (int, error) {
		if v == 2 {
			panic("bad input")
		}
		return v, nil
	})
	if err != nil {
		t.Fatalf("no fatal signal expected, got %v", err)
	}
	var pe *outcome.PanicError
	if !results[1].IsFailure() || !errors.As(results[1].Err(), &pe) {
		t.Fatalf("expected captured panic on element 2, got %v", results[1])
	}
}

func TestAll_FatalStopsBatch(t *testing.T) {
	t.Parallel()
	inputs := []int{1, 2, 3}

	results, err := All(context.Background(), inputs, func(_ context.Context, v int) (int, error) {
		if v == 2 {
			return 0, context.Canceled
		}
		return v, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected the fatal error back, got %v", err)
	}
	if len(results) != 1 || !results[0].IsSuccess() {
		t.Fatalf("expected only the outcomes gathered before the fatal, got %v", results)
	}
}

func TestAll_ContextCancelledBetweenInputs(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	results, err := All(ctx, []int{1, 2, 3}, func(_ context.Context, v int) (int, error) {
		calls++
		cancel()
		return v, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
	if calls != 1 || len(results) != 1 {
		t.Fatalf("expected the batch to stop after the first input, got calls=%d, results=%d", calls, len(results))
	}
}

func TestRun_PreservesOrder(t *testing.T) {
	t.Parallel()
	inputs := make([]int, 50)
	for i := range inputs {
		inputs[i] = i
	}

	results, err := Run(context.Background(), inputs, func(_ context.Context, v int) (string, error) {
		if v%7 == 0 {
			return "", fmt.Errorf("mod7: %d", v)
		}
		return strconv.Itoa(v), nil
	}, 4)
	if err != nil {
		t.Fatalf("no fatal signal expected, got %v", err)
	}
	if len(results) != len(inputs) {
		t.Fatalf("expected %d outcomes, got %d", len(inputs), len(results))
	}
	for i, r := range results {
		if i%7 == 0 {
			if !r.IsFailure() {
				t.Fatalf("expected failure at index %d, got %v", i, r)
			}
			continue
		}
		if !r.IsSuccess() || r.GetOrZero() != strconv.Itoa(i) {
			t.Fatalf("order broken at index %d: %v", i, r)
		}
	}
}

func TestRun_FatalStopsDispatch(t *testing.T) {
	t.Parallel()
	inputs := make([]int, 100)
	for i := range inputs {
		inputs[i] = i
	}

	var calls atomic.Int32
	_, err := Run(context.Background(), inputs, func(_ context.Context, v int) (int, error) {
		calls.Add(1)
		if v == 3 {
			return 0, context.Canceled
		}
		return v, nil
	}, 2)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected the fatal error back, got %v", err)
	}
	if int(calls.Load()) == len(inputs) {
		t.Fatalf("expected dispatch to stop before processing every input")
	}
}

func TestToChanCollect(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	results := Collect(ctx, ToChan(ctx, "a", "b", "c"))
	if len(results) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(results))
	}
	for i, want := range []string{"a", "b", "c"} {
		if !results[i].IsSuccess() || results[i].GetOrZero() != want {
			t.Fatalf("unexpected outcome at %d: %v", i, results[i])
		}
	}
}

func TestToChan_StopsOnCancel(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ch := ToChan(ctx, 1, 2, 3)
	var n int
	for range ch {
		n++
	}
	if n != 0 {
		t.Fatalf("expected the producer to emit nothing after cancellation, got %d", n)
	}
}

func TestNotify(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var seen []int
	Notify(ctx, ToChan(ctx, 1, 2, 3), func(o outcome.Outcome[int]) {
		seen = append(seen, o.GetOrZero())
	})
	if len(seen) != 3 || seen[0] != 1 || seen[2] != 3 {
		t.Fatalf("expected all outcomes in order, got %v", seen)
	}
}
