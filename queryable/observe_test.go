package queryable

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/CarterLi/queryable/logger"
)

func TestLogged_PassThrough(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWriter(&buf, "queryable-test")

	q := Logged(FromSlice([]int{1, 2, 3}), log, "numbers")
	got, err := Collect(context.Background(), q)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2, 3}) {
		t.Errorf("elements changed through logging stage: %v", got)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// 3 pulls plus the exhaustion line.
	if len(lines) != 4 {
		t.Fatalf("expected 4 log lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], `"message":"element pulled"`) {
		t.Errorf("first line missing pull message: %s", lines[0])
	}
	if !strings.Contains(lines[0], `"stage":"numbers"`) {
		t.Errorf("first line missing stage tag: %s", lines[0])
	}
	if !strings.Contains(lines[3], `"message":"sequence exhausted"`) {
		t.Errorf("last line missing exhaustion message: %s", lines[3])
	}
	if !strings.Contains(lines[3], `"count":3`) {
		t.Errorf("exhaustion line missing element count: %s", lines[3])
	}
}

func TestLogged_FaultLogged(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWriter(&buf, "queryable-test")

	pullErr := errors.New("backend gone")
	q := Logged(Map(Of(1), func(_ context.Context, _ int, _ int) (int, error) {
		return 0, pullErr
	}), log, "faulty")
	_, err := Collect(context.Background(), q)
	if err == nil {
		t.Fatal("expected pull error")
	}
	if !strings.Contains(buf.String(), `"message":"pull failed"`) {
		t.Errorf("fault not logged:\n%s", buf.String())
	}
}

func TestLogged_NilLoggerFallsBack(t *testing.T) {
	// A nil logger falls back to the global; the traversal must still work.
	q := Logged(FromSlice([]int{4, 5}), nil, "fallback")
	got, err := Collect(context.Background(), q)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{4, 5}) {
		t.Errorf("got %v, want [4 5]", got)
	}
}

func TestTraced_PassThrough(t *testing.T) {
	// No tracer provider is installed, so spans are no-ops; the stage must
	// still be transparent to the elements.
	q := Traced(Range(5), "range-walk")
	got, err := Collect(context.Background(), q)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{0, 1, 2, 3, 4}) {
		t.Errorf("got %v, want [0 1 2 3 4]", got)
	}
}

func TestTraced_CloseBeforeFirstPull(t *testing.T) {
	q := Traced(Of(1, 2), "abandoned")
	if err := q.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestTraced_CloseMidTraversal(t *testing.T) {
	ctx := context.Background()
	q := Traced(Of(1, 2, 3), "partial")
	if _, _, err := q.Next(ctx); err != nil {
		t.Fatal(err)
	}
	if err := q.Close(); err != nil {
		t.Fatal(err)
	}
	// Closing twice must be harmless.
	if err := q.Close(); err != nil {
		t.Fatal(err)
	}
}
