package queryable

import (
	"context"
	"testing"
)

func TestShift(t *testing.T) {
	q := FromSlice([]int{1, 2, 3, 4, 5}).Shift(2)
	got, err := Collect(context.Background(), q)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{3, 4, 5}) {
		t.Errorf("got %v, want [3 4 5]", got)
	}
}

func TestShift_BeyondLength(t *testing.T) {
	q := FromSlice([]int{1, 2}).Shift(5)
	got, err := Collect(context.Background(), q)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestShift_Zero(t *testing.T) {
	q := FromSlice([]int{1, 2}).Shift(0)
	got, err := Collect(context.Background(), q)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2}) {
		t.Errorf("got %v, want [1 2]", got)
	}
}

func TestPop(t *testing.T) {
	q := FromSlice([]int{1, 2, 3, 4, 5}).Pop(2)
	got, err := Collect(context.Background(), q)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2, 3}) {
		t.Errorf("got %v, want [1 2 3]", got)
	}
}

func TestPop_WindowLargerThanSource(t *testing.T) {
	// Fewer elements than the drop window: everything is withheld.
	q := FromSlice([]int{1, 2}).Pop(5)
	got, err := Collect(context.Background(), q)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestPop_ExactWindow(t *testing.T) {
	q := FromSlice([]int{1, 2, 3}).Pop(3)
	got, err := Collect(context.Background(), q)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestPop_Zero(t *testing.T) {
	q := FromSlice([]int{1, 2}).Pop(0)
	got, err := Collect(context.Background(), q)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2}) {
		t.Errorf("got %v, want [1 2]", got)
	}
}

func TestSlice(t *testing.T) {
	q := FromSlice([]int{1, 2, 3, 4, 5}).Slice(1, 3)
	got, err := Collect(context.Background(), q)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{2, 3}) {
		t.Errorf("got %v, want [2 3]", got)
	}
}

func TestSlice_NegativeEnd(t *testing.T) {
	q := FromSlice([]int{1, 2, 3, 4, 5}).Slice(1, -1)
	got, err := Collect(context.Background(), q)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{2, 3, 4}) {
		t.Errorf("got %v, want [2 3 4]", got)
	}
}

func TestSlice_OpenEnd(t *testing.T) {
	q := FromSlice([]int{1, 2, 3, 4}).Slice(2, End)
	got, err := Collect(context.Background(), q)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{3, 4}) {
		t.Errorf("got %v, want [3 4]", got)
	}
}

func TestSlice_EndBeyondLength(t *testing.T) {
	q := FromSlice([]int{1, 2}).Slice(0, 10)
	got, err := Collect(context.Background(), q)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2}) {
		t.Errorf("got %v, want [1 2]", got)
	}
}

func TestSlice_InvertedBounds(t *testing.T) {
	q := FromSlice([]int{1, 2, 3}).Slice(2, 1)
	got, err := Collect(context.Background(), q)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestSplice_InsertAndDelete(t *testing.T) {
	q := FromSlice([]int{1, 2, 3, 4, 5}).Splice(1, 2, 8, 9)
	got, err := Collect(context.Background(), q)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 8, 9, 4, 5}) {
		t.Errorf("got %v, want [1 8 9 4 5]", got)
	}
}

func TestSplice_DeleteRest(t *testing.T) {
	q := FromSlice([]int{1, 2, 3, 4}).Splice(2, End)
	got, err := Collect(context.Background(), q)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2}) {
		t.Errorf("got %v, want [1 2]", got)
	}
}

func TestSplice_InsertOnly(t *testing.T) {
	q := FromSlice([]int{1, 4}).Splice(1, 0, 2, 3)
	got, err := Collect(context.Background(), q)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2, 3, 4}) {
		t.Errorf("got %v, want [1 2 3 4]", got)
	}
}

func TestSplice_StartBeyondLength(t *testing.T) {
	q := FromSlice([]int{1, 2}).Splice(5, 1, 9)
	got, err := Collect(context.Background(), q)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2, 9}) {
		t.Errorf("got %v, want [1 2 9]", got)
	}
}

func TestSplice_SharedCursor(t *testing.T) {
	// The three phases consume strictly sequential ranges of one cursor:
	// pulling part of the splice output leaves the original cursor advanced
	// exactly that far, not rewound.
	ctx := context.Background()
	base := FromSlice([]int{1, 2, 3, 4, 5})
	spliced := base.Splice(2, 1, 99)

	var head []int
	for i := 0; i < 3; i++ {
		v, ok, err := spliced.Next(ctx)
		if err != nil || !ok {
			t.Fatalf("pull %d: ok=%v err=%v", i, ok, err)
		}
		head = append(head, v)
	}
	if !intSliceEqual(head, []int{1, 2, 99}) {
		t.Fatalf("head = %v, want [1 2 99]", head)
	}
	// The delete window has not run yet; base sits right after element 2.
	v, ok, err := base.Next(ctx)
	if err != nil || !ok || v != 3 {
		t.Errorf("base cursor: val=%d ok=%v err=%v, want 3", v, ok, err)
	}
}

func TestReverse(t *testing.T) {
	q := FromSlice([]int{1, 2, 3}).Reverse()
	got, err := Collect(context.Background(), q)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{3, 2, 1}) {
		t.Errorf("got %v, want [3 2 1]", got)
	}
}

func TestReverse_Empty(t *testing.T) {
	q := FromSlice([]int{}).Reverse()
	got, err := Collect(context.Background(), q)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestReverse_DoubleIsIdentity(t *testing.T) {
	// Iterative implementation: no stack growth with sequence length.
	const n = 5000
	got, err := Collect(context.Background(), Range(n).Reverse().Reverse())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != n {
		t.Fatalf("expected %d elements, got %d", n, len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("element %d = %d, want %d", i, v, i)
		}
	}
}

func TestRing(t *testing.T) {
	r := newRing[int](3)
	if _, ok := r.dequeue(); ok {
		t.Error("empty ring should not dequeue")
	}
	r.enqueue(1)
	r.enqueue(2)
	r.enqueue(3)
	if r.len() != 3 {
		t.Errorf("len = %d, want 3", r.len())
	}
	for want := 1; want <= 3; want++ {
		v, ok := r.dequeue()
		if !ok || v != want {
			t.Errorf("dequeue = %d,%v want %d", v, ok, want)
		}
	}
	// Wrap around the backing array.
	for i := 0; i < 5; i++ {
		r.enqueue(i)
		v, ok := r.dequeue()
		if !ok || v != i {
			t.Errorf("wrap dequeue = %d,%v want %d", v, ok, i)
		}
	}
	r.enqueue(7)
	r.clear()
	if r.len() != 0 {
		t.Errorf("clear should empty the ring, len = %d", r.len())
	}
}
