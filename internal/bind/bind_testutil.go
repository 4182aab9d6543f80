package bind

import (
	"fmt"
	"testing"

	language "github.com/hanpama/graphbind/internal/language"
)

// mustParseValue parses a GraphQL input literal and fails the test on error.
func mustParseValue(t *testing.T, src string) *language.Value {
	t.Helper()
	v, err := language.ParseValue(src)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return v
}

// countingBinder binds ints and records conversion and release activity so
// tests can verify ordering, short-circuit, and release-exactly-once
// behavior. failAt / panicAt name 0-based conversion ordinals; -1 disables.
type countingBinder struct {
	IntBinder

	converts int
	released []int
	failAt   int
	panicAt  int
}

func newCountingBinder() *countingBinder {
	return &countingBinder{failAt: -1, panicAt: -1}
}

func (b *countingBinder) FromInputValue(v *language.Value) (int, error) {
	ord := b.converts
	b.converts++
	if ord == b.panicAt {
		panic(fmt.Sprintf("converter panic at ordinal %d", ord))
	}
	if ord == b.failAt {
		return 0, fmt.Errorf("element conversion failed at ordinal %d", ord)
	}
	return b.IntBinder.FromInputValue(v)
}

func (b *countingBinder) Release(v int) {
	b.released = append(b.released, v)
}
