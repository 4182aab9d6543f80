package bind

import (
	"context"

	language "github.com/hanpama/graphbind/internal/language"
	schema "github.com/hanpama/graphbind/internal/schema"
)

// TypeInfo carries runtime type metadata through the capability contract.
// It is unconstrained; binders that need nothing ignore it.
type TypeInfo = any

// Binder is the capability contract a bindable Go type satisfies. One binder
// instance serves any number of values of its type; implementations must be
// safe for concurrent use.
type Binder[T any] interface {
	// Describe returns the structural descriptor for the bound type.
	// Pure: no side effects, same result for the same info.
	Describe(info TypeInfo) *schema.TypeRef

	// ResolveValue produces the output value for v against a selection set,
	// or the bare value when no sub-selection applies.
	ResolveValue(v T, sel language.SelectionSet, info TypeInfo, ex *Executor) (any, error)

	// ResolveValueAsync is the asynchronous variant. Ordering and error
	// semantics match ResolveValue; ctx cancels outstanding element work.
	ResolveValueAsync(ctx context.Context, v T, sel language.SelectionSet, info TypeInfo, ex *Executor) (any, error)

	// ToInputValue re-encodes v as an input literal.
	ToInputValue(v T) *language.Value

	// FromInputValue reconstructs a native value from an input literal.
	// The literal is borrowed for the duration of the call.
	FromInputValue(v *language.Value) (T, error)

	// FromAbsentValue handles a field that was omitted rather than set to
	// an explicit null. Most binders treat the two alike.
	FromAbsentValue() (T, error)

	// Release frees any resources held by a value this binder produced.
	// Containers call it for each live element when abandoning a partially
	// constructed value.
	Release(v T)
}
