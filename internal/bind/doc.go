// Package bind adapts native Go containers to the engine's dynamically-shaped
// value representation: GraphQL input literals on the way in, resolved output
// values on the way out.
//
// # Capability contract
//
// A bindable type participates through a companion Binder object rather than
// methods on the type itself (decoding must construct a fresh value, and Go
// has no static methods). Binder[T] covers the full contract:
//
//   - Describe: structural type descriptor for introspection.
//   - ResolveValue / ResolveValueAsync: output-value production for a
//     selection set.
//   - ToInputValue: re-encode a native value as an input literal (defaults,
//     introspection, round-tripping).
//   - FromInputValue / FromAbsentValue: reconstruct a native value from a
//     literal, or from an omitted field.
//   - Release: free element resources; containers call it when abandoning a
//     partially built value.
//
// Dispatch is static: the engine knows the schema position's type at compile
// time and holds the matching binder. Nothing here inspects runtime tags.
//
// # Exact-length arrays
//
// ArrayBinder decodes a dynamically-sized input list into a container whose
// length is fixed by the binder. The decode path checks shape before touching
// any element (null is rejected, a bare value coerces to a singleton only for
// size 1, a wrong-length list fails with both counts), then converts elements
// in order into a staging buffer. The element converter is caller-supplied
// and untrusted: if it fails or panics partway, exactly the already-converted
// prefix is released, once, and no later element is converted. On success the
// staging buffer's contents transfer into the finished container in a single
// step; the abandoned-cleanup path never sees transferred elements.
//
// Encode has no partial-construction concern: elements are produced in order
// through the list resolution helpers and the first failure propagates.
//
// # Boxes
//
// BoxBinder makes a single-owner pointer wrapper transparent: every
// read-direction operation forwards through the pointer to the inner binder,
// while decoding goes the other way — the inner type decodes to a plain
// value and a fresh allocation takes ownership of it. The asymmetry is the
// point: decode is where ownership begins, so it never reuses an allocation.
//
// # Errors
//
// Decode failures surface as ErrNullValue, *WrongCountError, or *ItemError;
// user-facing messages carry a fixed prefix plus detail, except item errors,
// which pass the element's own message through unmodified. All are terminal
// for the call; a failed decode leaves nothing allocated, so retrying on
// fresh input is always safe.
package bind
