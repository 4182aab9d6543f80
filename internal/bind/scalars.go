package bind

import (
	"context"
	"fmt"
	"strconv"

	language "github.com/hanpama/graphbind/internal/language"
	schema "github.com/hanpama/graphbind/internal/schema"
)

// Scalar binders give the container adapters concrete element types. They
// convert already-parsed literals; scalar token parsing belongs to the query
// parser, not here. None of them hold resources, so Release is a no-op.

type IntBinder struct{}

func (IntBinder) Describe(TypeInfo) *schema.TypeRef { return schema.NamedType("Int") }

func (IntBinder) ResolveValue(v int, _ language.SelectionSet, _ TypeInfo, _ *Executor) (any, error) {
	return v, nil
}

func (IntBinder) ResolveValueAsync(_ context.Context, v int, _ language.SelectionSet, _ TypeInfo, _ *Executor) (any, error) {
	return v, nil
}

func (IntBinder) ToInputValue(v int) *language.Value { return language.Int(v) }

func (IntBinder) FromInputValue(v *language.Value) (int, error) {
	if v != nil && v.Kind == language.IntValue {
		n, err := strconv.Atoi(v.Raw)
		if err == nil {
			return n, nil
		}
	}
	return 0, coercionError(v, "Int")
}

func (b IntBinder) FromAbsentValue() (int, error) { return b.FromInputValue(language.Null()) }

func (IntBinder) Release(int) {}

type FloatBinder struct{}

func (FloatBinder) Describe(TypeInfo) *schema.TypeRef { return schema.NamedType("Float") }

func (FloatBinder) ResolveValue(v float64, _ language.SelectionSet, _ TypeInfo, _ *Executor) (any, error) {
	return v, nil
}

func (FloatBinder) ResolveValueAsync(_ context.Context, v float64, _ language.SelectionSet, _ TypeInfo, _ *Executor) (any, error) {
	return v, nil
}

func (FloatBinder) ToInputValue(v float64) *language.Value { return language.Float(v) }

func (FloatBinder) FromInputValue(v *language.Value) (float64, error) {
	if v != nil && (v.Kind == language.FloatValue || v.Kind == language.IntValue) {
		f, err := strconv.ParseFloat(v.Raw, 64)
		if err == nil {
			return f, nil
		}
	}
	return 0, coercionError(v, "Float")
}

func (b FloatBinder) FromAbsentValue() (float64, error) { return b.FromInputValue(language.Null()) }

func (FloatBinder) Release(float64) {}

type StringBinder struct{}

func (StringBinder) Describe(TypeInfo) *schema.TypeRef { return schema.NamedType("String") }

func (StringBinder) ResolveValue(v string, _ language.SelectionSet, _ TypeInfo, _ *Executor) (any, error) {
	return v, nil
}

func (StringBinder) ResolveValueAsync(_ context.Context, v string, _ language.SelectionSet, _ TypeInfo, _ *Executor) (any, error) {
	return v, nil
}

func (StringBinder) ToInputValue(v string) *language.Value { return language.String(v) }

func (StringBinder) FromInputValue(v *language.Value) (string, error) {
	if v != nil && (v.Kind == language.StringValue || v.Kind == language.BlockValue) {
		return v.Raw, nil
	}
	return "", coercionError(v, "String")
}

func (b StringBinder) FromAbsentValue() (string, error) { return b.FromInputValue(language.Null()) }

func (StringBinder) Release(string) {}

type BooleanBinder struct{}

func (BooleanBinder) Describe(TypeInfo) *schema.TypeRef { return schema.NamedType("Boolean") }

func (BooleanBinder) ResolveValue(v bool, _ language.SelectionSet, _ TypeInfo, _ *Executor) (any, error) {
	return v, nil
}

func (BooleanBinder) ResolveValueAsync(_ context.Context, v bool, _ language.SelectionSet, _ TypeInfo, _ *Executor) (any, error) {
	return v, nil
}

func (BooleanBinder) ToInputValue(v bool) *language.Value { return language.Boolean(v) }

func (BooleanBinder) FromInputValue(v *language.Value) (bool, error) {
	if v != nil && v.Kind == language.BooleanValue {
		return v.Raw == "true", nil
	}
	return false, coercionError(v, "Boolean")
}

func (b BooleanBinder) FromAbsentValue() (bool, error) { return b.FromInputValue(language.Null()) }

func (BooleanBinder) Release(bool) {}

// IDBinder accepts string and integer literals, serializing both to string.
type IDBinder struct{}

func (IDBinder) Describe(TypeInfo) *schema.TypeRef { return schema.NamedType("ID") }

func (IDBinder) ResolveValue(v string, _ language.SelectionSet, _ TypeInfo, _ *Executor) (any, error) {
	return v, nil
}

func (IDBinder) ResolveValueAsync(_ context.Context, v string, _ language.SelectionSet, _ TypeInfo, _ *Executor) (any, error) {
	return v, nil
}

func (IDBinder) ToInputValue(v string) *language.Value { return language.String(v) }

func (IDBinder) FromInputValue(v *language.Value) (string, error) {
	if v != nil {
		switch v.Kind {
		case language.StringValue, language.IntValue:
			return v.Raw, nil
		}
	}
	return "", coercionError(v, "ID")
}

func (b IDBinder) FromAbsentValue() (string, error) { return b.FromInputValue(language.Null()) }

func (IDBinder) Release(string) {}

func coercionError(v *language.Value, target string) error {
	if v == nil || v.Kind == language.NullValue {
		return fmt.Errorf("cannot coerce null to %s", target)
	}
	return fmt.Errorf("cannot coerce %s to %s", v.String(), target)
}
