// Package language wraps the gqlparser AST behind local names and adds the
// input-literal helpers the binding layer needs: standalone literal parsing,
// constructors, and position-insensitive structural equality.
package language

import (
	"fmt"
	"strconv"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

func ParseQuery(source string) (*QueryDocument, error) {
	doc, err := parser.ParseQuery(&ast.Source{Input: source})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseValue parses a standalone constant input literal such as
// "[1, 2, 3]" or `{a: "x"}`. Variables are not allowed.
func ParseValue(source string) (*Value, error) {
	doc, err := parser.ParseQuery(&ast.Source{Name: "value", Input: "{ probe(v: " + source + ") }"})
	if err != nil {
		return nil, err
	}
	if len(doc.Operations) != 1 || len(doc.Operations[0].SelectionSet) != 1 {
		return nil, fmt.Errorf("not a single value literal: %q", source)
	}
	field, ok := doc.Operations[0].SelectionSet[0].(*Field)
	if !ok || len(field.Arguments) != 1 {
		return nil, fmt.Errorf("not a single value literal: %q", source)
	}
	v := field.Arguments[0].Value
	if containsVariable(v) {
		return nil, fmt.Errorf("value literal may not contain variables: %q", source)
	}
	return v, nil
}

func containsVariable(v *Value) bool {
	if v == nil {
		return false
	}
	if v.Kind == Variable {
		return true
	}
	for _, c := range v.Children {
		if containsVariable(c.Value) {
			return true
		}
	}
	return false
}

// Literal constructors. Raw encodings match what the parser produces so that
// constructed and parsed literals compare equal under ValueEqual.

func Null() *Value { return &Value{Kind: NullValue, Raw: "null"} }

func Int(v int) *Value { return &Value{Kind: IntValue, Raw: strconv.Itoa(v)} }

func Float(v float64) *Value {
	return &Value{Kind: FloatValue, Raw: strconv.FormatFloat(v, 'g', -1, 64)}
}

func String(v string) *Value { return &Value{Kind: StringValue, Raw: v} }

func Boolean(v bool) *Value { return &Value{Kind: BooleanValue, Raw: strconv.FormatBool(v)} }

func Enum(name string) *Value { return &Value{Kind: EnumValue, Raw: name} }

func List(items ...*Value) *Value {
	children := make(ast.ChildValueList, len(items))
	for i, item := range items {
		children[i] = &ChildValue{Value: item}
	}
	return &Value{Kind: ListValue, Children: children}
}

func Object(fields ...*ChildValue) *Value {
	return &Value{Kind: ObjectValue, Children: append(ast.ChildValueList(nil), fields...)}
}

func ObjectField(name string, v *Value) *ChildValue {
	return &ChildValue{Name: name, Value: v}
}

// ValueEqual reports structural equality of two literals, ignoring source
// positions.
func ValueEqual(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Raw != b.Raw {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i, ca := range a.Children {
		cb := b.Children[i]
		if ca.Name != cb.Name || !ValueEqual(ca.Value, cb.Value) {
			return false
		}
	}
	return true
}
