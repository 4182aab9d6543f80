package main

import (
	"context"
	"fmt"
	"strconv"
	"unicode"

	"github.com/hanpama/graphbind/internal/bind"
	"github.com/hanpama/graphbind/internal/language"
	"github.com/hanpama/graphbind/internal/schema"
)

// parseTypeExpr builds a binder stack from a type expression:
//
//	expr   := scalar | "[" expr ";" count "]" | "&" expr
//	scalar := "Int" | "Float" | "String" | "Boolean" | "ID"
//
// The engine dispatches binders statically; the CLI is the one place where a
// stack is composed at runtime, so every layer is erased to Binder[any].
func parseTypeExpr(src string) (bind.Binder[any], error) {
	p := &typeParser{src: src}
	b, err := p.parse()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("trailing input in type expression at %d: %q", p.pos, src[p.pos:])
	}
	return b, nil
}

type typeParser struct {
	src string
	pos int
}

func (p *typeParser) parse() (bind.Binder[any], error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, fmt.Errorf("unexpected end of type expression %q", p.src)
	}
	switch p.src[p.pos] {
	case '&':
		p.pos++
		inner, err := p.parse()
		if err != nil {
			return nil, err
		}
		return erase[*any](bind.NewBoxBinder[any](inner)), nil
	case '[':
		p.pos++
		inner, err := p.parse()
		if err != nil {
			return nil, err
		}
		if err := p.expect(';'); err != nil {
			return nil, err
		}
		count, err := p.parseCount()
		if err != nil {
			return nil, err
		}
		if err := p.expect(']'); err != nil {
			return nil, err
		}
		return erase[bind.Array[any]](bind.NewArrayBinder[any](inner, count)), nil
	default:
		return p.parseScalar()
	}
}

func (p *typeParser) parseScalar() (bind.Binder[any], error) {
	start := p.pos
	for p.pos < len(p.src) && unicode.IsLetter(rune(p.src[p.pos])) {
		p.pos++
	}
	name := p.src[start:p.pos]
	switch name {
	case "Int":
		return erase[int](bind.IntBinder{}), nil
	case "Float":
		return erase[float64](bind.FloatBinder{}), nil
	case "String":
		return erase[string](bind.StringBinder{}), nil
	case "Boolean":
		return erase[bool](bind.BooleanBinder{}), nil
	case "ID":
		return erase[string](bind.IDBinder{}), nil
	default:
		return nil, fmt.Errorf("unknown scalar %q at %d in %q", name, start, p.src)
	}
}

func (p *typeParser) parseCount() (int, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) && unicode.IsDigit(rune(p.src[p.pos])) {
		p.pos++
	}
	if start == p.pos {
		return 0, fmt.Errorf("expected array size at %d in %q", start, p.src)
	}
	return strconv.Atoi(p.src[start:p.pos])
}

func (p *typeParser) expect(c byte) error {
	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != c {
		return fmt.Errorf("expected %q at %d in %q", string(c), p.pos, p.src)
	}
	p.pos++
	return nil
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

// dyn adapts a typed binder to Binder[any] for runtime composition.
type dyn[T any] struct {
	b bind.Binder[T]
}

func erase[T any](b bind.Binder[T]) bind.Binder[any] { return dyn[T]{b: b} }

func (d dyn[T]) Describe(info bind.TypeInfo) *schema.TypeRef { return d.b.Describe(info) }

func (d dyn[T]) ResolveValue(v any, sel language.SelectionSet, info bind.TypeInfo, ex *bind.Executor) (any, error) {
	return d.b.ResolveValue(v.(T), sel, info, ex)
}

func (d dyn[T]) ResolveValueAsync(ctx context.Context, v any, sel language.SelectionSet, info bind.TypeInfo, ex *bind.Executor) (any, error) {
	return d.b.ResolveValueAsync(ctx, v.(T), sel, info, ex)
}

func (d dyn[T]) ToInputValue(v any) *language.Value { return d.b.ToInputValue(v.(T)) }

func (d dyn[T]) FromInputValue(v *language.Value) (any, error) {
	out, err := d.b.FromInputValue(v)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (d dyn[T]) FromAbsentValue() (any, error) {
	out, err := d.b.FromAbsentValue()
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (d dyn[T]) Release(v any) { d.b.Release(v.(T)) }
