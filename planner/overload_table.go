package planner

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/FlorentATo/pixie/types"
)

type signature struct {
	argTypes []types.DataType
	output   types.DataType
}

// overloadTable maps a function name to its registered overloads and resolves
// calls by exact argument-type match. One instance exists per function kind.
type overloadTable struct {
	overloads map[string][]signature
}

func newOverloadTable() overloadTable {
	return overloadTable{overloads: map[string][]signature{}}
}

func (t *overloadTable) insert(name string, argTypes []types.DataType, output types.DataType) error {
	for _, sig := range t.overloads[name] {
		if dataTypesEqual(sig.argTypes, argTypes) {
			return errors.Wrapf(ErrInvalidDescriptor,
				"duplicate signature %s%s", name, formatArgTypes(argTypes))
		}
	}
	t.overloads[name] = append(t.overloads[name], signature{
		argTypes: argTypes,
		output:   output,
	})
	return nil
}

func (t *overloadTable) has(name string) bool {
	_, ok := t.overloads[name]
	return ok
}

func (t *overloadTable) resolve(name string, argTypes []types.DataType) (types.DataType, error) {
	sigs, ok := t.overloads[name]
	if !ok {
		return types.InvalidData, errors.Wrapf(ErrNotFound, "%q", name)
	}
	for _, sig := range sigs {
		if dataTypesEqual(sig.argTypes, argTypes) {
			return sig.output, nil
		}
	}
	return types.InvalidData, errors.Wrapf(ErrSignatureMismatch,
		"%s%s", name, formatArgTypes(argTypes))
}

func (t *overloadTable) names() []string {
	out := make([]string, 0, len(t.overloads))
	for name := range t.overloads {
		out = append(out, name)
	}
	return out
}

func dataTypesEqual(a, b []types.DataType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func formatArgTypes(argTypes []types.DataType) string {
	parts := make([]string, len(argTypes))
	for i, dt := range argTypes {
		parts[i] = dt.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
