// Package planner implements the function registry the query compiler
// resolves call sites against: exact-match overload tables for scalar UDFs and
// UDAs, wildcard semantic-type rules, and the combined per-call resolution
// entry point.
package planner

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/FlorentATo/pixie/types"
	"github.com/FlorentATo/pixie/udfspb"
)

// UDFExecType says which kind of function a name resolves to.
type UDFExecType int

const (
	ScalarUDF UDFExecType = iota
	UDA
)

func (t UDFExecType) String() string {
	if t == UDA {
		return "UDA"
	}
	return "ScalarUDF"
}

// RegistryInfo is the compiler's view of one ingested descriptor set. It is
// immutable once built, so all lookups are safe for concurrent use across
// compilation contexts.
type RegistryInfo struct {
	udfs          overloadTable
	udas          overloadTable
	semanticRules *SemanticRuleRegistry
	udtfs         []udfspb.UDTF
}

// NewRegistryInfo ingests a descriptor set and builds the resolution tables.
// Duplicate signatures, duplicate semantic rule patterns, names registered as
// both scalar UDF and UDA, and rules referencing unknown functions all fail
// with ErrInvalidDescriptor.
func NewRegistryInfo(info *udfspb.UDFInfo) (*RegistryInfo, error) {
	r := &RegistryInfo{
		udfs:          newOverloadTable(),
		udas:          newOverloadTable(),
		semanticRules: NewSemanticRuleRegistry(),
	}

	for _, udf := range info.ScalarUDFs {
		if err := r.udfs.insert(udf.Name, udf.ExecArgTypes, udf.ReturnType); err != nil {
			return nil, err
		}
	}
	for _, uda := range info.UDAs {
		if r.udfs.has(uda.Name) {
			return nil, errors.Wrapf(ErrInvalidDescriptor,
				"%q is registered as both a scalar UDF and a UDA", uda.Name)
		}
		if err := r.udas.insert(uda.Name, uda.UpdateArgTypes, uda.FinalizeType); err != nil {
			return nil, err
		}
	}

	for _, rule := range info.SemanticTypeRules {
		switch rule.ExecType {
		case udfspb.ScalarUDFExec:
			if !r.udfs.has(rule.Name) {
				return nil, errors.Wrapf(ErrInvalidDescriptor,
					"semantic rule references unknown scalar UDF %q", rule.Name)
			}
		case udfspb.UDAExec:
			if !r.udas.has(rule.Name) {
				return nil, errors.Wrapf(ErrInvalidDescriptor,
					"semantic rule references unknown UDA %q", rule.Name)
			}
		}
		if err := r.semanticRules.Insert(rule.Name, rule.ArgTypes, rule.OutputType); err != nil {
			return nil, err
		}
	}

	r.udtfs = append(r.udtfs, info.UDTFs...)
	return r, nil
}

// GetUDFExecType reports whether name is a scalar UDF or a UDA.
func (r *RegistryInfo) GetUDFExecType(name string) (UDFExecType, error) {
	if r.udfs.has(name) {
		return ScalarUDF, nil
	}
	if r.udas.has(name) {
		return UDA, nil
	}
	return ScalarUDF, errors.Wrapf(ErrNotFound, "%q", name)
}

// GetUDFDataType resolves a scalar UDF call's return type by exact
// argument-type match.
func (r *RegistryInfo) GetUDFDataType(name string, argTypes []types.DataType) (types.DataType, error) {
	return r.udfs.resolve(name, argTypes)
}

// GetUDADataType resolves a UDA's finalize type by exact update-argument-type
// match.
func (r *RegistryInfo) GetUDADataType(name string, updateArgTypes []types.DataType) (types.DataType, error) {
	return r.udas.resolve(name, updateArgTypes)
}

// ResolveUDFType resolves one call site: the physical return type comes from
// the overload tables (scalar UDFs first, then UDAs) and the semantic type
// from the rule registry. A missing semantic rule is not an error; the result
// degrades to STUnspecified. A failed overload resolution always propagates.
func (r *RegistryInfo) ResolveUDFType(name string, args []types.ValueType) (types.ValueType, error) {
	argTypes := make([]types.DataType, len(args))
	semTypes := make([]types.SemanticType, len(args))
	for i, arg := range args {
		argTypes[i] = arg.DataType
		semTypes[i] = arg.SemanticType
	}

	var dataType types.DataType
	var err error
	if r.udfs.has(name) {
		dataType, err = r.udfs.resolve(name, argTypes)
	} else {
		dataType, err = r.udas.resolve(name, argTypes)
	}
	if err != nil {
		return types.ValueType{}, err
	}

	semType, err := r.semanticRules.Lookup(name, semTypes)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return types.ValueType{}, err
		}
		semType = types.STUnspecified
	}

	return types.NewValueType(dataType, semType), nil
}

// FuncNames returns the names of all registered scalar UDFs and UDAs, sorted.
// UDTF names are deliberately excluded; those live in a separate namespace.
func (r *RegistryInfo) FuncNames() []string {
	names := append(r.udfs.names(), r.udas.names()...)
	sort.Strings(names)
	return names
}

// UDTFs returns the registered table function specs in registration order.
func (r *RegistryInfo) UDTFs() []udfspb.UDTF {
	return r.udtfs
}
