// Package udfspb defines the descriptor-set schema the platform's function
// registry ships to the query compiler. A descriptor set enumerates the scalar
// UDFs, UDAs and UDTFs available to queries, together with the semantic type
// rules attached to them. The compiler consumes it read-only.
package udfspb

import (
	"fmt"

	"github.com/FlorentATo/pixie/schema"
	"github.com/FlorentATo/pixie/types"
)

// UDFInfo is one complete descriptor set.
type UDFInfo struct {
	// Version of the registry that produced this descriptor set, if known.
	Version string `yaml:"version,omitempty"`

	ScalarUDFs        []ScalarUDF    `yaml:"scalar_udfs"`
	UDAs              []UDA          `yaml:"udas"`
	UDTFs             []UDTF         `yaml:"udtfs"`
	SemanticTypeRules []SemanticRule `yaml:"semantic_type_rules"`
}

// ScalarUDF is one concrete overload of a row-wise function.
type ScalarUDF struct {
	Name         string           `yaml:"name"`
	ExecArgTypes []types.DataType `yaml:"exec_arg_types"`
	ReturnType   types.DataType   `yaml:"return_type"`
}

// UDA is one concrete overload of an aggregate.
type UDA struct {
	Name           string           `yaml:"name"`
	UpdateArgTypes []types.DataType `yaml:"update_arg_types"`
	FinalizeType   types.DataType   `yaml:"finalize_type"`
}

// UDTFArg describes one named argument of a table function.
type UDTFArg struct {
	Name         string             `yaml:"name"`
	ArgType      types.DataType     `yaml:"arg_type"`
	SemanticType types.SemanticType `yaml:"semantic_type"`
}

// UDTF is a table function spec. UDTFs are stored verbatim by name; the
// compiler performs no overload resolution on them.
type UDTF struct {
	Name     string          `yaml:"name"`
	Args     []UDTFArg       `yaml:"args"`
	Executor UDTFExecutor    `yaml:"executor"`
	Relation schema.Relation `yaml:"relation"`
}

// UDFExecType tags which kind of function a semantic rule applies to.
type UDFExecType int

const (
	ScalarUDFExec UDFExecType = iota
	UDAExec
)

func (t UDFExecType) String() string {
	switch t {
	case ScalarUDFExec:
		return "SCALAR_UDF"
	case UDAExec:
		return "UDA"
	default:
		panic(fmt.Sprintf("invalid udf exec type: %d", int(t)))
	}
}

var execTypesByName = map[string]UDFExecType{
	"SCALAR_UDF": ScalarUDFExec,
	"UDA":        UDAExec,
}

func UDFExecTypeFromName(name string) (UDFExecType, bool) {
	t, ok := execTypesByName[name]
	return t, ok
}

// SemanticRule maps an ordered semantic-type pattern over a function's
// arguments to the semantic type of its output. types.STUnspecified in a
// pattern position is a wildcard.
type SemanticRule struct {
	Name       string               `yaml:"name"`
	ExecType   UDFExecType          `yaml:"udf_exec_type"`
	ArgTypes   []types.SemanticType `yaml:"arg_types"`
	OutputType types.SemanticType   `yaml:"output_type"`
}

// UDTFExecutor is the placement hint for where a table function may run.
type UDTFExecutor int

const (
	ExecutorUnspecified UDTFExecutor = iota
	ExecutorAllAgents
	ExecutorAllKelvin
	ExecutorOneKelvin
	ExecutorSubsetPEM
	ExecutorSubsetKelvin
)

func (e UDTFExecutor) String() string {
	switch e {
	case ExecutorUnspecified:
		return "UDTF_UNSPECIFIED"
	case ExecutorAllAgents:
		return "UDTF_ALL_AGENTS"
	case ExecutorAllKelvin:
		return "UDTF_ALL_KELVIN"
	case ExecutorOneKelvin:
		return "UDTF_ONE_KELVIN"
	case ExecutorSubsetPEM:
		return "UDTF_SUBSET_PEM"
	case ExecutorSubsetKelvin:
		return "UDTF_SUBSET_KELVIN"
	default:
		panic(fmt.Sprintf("invalid udtf executor: %d", int(e)))
	}
}

var executorsByName = map[string]UDTFExecutor{
	"UDTF_UNSPECIFIED":   ExecutorUnspecified,
	"UDTF_ALL_AGENTS":    ExecutorAllAgents,
	"UDTF_ALL_KELVIN":    ExecutorAllKelvin,
	"UDTF_ONE_KELVIN":    ExecutorOneKelvin,
	"UDTF_SUBSET_PEM":    ExecutorSubsetPEM,
	"UDTF_SUBSET_KELVIN": ExecutorSubsetKelvin,
}

func UDTFExecutorFromName(name string) (UDTFExecutor, bool) {
	e, ok := executorsByName[name]
	return e, ok
}
