package types

import "fmt"

// ValueType pairs a physical data type with the semantic type inferred for it.
// It is a plain comparable value: equal fields mean equal ValueTypes, and
// callers must never rely on identity of any particular instance.
type ValueType struct {
	DataType     DataType
	SemanticType SemanticType
}

// NewValueType is the canonical way to build a ValueType.
func NewValueType(dt DataType, st SemanticType) ValueType {
	return ValueType{DataType: dt, SemanticType: st}
}

func (vt ValueType) String() string {
	return fmt.Sprintf("ValueType(%s, %s)", vt.DataType, vt.SemanticType)
}
