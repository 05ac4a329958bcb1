package types

import (
	"fmt"
)

// DataType is the physical type of a value. The set is closed; code switching
// over it is expected to handle every member.
type DataType int

const (
	InvalidData DataType = iota
	Boolean
	Int64
	Uint128
	Float64
	String
	Time64NS
	Duration64NS
)

func (dt DataType) String() string {
	switch dt {
	case InvalidData:
		return "DATA_TYPE_UNKNOWN"
	case Boolean:
		return "BOOLEAN"
	case Int64:
		return "INT64"
	case Uint128:
		return "UINT128"
	case Float64:
		return "FLOAT64"
	case String:
		return "STRING"
	case Time64NS:
		return "TIME64NS"
	case Duration64NS:
		return "DURATION64NS"
	default:
		panic(fmt.Sprintf("invalid data type: %d", int(dt)))
	}
}

var dataTypesByName = map[string]DataType{
	"DATA_TYPE_UNKNOWN": InvalidData,
	"BOOLEAN":           Boolean,
	"INT64":             Int64,
	"UINT128":           Uint128,
	"FLOAT64":           Float64,
	"STRING":            String,
	"TIME64NS":          Time64NS,
	"DURATION64NS":      Duration64NS,
}

// DataTypeFromName maps a descriptor token like "FLOAT64" back to its DataType.
func DataTypeFromName(name string) (DataType, bool) {
	dt, ok := dataTypesByName[name]
	return dt, ok
}

// SemanticType is a domain tag riding on top of a physical type. STUnspecified
// doubles as the wildcard in semantic rule patterns and as the "no metadata"
// result; it never describes an actual payload.
type SemanticType int

const (
	STUnspecified SemanticType = iota
	STNone
	STTime
	STDurationNS
	STUPID
	STASID
	STPodName
	STServiceName
	STNodeName
	STContainerName
	STBytes
	STPercent
	STIPAddress
	STPort
)

func (st SemanticType) String() string {
	switch st {
	case STUnspecified:
		return "ST_UNSPECIFIED"
	case STNone:
		return "ST_NONE"
	case STTime:
		return "ST_TIME_NS"
	case STDurationNS:
		return "ST_DURATION_NS"
	case STUPID:
		return "ST_UPID"
	case STASID:
		return "ST_ASID"
	case STPodName:
		return "ST_POD_NAME"
	case STServiceName:
		return "ST_SERVICE_NAME"
	case STNodeName:
		return "ST_NODE_NAME"
	case STContainerName:
		return "ST_CONTAINER_NAME"
	case STBytes:
		return "ST_BYTES"
	case STPercent:
		return "ST_PERCENT"
	case STIPAddress:
		return "ST_IP_ADDRESS"
	case STPort:
		return "ST_PORT"
	default:
		panic(fmt.Sprintf("invalid semantic type: %d", int(st)))
	}
}

var semanticTypesByName = map[string]SemanticType{
	"ST_UNSPECIFIED":    STUnspecified,
	"ST_NONE":           STNone,
	"ST_TIME_NS":        STTime,
	"ST_DURATION_NS":    STDurationNS,
	"ST_UPID":           STUPID,
	"ST_ASID":           STASID,
	"ST_POD_NAME":       STPodName,
	"ST_SERVICE_NAME":   STServiceName,
	"ST_NODE_NAME":      STNodeName,
	"ST_CONTAINER_NAME": STContainerName,
	"ST_BYTES":          STBytes,
	"ST_PERCENT":        STPercent,
	"ST_IP_ADDRESS":     STIPAddress,
	"ST_PORT":           STPort,
}

// SemanticTypeFromName maps a descriptor token like "ST_BYTES" back to its
// SemanticType.
func SemanticTypeFromName(name string) (SemanticType, bool) {
	st, ok := semanticTypesByName[name]
	return st, ok
}

// UInt128 is a 128-bit unsigned value split into two 64-bit halves. Pods and
// processes are identified by values of this shape.
type UInt128 struct {
	High uint64
	Low  uint64
}

func (u UInt128) String() string {
	return fmt.Sprintf("%016x%016x", u.High, u.Low)
}
