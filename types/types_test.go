package types

import (
	"fmt"
	"testing"
)

func TestDataTypeNameRoundTrip(t *testing.T) {
	tests := []DataType{
		InvalidData, Boolean, Int64, Uint128, Float64, String, Time64NS, Duration64NS,
	}
	for _, dt := range tests {
		t.Run(dt.String(), func(t *testing.T) {
			got, ok := DataTypeFromName(dt.String())
			if !ok {
				t.Fatalf("DataTypeFromName(%q) not found", dt.String())
			}
			if got != dt {
				t.Errorf("DataTypeFromName(%q) = %v, want %v", dt.String(), got, dt)
			}
		})
	}

	if _, ok := DataTypeFromName("NOT_A_TYPE"); ok {
		t.Errorf("DataTypeFromName accepted an unknown token")
	}
}

func TestSemanticTypeNameRoundTrip(t *testing.T) {
	tests := []SemanticType{
		STUnspecified, STNone, STTime, STDurationNS, STUPID, STASID, STPodName,
		STServiceName, STNodeName, STContainerName, STBytes, STPercent,
		STIPAddress, STPort,
	}
	for _, st := range tests {
		t.Run(st.String(), func(t *testing.T) {
			got, ok := SemanticTypeFromName(st.String())
			if !ok {
				t.Fatalf("SemanticTypeFromName(%q) not found", st.String())
			}
			if got != st {
				t.Errorf("SemanticTypeFromName(%q) = %v, want %v", st.String(), got, st)
			}
		})
	}
}

func TestValueTypeEqualityByValue(t *testing.T) {
	tests := []struct {
		a, b  ValueType
		equal bool
	}{
		{NewValueType(Int64, STBytes), NewValueType(Int64, STBytes), true},
		{NewValueType(Int64, STBytes), NewValueType(Int64, STUPID), false},
		{NewValueType(Int64, STBytes), NewValueType(Float64, STBytes), false},
		{NewValueType(Int64, STUnspecified), ValueType{DataType: Int64}, true},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			if got := tt.a == tt.b; got != tt.equal {
				t.Errorf("%v == %v is %v, want %v", tt.a, tt.b, got, tt.equal)
			}
		})
	}
}
