package types

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// The YAML form of both enums is the descriptor token name, e.g. FLOAT64 or
// ST_POD_NAME, matching the spelling used by the platform's registry dumps.

func (dt DataType) MarshalYAML() (interface{}, error) {
	return dt.String(), nil
}

func (dt *DataType) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return errors.Wrap(err, "couldn't decode data type")
	}
	parsed, ok := DataTypeFromName(name)
	if !ok {
		return errors.Errorf("unknown data type %q", name)
	}
	*dt = parsed
	return nil
}

func (st SemanticType) MarshalYAML() (interface{}, error) {
	return st.String(), nil
}

func (st *SemanticType) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return errors.Wrap(err, "couldn't decode semantic type")
	}
	parsed, ok := SemanticTypeFromName(name)
	if !ok {
		return errors.Errorf("unknown semantic type %q", name)
	}
	*st = parsed
	return nil
}
