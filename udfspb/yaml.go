package udfspb

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

func (t UDFExecType) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

func (t *UDFExecType) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return errors.Wrap(err, "couldn't decode udf exec type")
	}
	parsed, ok := UDFExecTypeFromName(name)
	if !ok {
		return errors.Errorf("unknown udf exec type %q", name)
	}
	*t = parsed
	return nil
}

func (e UDTFExecutor) MarshalYAML() (interface{}, error) {
	return e.String(), nil
}

func (e *UDTFExecutor) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return errors.Wrap(err, "couldn't decode udtf executor")
	}
	parsed, ok := UDTFExecutorFromName(name)
	if !ok {
		return errors.Errorf("unknown udtf executor %q", name)
	}
	*e = parsed
	return nil
}
