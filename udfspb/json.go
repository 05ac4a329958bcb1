package udfspb

import (
	"github.com/pkg/errors"
	"github.com/valyala/fastjson"

	"github.com/FlorentATo/pixie/schema"
	"github.com/FlorentATo/pixie/types"
)

// ReadJSON decodes a descriptor set from its JSON form. Field names and enum
// tokens match the YAML form.
func ReadJSON(data []byte) (*UDFInfo, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't parse json descriptor set")
	}
	if v.Type() != fastjson.TypeObject {
		return nil, errors.Errorf("expected JSON object, got %s", v.Type())
	}

	var info UDFInfo
	info.Version = string(v.GetStringBytes("version"))

	for _, item := range v.GetArray("scalar_udfs") {
		udf := ScalarUDF{Name: string(item.GetStringBytes("name"))}
		udf.ExecArgTypes, err = jsonDataTypes(item, "exec_arg_types")
		if err != nil {
			return nil, errors.Wrapf(err, "scalar udf %q", udf.Name)
		}
		udf.ReturnType, err = jsonDataType(item, "return_type")
		if err != nil {
			return nil, errors.Wrapf(err, "scalar udf %q", udf.Name)
		}
		info.ScalarUDFs = append(info.ScalarUDFs, udf)
	}

	for _, item := range v.GetArray("udas") {
		uda := UDA{Name: string(item.GetStringBytes("name"))}
		uda.UpdateArgTypes, err = jsonDataTypes(item, "update_arg_types")
		if err != nil {
			return nil, errors.Wrapf(err, "uda %q", uda.Name)
		}
		uda.FinalizeType, err = jsonDataType(item, "finalize_type")
		if err != nil {
			return nil, errors.Wrapf(err, "uda %q", uda.Name)
		}
		info.UDAs = append(info.UDAs, uda)
	}

	for _, item := range v.GetArray("udtfs") {
		udtf, err := jsonUDTF(item)
		if err != nil {
			return nil, err
		}
		info.UDTFs = append(info.UDTFs, udtf)
	}

	for _, item := range v.GetArray("semantic_type_rules") {
		rule := SemanticRule{Name: string(item.GetStringBytes("name"))}
		execName := string(item.GetStringBytes("udf_exec_type"))
		execType, ok := UDFExecTypeFromName(execName)
		if !ok {
			return nil, errors.Errorf("semantic type rule %q: unknown udf exec type %q", rule.Name, execName)
		}
		rule.ExecType = execType
		rule.ArgTypes, err = jsonSemanticTypes(item, "arg_types")
		if err != nil {
			return nil, errors.Wrapf(err, "semantic type rule %q", rule.Name)
		}
		outName := string(item.GetStringBytes("output_type"))
		out, ok := types.SemanticTypeFromName(outName)
		if !ok {
			return nil, errors.Errorf("semantic type rule %q: unknown semantic type %q", rule.Name, outName)
		}
		rule.OutputType = out
		info.SemanticTypeRules = append(info.SemanticTypeRules, rule)
	}

	if err := info.Validate(); err != nil {
		return nil, err
	}
	return &info, nil
}

func jsonUDTF(item *fastjson.Value) (UDTF, error) {
	udtf := UDTF{Name: string(item.GetStringBytes("name"))}

	for _, arg := range item.GetArray("args") {
		argType, err := jsonDataType(arg, "arg_type")
		if err != nil {
			return UDTF{}, errors.Wrapf(err, "udtf %q", udtf.Name)
		}
		semType, err := jsonSemanticType(arg, "semantic_type")
		if err != nil {
			return UDTF{}, errors.Wrapf(err, "udtf %q", udtf.Name)
		}
		udtf.Args = append(udtf.Args, UDTFArg{
			Name:         string(arg.GetStringBytes("name")),
			ArgType:      argType,
			SemanticType: semType,
		})
	}

	execName := string(item.GetStringBytes("executor"))
	if execName != "" {
		executor, ok := UDTFExecutorFromName(execName)
		if !ok {
			return UDTF{}, errors.Errorf("udtf %q: unknown executor %q", udtf.Name, execName)
		}
		udtf.Executor = executor
	}

	for _, col := range item.Get("relation").GetArray("columns") {
		colType, err := jsonDataType(col, "column_type")
		if err != nil {
			return UDTF{}, errors.Wrapf(err, "udtf %q relation", udtf.Name)
		}
		column := schema.Column{
			Name: string(col.GetStringBytes("column_name")),
			Type: colType,
		}
		if col.Exists("column_semantic_type") {
			column.SemanticType, err = jsonSemanticType(col, "column_semantic_type")
			if err != nil {
				return UDTF{}, errors.Wrapf(err, "udtf %q relation", udtf.Name)
			}
		}
		udtf.Relation.Columns = append(udtf.Relation.Columns, column)
	}

	return udtf, nil
}

func jsonDataType(v *fastjson.Value, key string) (types.DataType, error) {
	name := string(v.GetStringBytes(key))
	dt, ok := types.DataTypeFromName(name)
	if !ok {
		return types.InvalidData, errors.Errorf("unknown data type %q for %q", name, key)
	}
	return dt, nil
}

func jsonDataTypes(v *fastjson.Value, key string) ([]types.DataType, error) {
	items := v.GetArray(key)
	out := make([]types.DataType, len(items))
	for i, item := range items {
		name := string(item.GetStringBytes())
		dt, ok := types.DataTypeFromName(name)
		if !ok {
			return nil, errors.Errorf("unknown data type %q in %q", name, key)
		}
		out[i] = dt
	}
	return out, nil
}

func jsonSemanticType(v *fastjson.Value, key string) (types.SemanticType, error) {
	name := string(v.GetStringBytes(key))
	st, ok := types.SemanticTypeFromName(name)
	if !ok {
		return types.STUnspecified, errors.Errorf("unknown semantic type %q for %q", name, key)
	}
	return st, nil
}

func jsonSemanticTypes(v *fastjson.Value, key string) ([]types.SemanticType, error) {
	items := v.GetArray(key)
	out := make([]types.SemanticType, len(items))
	for i, item := range items {
		name := string(item.GetStringBytes())
		st, ok := types.SemanticTypeFromName(name)
		if !ok {
			return nil, errors.Errorf("unknown semantic type %q in %q", name, key)
		}
		out[i] = st
	}
	return out, nil
}
