package udfspb

import (
	"io"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Descriptor sets are accepted from registries up to the next major version.
var supportedVersions = func() *semver.Constraints {
	c, err := semver.NewConstraint("< 2.0.0")
	if err != nil {
		panic(err)
	}
	return c
}()

// ReadYAML decodes a descriptor set from its YAML form.
func ReadYAML(r io.Reader) (*UDFInfo, error) {
	var info UDFInfo
	if err := yaml.NewDecoder(r).Decode(&info); err != nil {
		return nil, errors.Wrap(err, "couldn't decode yaml descriptor set")
	}
	if err := info.Validate(); err != nil {
		return nil, err
	}
	return &info, nil
}

// ReadFile loads a descriptor set from disk, picking the decoder by file
// extension (.json is JSON, everything else is YAML).
func ReadFile(path string) (*UDFInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't read descriptor set file")
	}
	if filepath.Ext(path) == ".json" {
		return ReadJSON(data)
	}
	var info UDFInfo
	if err := yaml.Unmarshal(data, &info); err != nil {
		return nil, errors.Wrap(err, "couldn't decode yaml descriptor set")
	}
	if err := info.Validate(); err != nil {
		return nil, err
	}
	return &info, nil
}

// Validate performs the structural checks that don't need the registry's
// tables: version compatibility and per-entry completeness.
func (info *UDFInfo) Validate() error {
	if info.Version != "" {
		v, err := semver.NewVersion(info.Version)
		if err != nil {
			return errors.Wrapf(err, "couldn't parse descriptor set version %q", info.Version)
		}
		if !supportedVersions.Check(v) {
			return errors.Errorf("descriptor set version %s is not supported", info.Version)
		}
	}
	for i := range info.ScalarUDFs {
		if info.ScalarUDFs[i].Name == "" {
			return errors.Errorf("scalar udf %d has no name", i)
		}
	}
	for i := range info.UDAs {
		if info.UDAs[i].Name == "" {
			return errors.Errorf("uda %d has no name", i)
		}
	}
	for i := range info.UDTFs {
		if info.UDTFs[i].Name == "" {
			return errors.Errorf("udtf %d has no name", i)
		}
	}
	for i := range info.SemanticTypeRules {
		if info.SemanticTypeRules[i].Name == "" {
			return errors.Errorf("semantic type rule %d has no name", i)
		}
	}
	return nil
}
