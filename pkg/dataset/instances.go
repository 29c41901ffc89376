package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/quboverify/quboverify/pkg/api"
	"github.com/quboverify/quboverify/pkg/problem"
	"sigs.k8s.io/yaml"
)

// ErrUnknownProblem is returned for problem names without a known instance type.
var ErrUnknownProblem = errors.New("unknown problem")

// DefaultInstanceFileName is looked up in the XDG config directories when no instance file is given.
const DefaultInstanceFileName = "quboverify/instances.yaml"

// LoadInstanceFile reads a YAML or JSON instance file.
func LoadInstanceFile(file string) ([]problem.Instance, []string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, nil, err
	}
	entries := &api.Instances{}
	if err := yaml.Unmarshal(data, entries); err != nil {
		return nil, nil, fmt.Errorf("failed to parse instance file %s: %v", file, err)
	}
	var instances []problem.Instance
	var names []string
	for i, entry := range entries.Instances {
		inst, err := DecodeInstance(entry.Problem, entry.Source)
		if err != nil {
			return nil, nil, fmt.Errorf("instance %d in %s: %w", i, file, err)
		}
		name := entry.Name
		if name == "" {
			name = RecordName(inst)
		}
		instances = append(instances, inst)
		names = append(names, name)
	}
	return instances, names, nil
}

// LoadInstance reads a single YAML or JSON entry with a problem name and its source.
func LoadInstance(file string) (problem.Instance, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	entry := &api.Instance{}
	if err := yaml.Unmarshal(data, entry); err != nil {
		return nil, fmt.Errorf("failed to parse instance %s: %v", file, err)
	}
	return DecodeInstance(entry.Problem, entry.Source)
}

// DefaultInstanceFile returns the instance file from the XDG config directories, if there is one.
func DefaultInstanceFile() (string, bool) {
	file, err := xdg.SearchConfigFile(DefaultInstanceFileName)
	if err != nil {
		return "", false
	}
	return file, true
}

// NewInstance returns an empty instance for the given problem name.
func NewInstance(name string) (problem.Instance, error) {
	switch name {
	case "VertexCovering", "VertexCover":
		return &problem.VertexCover{}, nil
	case "IndependentSet":
		return &problem.IndependentSet{}, nil
	case "Coloring":
		return &problem.Coloring{}, nil
	case "SetPacking":
		return &problem.SetPacking{}, nil
	case "KSatisfiability":
		return &problem.KSatisfiability{}, nil
	case "ILP":
		return &problem.ILP{}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownProblem, name)
}

// DecodeInstance turns the source of a record or instance file entry into a validated instance.
func DecodeInstance(name string, source json.RawMessage) (problem.Instance, error) {
	inst, err := NewInstance(name)
	if err != nil {
		return nil, err
	}
	d := json.NewDecoder(bytes.NewReader(source))
	d.DisallowUnknownFields()
	if err := d.Decode(inst); err != nil {
		return nil, fmt.Errorf("failed to decode %s instance: %v", name, err)
	}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}

// RecordName is the default record base name of an instance.
func RecordName(inst problem.Instance) string {
	return strings.ToLower(inst.Name()) + "_to_qubo"
}
