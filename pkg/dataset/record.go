package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quboverify/quboverify/pkg/api"
	"github.com/quboverify/quboverify/pkg/problem"
	"github.com/quboverify/quboverify/pkg/qubo"
	"github.com/quboverify/quboverify/pkg/reduction"
)

// NewRecord assembles the ground truth record of a reduced and solved instance.
func NewRecord(inst problem.Instance, red *reduction.Reduction, solution qubo.Solution) (*api.Record, error) {
	source, err := json.Marshal(inst)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s instance: %v", inst.Name(), err)
	}
	configs := solution.Configs
	if configs == nil {
		configs = [][]int{}
	}
	return &api.Record{
		Problem:     inst.Name(),
		Source:      source,
		QUBOMatrix:  red.QUBO.Rows(),
		QUBONumVars: red.QUBO.NumVars(),
		QUBOOffset:  red.QUBO.Offset(),
		QUBOOptimal: api.Optimal{
			Value:   solution.Value,
			Configs: configs,
		},
	}, nil
}

// WriteRecord writes record as compact JSON to <dir>/<name>.json and returns the file path.
func WriteRecord(dir, name string, record *api.Record) (string, error) {
	if err := os.MkdirAll(dir, 0770); err != nil && !os.IsExist(err) {
		return "", fmt.Errorf("failed to create output directory %s: %v", dir, err)
	}
	data, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("failed to marshal record %s: %v", name, err)
	}
	file := filepath.Join(dir, name+".json")
	if err := os.WriteFile(file, data, 0666); err != nil {
		return "", fmt.Errorf("failed to write record file %s: %v", file, err)
	}
	return file, nil
}

func ReadRecord(file string) (*api.Record, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	record := &api.Record{}
	if err := json.Unmarshal(data, record); err != nil {
		return nil, fmt.Errorf("failed to parse record %s: %v", file, err)
	}
	return record, nil
}

// RecordModel rebuilds the QUBO model stored in a record.
func RecordModel(record *api.Record) (*qubo.Model, error) {
	if len(record.QUBOMatrix) != record.QUBONumVars {
		return nil, fmt.Errorf("record declares %d variables but the matrix has %d rows", record.QUBONumVars, len(record.QUBOMatrix))
	}
	return qubo.FromRows(record.QUBOMatrix, record.QUBOOffset)
}
