package api

import "encoding/json"

// Record is the ground truth for one reduced instance. Field names and nesting are the interchange
// format consumed by QUBO solver test suites.
type Record struct {
	Problem     string          `json:"problem"`
	Source      json.RawMessage `json:"source"`
	QUBOMatrix  [][]float64     `json:"qubo_matrix"`
	QUBONumVars int             `json:"qubo_num_vars"`
	// QUBOOffset is the constant dropped from xᵗQx. Value plus offset is the encoded cost.
	QUBOOffset  float64 `json:"qubo_offset,omitempty"`
	QUBOOptimal Optimal `json:"qubo_optimal"`
}

type Optimal struct {
	Value   float64 `json:"value"`
	Configs [][]int `json:"configs"`
}

// Instances is the content of an instance file.
type Instances struct {
	Instances []Instance `json:"instances"`
}

type Instance struct {
	// Name is the base name of the record file, defaults to "<problem>_to_qubo" in lower case.
	Name    string          `json:"name,omitempty"`
	Problem string          `json:"problem"`
	Source  json.RawMessage `json:"source"`
}
