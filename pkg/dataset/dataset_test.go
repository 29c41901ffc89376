package dataset

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/quboverify/quboverify/pkg/problem"
	"github.com/quboverify/quboverify/pkg/qubo"
	"github.com/quboverify/quboverify/pkg/reduction"
)

const instanceFile = `
instances:
- name: cycle
  problem: IndependentSet
  source:
    num_vertices: 4
    edges: [[0, 1], [1, 2], [2, 3], [0, 3]]
    penalty: 8
- problem: ILP
  source:
    num_variables: 2
    objective: [1, -1]
    constraints_lhs: [[1, 1]]
    constraints_rhs: [1]
    constraint_signs: [LE]
    penalty: 5
`

func TestLoadInstanceFile(t *testing.T) {
	g := NewGomegaWithT(t)
	file := filepath.Join(t.TempDir(), "instances.yaml")
	g.Expect(os.WriteFile(file, []byte(instanceFile), 0666)).To(Succeed())

	instances, names, err := LoadInstanceFile(file)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(names).To(Equal([]string{"cycle", "ilp_to_qubo"}))
	g.Expect(instances).To(HaveLen(2))
	g.Expect(instances[0]).To(Equal(&problem.IndependentSet{
		Graph:   problem.Graph{NumVertices: 4, Edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}}},
		Penalty: 8,
	}))
	g.Expect(instances[1]).To(Equal(&problem.ILP{
		NumVars:         2,
		Objective:       []float64{1, -1},
		ConstraintsLHS:  [][]float64{{1, 1}},
		ConstraintsRHS:  []float64{1},
		ConstraintSigns: []problem.Sign{problem.LE},
		Penalty:         5,
	}))
}

func TestLoadInstance(t *testing.T) {
	g := NewGomegaWithT(t)
	file := filepath.Join(t.TempDir(), "sat.yaml")
	g.Expect(os.WriteFile(file, []byte(`
problem: KSatisfiability
source:
  num_variables: 2
  clauses:
  - [{variable: 0, negated: false}, {variable: 1, negated: true}]
`), 0666)).To(Succeed())

	inst, err := LoadInstance(file)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(inst).To(Equal(&problem.KSatisfiability{
		NumVars: 2,
		Clauses: [][]problem.Literal{{{Variable: 0}, {Variable: 1, Negated: true}}},
	}))
}

func TestDecodeInstance(t *testing.T) {
	tests := []struct {
		name    string
		problem string
		source  string
		check   func(g *WithT, err error)
	}{
		{
			name:    "unknown problem",
			problem: "TravelingSalesman",
			source:  `{}`,
			check: func(g *WithT, err error) {
				g.Expect(errors.Is(err, ErrUnknownProblem)).To(BeTrue())
			},
		},
		{
			name:    "unknown field",
			problem: "VertexCovering",
			source:  `{"num_vertices": 2, "edges": [], "penalty": 1, "weights": [1]}`,
			check: func(g *WithT, err error) {
				g.Expect(err).To(MatchError(ContainSubstring("weights")))
			},
		},
		{
			name:    "invalid instance",
			problem: "Coloring",
			source:  `{"num_vertices": 2, "edges": [[0, 1]], "num_colors": 2, "penalty": 0}`,
			check: func(g *WithT, err error) {
				g.Expect(errors.Is(err, problem.ErrInvalidInstance)).To(BeTrue())
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			_, err := DecodeInstance(tt.problem, json.RawMessage(tt.source))
			g.Expect(err).To(HaveOccurred())
			tt.check(g, err)
		})
	}
}

func TestRecord(t *testing.T) {
	g := NewGomegaWithT(t)
	inst := Fixtures()[0]
	red, err := reduction.Reduce(inst)
	g.Expect(err).ToNot(HaveOccurred())
	solution := qubo.BruteForce(red.QUBO)

	record, err := NewRecord(inst, red, solution)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(record.Problem).To(Equal("VertexCovering"))
	g.Expect(string(record.Source)).To(Equal(`{"num_vertices":4,"edges":[[0,1],[1,2],[2,3],[0,3],[0,2]],"penalty":8}`))
	g.Expect(record.QUBONumVars).To(Equal(4))
	g.Expect(record.QUBOOffset).To(Equal(40.0))
	g.Expect(record.QUBOOptimal.Value).To(BeNumerically("~", -38, qubo.Tolerance))
	g.Expect(record.QUBOOptimal.Configs).To(Equal([][]int{{1, 0, 1, 0}}))

	dir := filepath.Join(t.TempDir(), "qubo")
	file, err := WriteRecord(dir, RecordName(inst), record)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(file).To(Equal(filepath.Join(dir, "vertexcovering_to_qubo.json")))

	read, err := ReadRecord(file)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(read).To(Equal(record))

	decoded, err := DecodeInstance(read.Problem, read.Source)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(decoded).To(Equal(inst))

	m, err := RecordModel(read)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(m.Equivalent(red.QUBO, qubo.Tolerance)).To(BeTrue())

	read.QUBONumVars = 5
	_, err = RecordModel(read)
	g.Expect(err).To(HaveOccurred())
}

func TestRecordOmitsZeroOffset(t *testing.T) {
	g := NewGomegaWithT(t)
	inst := Fixtures()[1]
	red, err := reduction.Reduce(inst)
	g.Expect(err).ToNot(HaveOccurred())
	record, err := NewRecord(inst, red, qubo.BruteForce(red.QUBO))
	g.Expect(err).ToNot(HaveOccurred())

	data, err := json.Marshal(record)
	g.Expect(err).ToNot(HaveOccurred())
	fields := map[string]json.RawMessage{}
	g.Expect(json.Unmarshal(data, &fields)).To(Succeed())
	g.Expect(fields).To(HaveKey("problem"))
	g.Expect(fields).To(HaveKey("source"))
	g.Expect(fields).To(HaveKey("qubo_matrix"))
	g.Expect(fields).To(HaveKey("qubo_num_vars"))
	g.Expect(fields).To(HaveKey("qubo_optimal"))
	g.Expect(fields).ToNot(HaveKey("qubo_offset"))
	g.Expect(string(fields["qubo_optimal"])).To(Equal(`{"value":-2,"configs":[[0,1,0,1],[1,0,1,0]]}`))
}

func TestFixturesAreValid(t *testing.T) {
	g := NewGomegaWithT(t)
	names := map[string]bool{}
	for _, inst := range Fixtures() {
		g.Expect(inst.Validate()).To(Succeed())
		names[RecordName(inst)] = true
	}
	g.Expect(names).To(HaveLen(6))
	g.Expect(names).To(HaveKey("ksatisfiability_to_qubo"))
}

func TestArchive(t *testing.T) {
	g := NewGomegaWithT(t)
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "qubo")
	g.Expect(os.MkdirAll(dir, 0770)).To(Succeed())
	g.Expect(os.WriteFile(filepath.Join(dir, "a.json"), []byte(`{}`), 0666)).To(Succeed())
	g.Expect(os.WriteFile(filepath.Join(dir, "b.json"), []byte(`{}`), 0666)).To(Succeed())

	out := filepath.Join(tmp, "qubo.tar.gz")
	g.Expect(Archive(context.Background(), dir, out)).To(Succeed())

	f, err := os.Open(out)
	g.Expect(err).ToNot(HaveOccurred())
	defer f.Close()
	gz, err := gzip.NewReader(f)
	g.Expect(err).ToNot(HaveOccurred())
	r := tar.NewReader(gz)
	var entries []string
	for {
		hdr, err := r.Next()
		if err == io.EOF {
			break
		}
		g.Expect(err).ToNot(HaveOccurred())
		if hdr.Typeflag == tar.TypeReg {
			entries = append(entries, hdr.Name)
		}
	}
	g.Expect(entries).To(ConsistOf("qubo/a.json", "qubo/b.json"))
}
