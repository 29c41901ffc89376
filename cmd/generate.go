package main

import (
	"github.com/quboverify/quboverify/pkg/dataset"
	"github.com/quboverify/quboverify/pkg/problem"
	"github.com/quboverify/quboverify/pkg/verify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type generateOpts struct {
	output     string
	instances  string
	archive    string
	skipOracle bool
}

var generateopts = generateOpts{}

func NewGenerateCmd() *cobra.Command {

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "writes verified QUBO ground truth records",
		Long: `reduces every instance to QUBO, verifies the reduction against exhaustive search in the native problem space
and writes one JSON record per instance. Without an instance file the built-in reference instances are used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			instances, names, err := loadInstances(generateopts.instances)
			if err != nil {
				return err
			}
			logrus.Infof("Generating %d QUBO records.", len(instances))
			for i, inst := range instances {
				logrus.Infof("Verifying %s.", names[i])
				report, err := verify.Check(inst, verify.Options{SkipOracle: generateopts.skipOracle})
				if err != nil {
					return err
				}
				record, err := dataset.NewRecord(inst, report.Reduction, report.Solution)
				if err != nil {
					return err
				}
				file, err := dataset.WriteRecord(generateopts.output, names[i], record)
				if err != nil {
					return err
				}
				logrus.Infof("Wrote %s (%d variables, %d optimal configurations).", file, record.QUBONumVars, len(record.QUBOOptimal.Configs))
			}
			if generateopts.archive != "" {
				logrus.Infof("Bundling %s into %s.", generateopts.output, generateopts.archive)
				if err := dataset.Archive(cmd.Context(), generateopts.output, generateopts.archive); err != nil {
					return err
				}
			}
			logrus.Info("Done.")
			return nil
		},
	}

	generateCmd.Flags().StringVarP(&generateopts.output, "output", "o", "tests/data/qubo", "directory to write the records to")
	generateCmd.Flags().StringVarP(&generateopts.instances, "instances", "i", "", "instance file, defaults to "+dataset.DefaultInstanceFileName+" in the XDG config directories or the built-in instances")
	generateCmd.Flags().StringVar(&generateopts.archive, "archive", "", "additionally bundle the records into this .tar.gz file")
	generateCmd.Flags().BoolVar(&generateopts.skipOracle, "skip-oracle", false, "do not cross check optima with the MaxSAT solver")
	return generateCmd
}

func loadInstances(file string) ([]problem.Instance, []string, error) {
	if file == "" {
		if found, ok := dataset.DefaultInstanceFile(); ok {
			file = found
		}
	}
	if file != "" {
		logrus.Infof("Loading instances from %s.", file)
		return dataset.LoadInstanceFile(file)
	}
	instances := dataset.Fixtures()
	names := make([]string, 0, len(instances))
	for _, inst := range instances {
		names = append(names, dataset.RecordName(inst))
	}
	return instances, names, nil
}
