// Command hypergrasp runs the Hyper-GRASP metaheuristic against a
// multiobjective knapsack (mokp) or minimum spanning tree (momst) instance
// and prints the resulting statistics report to stdout.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/cwbudde/hypergrasp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		localSearch   bool
		maximization  bool
		alpha         float64
		criteria      string
		criteriaLimit float64
		mocoProblem   string
		inputFile     string
		debugOut      string
		verbose       bool
	)

	cmd := &cobra.Command{
		Use:   "hypergrasp",
		Short: "Hyper-GRASP for multiobjective combinatorial optimization",
		Example: "  hypergrasp --maximization=true --local-search=true --alpha=0.05 " +
			"--criteria=iterations --criteria_limit=100 --moco-problem=mokp " +
			"--input-file=instances/mokp/random/2D/100_1.in",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &hypergrasp.Config{
				LocalSearch:   localSearch,
				Maximization:  maximization,
				Alpha:         alpha,
				Criteria:      hypergrasp.Criteria(criteria),
				CriteriaLimit: criteriaLimit,
				MOCOProblem:   hypergrasp.MOCOProblem(mocoProblem),
				InputFile:     inputFile,
			}
			return run(cfg, debugOut, verbose)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&localSearch, "local-search", true, "enable local search")
	flags.BoolVar(&maximization, "maximization", false, "maximization (true) or minimization (false)")
	flags.Float64Var(&alpha, "alpha", 0.05, "RCL threshold in [0,1]; 0 is strict greedy")
	flags.StringVar(&criteria, "criteria", "time", "stopping criteria: \"time\" or \"iterations\"")
	flags.Float64Var(&criteriaLimit, "criteria_limit", 100, "stopping limit: seconds or iteration count")
	flags.StringVar(&mocoProblem, "moco-problem", "mokp", "MOCO problem: \"mokp\" or \"momst\"")
	flags.StringVar(&inputFile, "input-file", "", "path to the problem instance file (required)")
	flags.StringVar(&debugOut, "debug-out", "", "optional path to write a debug.out-style dump")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log checkpoint progress to stderr")
	cmd.MarkFlagRequired("input-file")
	cmd.MarkFlagRequired("maximization")

	return cmd
}

func run(cfg *hypergrasp.Config, debugOut string, verbose bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logrus.StandardLogger()
	log.SetOutput(os.Stderr)
	entry := log.WithFields(logrus.Fields{
		"moco_problem": cfg.MOCOProblem,
		"maximization": cfg.Maximization,
		"local_search": cfg.LocalSearch,
		"alpha":        cfg.Alpha,
		"criteria":     cfg.Criteria,
	})
	entry.Info("command line arguments parsed")

	file, err := os.Open(cfg.InputFile)
	if err != nil {
		return fmt.Errorf("%w: opening input file: %v", hypergrasp.ErrUserInput, err)
	}
	defer file.Close()

	var problem hypergrasp.Problem
	switch cfg.MOCOProblem {
	case hypergrasp.ProblemMOKP:
		instance, err := hypergrasp.ParseMOKPInstance(file)
		if err != nil {
			return err
		}
		problem = hypergrasp.NewMOKP(instance.Items, instance.M, instance.Capacity, instance.NonDominatedSet, cfg.Maximization)
	case hypergrasp.ProblemMOMST:
		instance, err := hypergrasp.ParseMOMSTInstance(file)
		if err != nil {
			return err
		}
		problem, err = hypergrasp.NewMOMST(instance.V, instance.Edges, instance.NonDominatedSet, instance.SupportedSet, cfg.Maximization)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown moco-problem %q", hypergrasp.ErrUserInput, cfg.MOCOProblem)
	}

	stopping, err := hypergrasp.NewStoppingCriteria(string(cfg.Criteria), cfg.CriteriaLimit)
	if err != nil {
		return err
	}

	grasp := hypergrasp.New(problem, stopping, cfg.Alpha, cfg.LocalSearch, cfg.Maximization)
	grasp.Seed = cfg.Seed
	if verbose {
		log.SetLevel(logrus.DebugLevel)
		grasp.Log = entry
	}

	stats, err := grasp.Solve()
	if err != nil {
		if errors.Is(err, hypergrasp.ErrInvariant) {
			entry.WithError(err).Error("solve aborted on invariant violation")
		}
		return err
	}

	fmt.Println("Statistics:")
	fmt.Println(stats.String())

	if debugOut != "" {
		if err := stats.WriteDebugFile(debugOut); err != nil {
			return fmt.Errorf("writing debug file: %w", err)
		}
	}

	return nil
}
