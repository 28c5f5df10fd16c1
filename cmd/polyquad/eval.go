package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/robbyt/go-polyquad"
	"github.com/robbyt/go-polyquad/limits"
)

// evalPoint is one row of eval output.
type evalPoint struct {
	X     float64 `json:"x" yaml:"x"`
	Value float64 `json:"value" yaml:"value"`
}

type evalResult struct {
	Expression string      `json:"expression" yaml:"expression"`
	Engine     string      `json:"engine" yaml:"engine"`
	Points     []evalPoint `json:"points" yaml:"points"`
}

func newEvalCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval EXPRESSION",
		Short: "Evaluate an expression at one or more points",
		Long: heredoc.Doc(`
			Compile EXPRESSION once and evaluate it at every --at value. Points
			accept constant expressions, e.g. --at pi/2.
		`),
		Example: heredoc.Doc(`
			polyquad eval "root(3, x)" --at 27
			polyquad eval "sin(x)" --at 0,pi/6,pi/2 -o yaml
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, v, args[0])
		},
	}
	cmd.Flags().StringSlice(keyAt, []string{"0"}, "points to evaluate at")
	return cmd
}

func runEval(cmd *cobra.Command, v *viper.Viper, expression string) error {
	format, err := parseFormat(v.GetString(keyOutput))
	if err != nil {
		return err
	}
	opts, err := baseOptions(cmd, v)
	if err != nil {
		return err
	}

	f, err := polyquad.Compile(expression, opts...)
	if err != nil {
		return err
	}

	result := evalResult{
		Expression: f.Expression(),
		Engine:     f.EngineType().String(),
	}
	for _, text := range v.GetStringSlice(keyAt) {
		x, err := limits.Resolve(text)
		if err != nil {
			return fmt.Errorf("--%s: %w", keyAt, err)
		}
		y, err := f.Eval(x)
		if err != nil {
			return err
		}
		result.Points = append(result.Points, evalPoint{X: x, Value: y})
	}

	if format != formatText {
		return encode(cmd.OutOrStdout(), format, result)
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, p := range result.Points {
		fmt.Fprintf(tw, "f(%g)\t= %g\n", p.X, p.Value)
	}
	return tw.Flush()
}
