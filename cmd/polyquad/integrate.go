package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/robbyt/go-polyquad/integrator"
	"github.com/robbyt/go-polyquad/options"
	"github.com/robbyt/go-polyquad/quadrature"
)

// defaultSegments is used when -n is not given.
const defaultSegments = 10

func newIntegrateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "integrate EXPRESSION",
		Short: "Approximate the definite integral of an expression",
		Long: heredoc.Doc(`
			Approximate the integral of EXPRESSION over [lower, upper] with one of
			the quadrature rules listed by "polyquad methods".

			Limits accept constant expressions such as pi/2 or root(3, 8). A
			trailing "dx" on the expression is ignored. Rules that need a
			particular number of segments adjust n and say so in the output.
		`),
		Example: heredoc.Doc(`
			polyquad integrate "x^2" --lower 0 --upper 1 --method simpson13
			polyquad integrate "sin(x) dx" -a 0 -b pi -n 16 -m boole --trace
			polyquad integrate "exp(x)" -a 0 -b 1 -n 100000 --workers 8 -o json
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIntegrate(cmd, v, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringP(keyLower, "a", "", "lower limit")
	flags.StringP(keyUpper, "b", "", "upper limit")
	flags.IntP(keySegments, "n", defaultSegments, "number of segments")
	flags.StringP(keyMethod, "m", quadrature.Simpson13.ID(), "quadrature rule")
	flags.Int(keyWorkers, 1, "sampling goroutines")
	flags.Int(keyThreshold, quadrature.DefaultParallelThreshold, "points from which sampling runs in parallel")
	flags.Bool(keyTrace, false, "print every sample point")
	flags.Bool(keyNoRef, false, "do not compare with known exact values")
	return cmd
}

func runIntegrate(cmd *cobra.Command, v *viper.Viper, expression string) error {
	format, err := parseFormat(v.GetString(keyOutput))
	if err != nil {
		return err
	}
	method, err := quadrature.ParseKind(v.GetString(keyMethod))
	if err != nil {
		return err
	}

	opts, err := baseOptions(cmd, v)
	if err != nil {
		return err
	}
	opts = append(opts,
		options.WithWorkers(v.GetInt(keyWorkers)),
		options.WithParallelThreshold(v.GetInt(keyThreshold)),
	)
	if v.GetBool(keyNoRef) {
		opts = append(opts, options.WithOracle(nil))
	}

	i, err := integrator.New(opts...)
	if err != nil {
		return err
	}
	report, err := i.Integrate(cmd.Context(), integrator.Request{
		Expression: expression,
		Lower:      v.GetString(keyLower),
		Upper:      v.GetString(keyUpper),
		N:          v.GetInt(keySegments),
		Method:     method,
	})
	if err != nil {
		return err
	}

	if format != formatText {
		return encode(cmd.OutOrStdout(), format, report)
	}
	return writeReport(cmd.OutOrStdout(), report, v.GetBool(keyTrace))
}

func writeReport(w io.Writer, report *integrator.Report, trace bool) error {
	if _, err := fmt.Fprintln(w, report.Details); err != nil {
		return err
	}
	if !trace {
		return nil
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "i\txi\tf(xi)\tcoef\tterm\t")
	for _, it := range report.Iterations {
		fmt.Fprintf(tw, "%d\t%g\t%g\t%g\t%g\t\n", it.Index, it.Xi, it.Fxi, it.Coef, it.Term)
	}
	return tw.Flush()
}
