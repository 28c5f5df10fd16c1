package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/robbyt/go-polyquad/engines/types"
	"github.com/robbyt/go-polyquad/options"
)

const envPrefix = "POLYQUAD"

// Flag and configuration keys.
const (
	keyConfig    = "config"
	keyEngine    = "engine"
	keyLogLevel  = "log-level"
	keyOutput    = "output"
	keyLower     = "lower"
	keyUpper     = "upper"
	keySegments  = "segments"
	keyMethod    = "method"
	keyWorkers   = "workers"
	keyThreshold = "parallel-threshold"
	keyTrace     = "trace"
	keyNoRef     = "no-reference"
	keyAt        = "at"
)

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "polyquad",
		Short: "Evaluate expressions and approximate definite integrals",
		Long: heredoc.Doc(`
			polyquad compiles a single-variable expression once and evaluates it
			at as many points as a quadrature rule needs.

			Every flag can also be set from a POLYQUAD_<FLAG> environment variable
			(dashes become underscores) or from a polyquad.yaml config file in the
			working directory.
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(v, cmd.Flags())
		},
	}

	flags := cmd.PersistentFlags()
	flags.String(keyConfig, "", "config file (default ./polyquad.yaml)")
	flags.String(keyEngine, types.Native.String(), "expression engine: "+engineNames())
	flags.String(keyLogLevel, "warn", "log level: debug, info, warn or error")
	flags.StringP(keyOutput, "o", formatText, "output format: text, json or yaml")

	cmd.AddCommand(
		newIntegrateCmd(v),
		newEvalCmd(v),
		newMethodsCmd(v),
	)
	return cmd
}

func loadConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := v.BindPFlags(flags); err != nil {
		return err
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		return v.ReadInConfig()
	}
	v.SetConfigName("polyquad")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}

func engineNames() string {
	names := make([]string, 0, len(types.All()))
	for _, t := range types.All() {
		names = append(names, t.String())
	}
	return strings.Join(names, ", ")
}

func newLogHandler(v *viper.Viper, w io.Writer) (slog.Handler, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(keyLogLevel))); err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", keyLogLevel, err)
	}
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}), nil
}

// baseOptions builds the options shared by every command.
func baseOptions(cmd *cobra.Command, v *viper.Viper) ([]options.Option, error) {
	handler, err := newLogHandler(v, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	engineType, err := types.Parse(strings.ToLower(v.GetString(keyEngine)))
	if err != nil {
		return nil, err
	}
	return []options.Option{
		options.WithLogHandler(handler),
		options.WithEngine(engineType),
	}, nil
}
