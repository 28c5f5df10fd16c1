package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/robbyt/go-polyquad/quadrature"
)

type methodInfo struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

func newMethodsCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the quadrature rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseFormat(v.GetString(keyOutput))
			if err != nil {
				return err
			}

			kinds := quadrature.Kinds()
			infos := make([]methodInfo, 0, len(kinds))
			for _, k := range kinds {
				infos = append(infos, methodInfo{ID: k.ID(), Name: k.Name()})
			}

			if format != formatText {
				return encode(cmd.OutOrStdout(), format, infos)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, info := range infos {
				fmt.Fprintf(tw, "%s\t%s\n", info.ID, info.Name)
			}
			return tw.Flush()
		},
	}
}
