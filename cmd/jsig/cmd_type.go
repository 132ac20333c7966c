package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jsig/signature"
)

func newTypeCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "type <signature>",
		Short: "Parse a single type signature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, err := signature.ParseType(args[0])
			if err != nil {
				return fmt.Errorf("parse type signature: %w", err)
			}
			log.Debugf("parsed type signature: %s", sig)

			encoder, err := newEncoder(outputFormat)
			if err != nil {
				return err
			}
			return encoder.Encode(sig)
		},
	}
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text or json)")
	return cmd
}
