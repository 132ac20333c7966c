package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jsig/signature"
)

func newClassCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "class <signature>",
		Short: "Parse a class type signature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			class, err := signature.ParseClass(args[0])
			if err != nil {
				return fmt.Errorf("parse class signature: %w", err)
			}
			log.Debugf("parsed class signature: %s", class)

			encoder, err := newEncoder(outputFormat)
			if err != nil {
				return err
			}
			return encoder.Encode(class)
		},
	}
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text or json)")
	return cmd
}
