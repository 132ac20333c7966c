package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jsig/signature"
)

func newMethodCmd() *cobra.Command {
	var outputFormat string
	var declaringClass string

	cmd := &cobra.Command{
		Use:   "method <signature>",
		Short: "Parse a method type signature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []signature.Option
			if declaringClass != "" {
				class, err := signature.ParseClass(declaringClass)
				if err != nil {
					return fmt.Errorf("parse declaring class signature: %w", err)
				}
				opts = append(opts, signature.WithDeclaringClass(class))
			}

			method, err := signature.ParseMethod(args[0], opts...)
			if err != nil {
				return fmt.Errorf("parse method signature: %w", err)
			}
			log.Debugf("parsed method signature: %s", method)

			encoder, err := newEncoder(outputFormat)
			if err != nil {
				return err
			}
			return encoder.Encode(method)
		},
	}
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text or json)")
	cmd.Flags().StringVar(&declaringClass, "class", "", "class signature of the declaring class, used as back-link context")
	return cmd
}
