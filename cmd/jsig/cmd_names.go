package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jsig/signature"
)

func newNamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names <signature>",
		Short: "List every class name referenced by a signature",
		Long:  "Parses the argument as a method, class or single type signature and prints every referenced class name in sorted order, one per line.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := parseAny(args[0])
			if err != nil {
				return err
			}
			for _, name := range signature.ReferencedClassNames(node) {
				fmt.Fprintln(os.Stdout, name)
			}
			return nil
		},
	}
}

func parseAny(input string) (signature.ClassNameCollector, error) {
	if method, err := signature.ParseMethod(input); err == nil {
		log.Debugf("parsed as method signature: %s", method)
		return method, nil
	}
	if class, err := signature.ParseClass(input); err == nil {
		log.Debugf("parsed as class signature: %s", class)
		return class, nil
	}
	sig, err := signature.ParseType(input)
	if err != nil {
		return nil, fmt.Errorf("not a method, class or type signature: %w", err)
	}
	log.Debugf("parsed as type signature: %s", sig)
	return sig, nil
}
