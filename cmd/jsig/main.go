package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"jsig/format"
)

var log = commonlog.GetLogger("jsig")

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "jsig",
		Short: "Parse and inspect JVM generic type signatures",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newMethodCmd())
	rootCmd.AddCommand(newClassCmd())
	rootCmd.AddCommand(newTypeCmd())
	rootCmd.AddCommand(newNamesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newEncoder(name string) (format.Encoder, error) {
	switch name {
	case "json":
		return format.NewJSONEncoder(os.Stdout), nil
	case "text":
		return format.NewTextEncoder(os.Stdout), nil
	}
	return nil, fmt.Errorf("unknown format: %s", name)
}
