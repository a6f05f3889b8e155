package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mysterydesk/gumshoe/cmd/cli/casegen"
	"github.com/mysterydesk/gumshoe/cmd/cli/img"
	"github.com/spf13/cobra"
)

func init() {
	if err := godotenv.Load(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rootCmd.AddGroup(img.Group)
	rootCmd.AddCommand(img.Generate)
	rootCmd.AddGroup(casegen.Group)
	rootCmd.AddCommand(casegen.Generate)
}

var rootCmd = &cobra.Command{
	Use:  "gumshoe-cli",
	Long: `Command line utilities for Gumshoe https://github.com/mysterydesk/gumshoe`,
	Run: func(cmd *cobra.Command, args []string) {
		// Do Stuff Here
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
