package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/redsight/redsight/cmd/analyze/commands"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "redsight-analyze",
		Short: "Engagement analysis tool for Reddit users",
		Long:  "CLI tool that fetches a Reddit user's public activity and prints an engagement and churn-risk report",
	}

	rootCmd.AddCommand(commands.NewUserCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
