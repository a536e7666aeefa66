package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), buildVersionLine())
		},
	}
}

func buildVersionLine() string {
	line := "telegram-ai-bot " + strings.TrimSpace(version)
	if c := strings.TrimSpace(commit); c != "" && c != "none" {
		line += " (" + c + ")"
	}
	if d := strings.TrimSpace(date); d != "" && d != "unknown" {
		line += " built " + d
	}
	return line
}
