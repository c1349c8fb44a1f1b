package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"quill/internal/diag"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the style rules and their tags",
	RunE:  runRules,
}

func init() {
	rulesCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type ruleInfo struct {
	Tag   string `json:"tag"`
	Title string `json:"title"`
}

func runRules(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		rules := make([]ruleInfo, len(diag.StyleCodes))
		for i, code := range diag.StyleCodes {
			rules[i] = ruleInfo{Tag: code.ID(), Title: code.Title()}
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(rules)
	case "pretty":
		for _, code := range diag.StyleCodes {
			fmt.Fprintf(out, "%-16s %s\n", code.ID(), code.Title())
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (must be pretty or json)", format)
	}
}
