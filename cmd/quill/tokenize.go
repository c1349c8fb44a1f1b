package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"quill/internal/diagfmt"
	"quill/internal/lexer"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file>",
	Short: "List the word tokens of a text file",
	Long:  `Tokenize a text file into the words the style rules operate on. Pass "-" to read standard input.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	fileSet, fileID, err := loadArgument(args[0])
	if err != nil {
		return err
	}
	file := fileSet.Get(fileID)
	tokens := lexer.Words(fileID, string(file.Content), 0)

	switch format {
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), tokens)
	case "pretty":
		diagfmt.FormatTokensPretty(cmd.OutOrStdout(), tokens, fileSet)
		return nil
	default:
		return fmt.Errorf("unknown format %q (must be pretty or json)", format)
	}
}
