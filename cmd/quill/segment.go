package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"quill/internal/diagfmt"
	"quill/internal/segment"
	"quill/internal/source"
)

var segmentCmd = &cobra.Command{
	Use:   "segment [flags] <file>",
	Short: "Split a text file into sentences",
	Long:  `Split a text file into sentence spans and print them. Pass "-" to read standard input.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSegment,
}

func init() {
	segmentCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

// loadArgument loads a file path or "-" (stdin) into a fresh FileSet.
func loadArgument(path string) (*source.FileSet, source.FileID, error) {
	fileSet := source.NewFileSet()
	if path == "-" {
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read stdin: %w", err)
		}
		text, flags := source.Normalize(text)
		return fileSet, fileSet.Add("<stdin>", text, source.FileVirtual|flags), nil
	}
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return fileSet, fileID, nil
}

func runSegment(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	fileSet, fileID, err := loadArgument(args[0])
	if err != nil {
		return err
	}
	file := fileSet.Get(fileID)
	spans := segment.Sentences(fileID, file.Content)

	switch format {
	case "json":
		return diagfmt.FormatSentencesJSON(cmd.OutOrStdout(), spans, fileSet)
	case "pretty":
		diagfmt.FormatSentencesPretty(cmd.OutOrStdout(), spans, fileSet)
		return nil
	default:
		return fmt.Errorf("unknown format %q (must be pretty or json)", format)
	}
}
