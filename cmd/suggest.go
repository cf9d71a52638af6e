package cmd

import (
	"bytes"
	"fmt"
	"github.com/codesync/autocomplete-server/llm"
	"github.com/codesync/autocomplete-server/models"
	"github.com/codesync/autocomplete-server/service"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"os"
	"path/filepath"
	"strings"
)

var (
	cursorLine int
	language   string
)

var languageByExt = map[string]string{
	".go":   "Go",
	".py":   "Python",
	".js":   "JavaScript",
	".jsx":  "JavaScript",
	".ts":   "TypeScript",
	".tsx":  "TypeScript",
	".java": "Java",
	".c":    "C",
	".cpp":  "C++",
	".rs":   "Rust",
	".rb":   "Ruby",
}

var suggestCmd = &cobra.Command{
	Use:   "suggest FILE",
	Short: "Print the suggested next line for a file",
	Example: `  autocomplete suggest main.go --line 12
  autocomplete suggest script.txt --language Python`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		req, err := suggestRequest(args[0], code, cmd.Flags().Changed("line"))
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		gen, err := llm.New(cfg)
		if err != nil {
			return err
		}

		suggested, err := service.New(gen).Autocomplete(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("%s: %w", service.KindOf(err), err)
		}
		color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), suggested)
		return nil
	},
}

func init() {
	suggestCmd.Flags().IntVarP(&cursorLine, "line", "l", 0, "cursor line (default: last line of the file)")
	suggestCmd.Flags().StringVar(&language, "language", "", "language name (default: guessed from the extension)")
}

func suggestRequest(path string, code []byte, lineSet bool) (models.AutocompleteRequest, error) {
	lang := language
	if lang == "" {
		lang = languageByExt[strings.ToLower(filepath.Ext(path))]
	}
	if lang == "" {
		return models.AutocompleteRequest{}, fmt.Errorf("cannot guess the language of %s, pass --language", path)
	}

	line := cursorLine
	if !lineSet {
		line = bytes.Count(bytes.TrimRight(code, "\n"), []byte("\n")) + 1
	}

	return models.AutocompleteRequest{Code: string(code), CursorLine: line, Language: lang}, nil
}
