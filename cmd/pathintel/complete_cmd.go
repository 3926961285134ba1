package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/atinylittleshell/pathintel/internal/completion"
	"github.com/atinylittleshell/pathintel/internal/filesystem"
	"github.com/atinylittleshell/pathintel/internal/render"
)

func newCompleteCmd(a *app) *cobra.Command {
	var file, line string
	var column int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Print path suggestions for one cursor position",
		Long: `Print path suggestions for the text before the cursor.

The active file decides where relative paths start. Without --column the
cursor is placed at the end of the line.`,
		Example: `  pathintel complete --file src/app.js --line 'import x from "./'
  pathintel complete --file src/app.js --line 'require("../lib/")' --column 17 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("column") {
				column = len([]rune(line))
			}

			fileURI, err := filesystem.AbsoluteURI(file)
			if err != nil {
				return err
			}

			completer, err := completion.NewCompleter(filesystem.OSLister{}, a.logger, a.cfg.CompletionOptions())
			if err != nil {
				return err
			}

			suggestions := completer.Complete(cmd.Context(), completion.Request{
				Line:    line,
				Column:  column,
				FileURI: fileURI,
			})

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(suggestions)
			}

			styled := false
			if f, ok := out.(*os.File); ok {
				styled = render.IsTerminal(f)
			}
			return render.Suggestions(out, suggestions, styled)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path of the file being edited")
	cmd.Flags().StringVarP(&line, "line", "l", "", "Text of the current line")
	cmd.Flags().IntVarP(&column, "column", "c", 0, "Cursor column in characters")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print suggestions as JSON")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
