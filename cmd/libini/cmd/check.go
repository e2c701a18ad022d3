package cmd

import (
	"errors"
	"fmt"

	"github.com/msto63/libini/ini"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <datei>...",
	Short: "Prüft INI-Dateien auf Syntaxfehler",
	Long: `Prüft eine oder mehrere INI-Dateien auf Syntaxfehler.

Gibt pro Datei ein Urteil mit Fehlerposition aus. Der Exit-Code ist
ungleich Null, wenn mindestens eine Datei fehlerhaft ist.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	parser := ini.New(ini.Options{})
	failed := 0

	for _, filePath := range args {
		doc, err := parser.ParseFile(filePath)
		if err != nil {
			failed++
			fmt.Printf("%s %s\n", ErrorStyle.Render("[FEHLER]"), filePath)
			fmt.Printf("  %s\n", formatParseFailure(err))
			continue
		}

		members := 0
		for i := range doc.Sections {
			members += len(doc.Sections[i].Leaves)
		}

		fmt.Printf("%s %s %s\n",
			SuccessStyle.Render("[OK]"), filePath,
			MutedStyle.Render(fmt.Sprintf("(%d Sektionen, %d Einträge)", len(doc.Sections), members)))
	}

	if failed > 0 {
		return fmt.Errorf("%d von %d Datei(en) fehlerhaft", failed, len(args))
	}
	return nil
}

func formatParseFailure(err error) string {
	var lexErr *ini.LexError
	if errors.As(err, &lexErr) {
		return fmt.Sprintf("%s %s", PositionStyle.Render(fmt.Sprintf("Zeile %d, Spalte %d:", lexErr.Line, lexErr.Column)), lexErr.Message)
	}

	var parseErr *ini.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Sprintf("%s %s", PositionStyle.Render(fmt.Sprintf("Zeile %d, Spalte %d:", parseErr.Line, parseErr.Column)), parseErr.Message)
	}

	return err.Error()
}
