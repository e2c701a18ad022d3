package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "libini",
	Short: "libini - INI-Dateien lesen, prüfen und konvertieren",
	Long: `libini ist ein Kommandozeilenwerkzeug für INI-Konfigurationsdateien.

Befehle:
  get      - Liest einen Wert aus einer INI-Datei
  check    - Prüft eine INI-Datei auf Syntaxfehler
  convert  - Konvertiert eine INI-Datei nach JSON, YAML oder TOML
  version  - Zeigt die Version an`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}
