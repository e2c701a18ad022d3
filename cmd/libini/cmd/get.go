package cmd

import (
	"fmt"

	"github.com/msto63/libini/config"
	"github.com/msto63/libini/ini"
	"github.com/spf13/cobra"
)

var (
	getDefault string
	getKind    bool
)

var getCmd = &cobra.Command{
	Use:   "get <datei> <schlüssel>",
	Short: "Liest einen Wert aus einer INI-Datei",
	Long: `Liest einen einzelnen Wert aus einer INI-Datei.

Der Schlüssel hat die Form "sektion.name" oder nur "name". Ein Schlüssel
ohne Sektion findet den ersten passenden Eintrag über alle Sektionen in
Dateireihenfolge.

Beispiele:
  libini get app.ini database.host
  libini get app.ini port --default 8080
  libini get app.ini database.host --kind`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func init() {
	getCmd.Flags().StringVar(&getDefault, "default", "", "Fallback-Wert, wenn der Schlüssel fehlt")
	getCmd.Flags().BoolVar(&getKind, "kind", false, "Zeigt zusätzlich den Werttyp an")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	filePath, key := args[0], args[1]

	cfg, err := config.Load(filePath)
	if err != nil {
		printError("Datei konnte nicht geladen werden", err)
		return err
	}

	if !cfg.Has(key) {
		if cmd.Flags().Changed("default") {
			fmt.Println(getDefault)
			return nil
		}
		err := fmt.Errorf("Schlüssel %q nicht gefunden", key)
		printError("Lesen fehlgeschlagen", err)
		return err
	}

	if getKind {
		fmt.Printf("%s %s\n", cfg.GetString(key), MutedStyle.Render("("+lookupKind(cfg, key)+")"))
		return nil
	}

	fmt.Println(cfg.GetString(key))
	return nil
}

func lookupKind(cfg *config.Config, key string) string {
	doc := cfg.Document()

	if leaf, ok := flatLookup(doc, key); ok {
		return leaf.Value.Kind().String()
	}
	return "unknown"
}

func flatLookup(doc *ini.Document, key string) (ini.Leaf, bool) {
	for i := range doc.Sections {
		section := &doc.Sections[i]
		for _, leaf := range section.Leaves {
			if key == leaf.Name || key == section.Name+"."+leaf.Name {
				return leaf, true
			}
		}
	}
	return ini.Leaf{}, false
}
