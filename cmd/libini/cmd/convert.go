package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/msto63/libini/ini"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	convertTo  string
	convertOut string
)

var convertCmd = &cobra.Command{
	Use:   "convert <datei>",
	Short: "Konvertiert eine INI-Datei in ein anderes Format",
	Long: `Konvertiert eine INI-Datei nach JSON, YAML oder TOML.

Wiederholte Sektionen werden zusammengeführt; bei doppelten Schlüsseln
gewinnt der erste Eintrag in Dateireihenfolge.

Beispiele:
  libini convert app.ini --to json
  libini convert app.ini --to yaml --out app.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertTo, "to", "json", "Zielformat: json, yaml oder toml")
	convertCmd.Flags().StringVar(&convertOut, "out", "", "Ausgabedatei (default: stdout)")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	parser := ini.New(ini.Options{})

	doc, err := parser.ParseFile(args[0])
	if err != nil {
		printError("Datei konnte nicht geparst werden", err)
		return err
	}

	data := documentToMap(doc)

	var output []byte
	switch convertTo {
	case "json":
		output, err = json.MarshalIndent(data, "", "  ")
		if err == nil {
			output = append(output, '\n')
		}
	case "yaml", "yml":
		output, err = yaml.Marshal(data)
	case "toml":
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(data)
		output = buf.Bytes()
	default:
		err = fmt.Errorf("unbekanntes Zielformat %q", convertTo)
	}
	if err != nil {
		printError("Konvertierung fehlgeschlagen", err)
		return err
	}

	if convertOut == "" {
		fmt.Print(string(output))
		return nil
	}

	if err := os.WriteFile(convertOut, output, 0o644); err != nil {
		printError("Ausgabedatei konnte nicht geschrieben werden", err)
		return err
	}

	if verbose {
		fmt.Printf("%s %s\n", SuccessStyle.Render("[OK]"), convertOut)
	}
	return nil
}

// documentToMap flattens a parsed document into nested maps for the target
// encoders. Repeated sections merge, the first value per key wins.
func documentToMap(doc *ini.Document) map[string]map[string]interface{} {
	data := make(map[string]map[string]interface{}, len(doc.Sections))

	for i := range doc.Sections {
		section := &doc.Sections[i]

		members, ok := data[section.Name]
		if !ok {
			members = make(map[string]interface{}, len(section.Leaves))
			data[section.Name] = members
		}

		for _, leaf := range section.Leaves {
			if _, exists := members[leaf.Name]; exists {
				continue
			}
			members[leaf.Name] = leaf.Value.Interface()
		}
	}

	return data
}
