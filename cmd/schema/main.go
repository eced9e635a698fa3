// Command schema writes the JSON schema of tgrss configuration.
//
//	usage: schema [output.json], default is schema.json
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/umputun/tgrss/pkg/config"
)

func main() {
	outputPath := "schema.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	if err := writeSchema(outputPath); err != nil {
		log.Fatalf("failed to write tgrss config schema: %v", err)
	}
	fmt.Printf("tgrss config schema generated at %s\n", outputPath)
}

// writeSchema reflects the tgrss config into a schema file
func writeSchema(path string) error {
	schema, err := config.GenerateSchema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}
	schema.Title = "tgrss configuration"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
