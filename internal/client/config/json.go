package config

import (
	"encoding/json"
	"os"

	"github.com/portfolioimane/storefront-cli/internal/flagx"
)

// JsonConfig mirrors the JSON configuration file layout. Pointer fields
// distinguish "absent" from "set to zero value".
type JsonConfig struct {
	APIBaseURL       *string `json:"api_base_url"`
	ProcessorBaseURL *string `json:"processor_base_url"`
	ProcessorKey     *string `json:"processor_publishable_key"`
	DatabasePath     *string `json:"database_path"`
}

// parseJson overlays Config fields from a JSON file. The file path is taken
// from the CONFIG environment variable or the -c/-config flags; when neither
// is set the function is a no-op. A file that cannot be read or parsed is a
// startup failure and panics.
func parseJson(cfg *Config) {
	fileName := os.Getenv("CONFIG")

	if fileName == "" {
		fileName = flagx.JsonConfigFlags()
	}

	if fileName == "" {
		return
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.ProcessorBaseURL != nil {
		cfg.ProcessorBaseURL = *jc.ProcessorBaseURL
	}
	if jc.ProcessorKey != nil {
		cfg.ProcessorKey = *jc.ProcessorKey
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
}
