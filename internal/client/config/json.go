package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/sondage/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell "absent" apart from zero values.
type JsonConfig struct {
	BaseURL     *string `json:"base_url"`
	SessionFile *string `json:"session_file"`
	Verbose     *bool   `json:"verbose"`
}

// parseJson overlays cfg with the file named by -c/-config, if any. Fields
// missing from the file keep their current values. Read and decode errors
// panic.
func parseJson(cfg *Config, args []string) {
	jsonConfigFile := flagx.JsonConfigFlags(args)
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != nil {
		cfg.BaseURL = *jc.BaseURL
	}
	if jc.SessionFile != nil {
		cfg.SessionFile = *jc.SessionFile
	}
	if jc.Verbose != nil {
		cfg.Verbose = *jc.Verbose
	}
}
