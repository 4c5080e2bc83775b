package config

import (
	"encoding/json"
	"os"

	"todoapp/internal/flagx"
	"todoapp/internal/timex"
)

// JsonConfig is the DTO for the optional JSON configuration file.
type JsonConfig struct {
	ServerAddr     string         `json:"server_addr"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJson loads configuration values from the JSON file named by the
// -c or -config flags, if present. Invalid files panic.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.ServerAddr = c.ServerAddr
	config.RequestTimeout = c.RequestTimeout.Duration
}
