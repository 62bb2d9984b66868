package config

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

//go:embed *.json
var defaults embed.FS

// MustLoad loads the default config for the given key
func MustLoad(key string, v interface{}) []byte {

	b, err := defaults.ReadFile(fmt.Sprintf("%s.json", key))
	if err != nil {
		panic(fmt.Sprintf("could not load config for %s: %s", key, err.Error()))
	}

	err = json.Unmarshal(b, v)
	if err != nil {
		panic(fmt.Sprintf("could not unmarshal the config for %s: %s", key, err.Error()))
	}

	log.Debug().Str("config", key).Msg("loaded default config")

	return b

}

// Load loads the json config from the given file into v.
// Fields missing from the file keep their current values in v.
func Load(path string, v interface{}) ([]byte, error) {

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file '%s': %w", path, err)
	}

	err = json.Unmarshal(b, v)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal the config '%s': %w", path, err)
	}

	return b, nil

}
