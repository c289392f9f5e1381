package internal

import (
	"encoding/json"
	"fmt"
	"os"
)

func Pprint(i interface{}) {
	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(bytes))
}

// Config carries process-level settings. Every field has a usable
// default so the binaries run without a config file.
type Config struct {
	Port            int    `json:"port"`
	TreasuryBaseUrl string `json:"treasuryBaseUrl"`
	RedisAddr       string `json:"redisAddr"`
}

func defaultConfig() Config {
	return Config{
		Port: 3009,
	}
}

// LoadConfig reads config.json, or config-dev.json / config-test.json
// when MBS_ENV selects those environments. A missing file is not an
// error; defaults apply.
func LoadConfig() (*Config, error) {
	configFile := "config.json"
	if os.Getenv("MBS_ENV") == "dev" {
		configFile = "config-dev.json"
	} else if os.Getenv("MBS_ENV") == "test" {
		configFile = "config-test.json"
	}

	config := defaultConfig()
	f, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return &config, nil
	} else if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", configFile, err)
	}

	if err = json.Unmarshal(f, &config); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", configFile, err)
	}

	return &config, nil
}
