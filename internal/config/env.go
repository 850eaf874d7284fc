// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// envPrefixes are the envPrefix tags of the [StructuredConfig] groups.
var envPrefixes = []string{"APP_", "STORAGE_", "SERVER_", "ADAPTER_"}

// envConfigPath names the JSON config file; it is the only untagged-group key.
const envConfigPath = "CONFIG"

// parseEnv fills cfg from APP_*, STORAGE_*, SERVER_*, ADAPTER_* and CONFIG.
// Other process variables are not visible to the parser.
func parseEnv(cfg *StructuredConfig) error {
	opts := env.Options{Environment: cartEnv(os.Environ())}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// cartEnv turns KEY=VALUE pairs into a map holding only this service's keys.
func cartEnv(environ []string) map[string]string {
	vars := make(map[string]string)
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		if key == envConfigPath || hasEnvPrefix(key) {
			vars[key] = value
		}
	}

	return vars
}

func hasEnvPrefix(key string) bool {
	for _, prefix := range envPrefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}

	return false
}
