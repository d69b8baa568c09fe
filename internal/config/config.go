// Package config resolves delium CLI defaults from the environment.
//
// Settings are read from process environment variables first and from an
// optional .env file second; command-line flags override both.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/dendrascience/delium/dhash"
	"github.com/subosito/gotenv"
)

// Environment variables understood by Load.
const (
	EnvAlgorithm = "DELIUM_ALGORITHM"
	EnvWorkers   = "DELIUM_WORKERS"
	EnvDebug     = "DELIUM_DEBUG"
	EnvVectors   = "DELIUM_VECTORS"
)

// DefaultEnvFile is read by Load when no file is named.
const DefaultEnvFile = ".env"

// Config holds CLI defaults.
type Config struct {
	Algorithm  string // canonical algorithm name
	Workers    int    // verification workers, 0 means one per CPU
	Debug      bool
	VectorFile string // default vector file for verify, empty for the reference set
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{Algorithm: dhash.NameSHA256}
}

// Load builds a Config from the environment. Each named env file is parsed
// if it exists; missing files are skipped. Process variables take precedence
// over file values, and an empty variable counts as unset. An invalid value
// is an error naming the variable.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	fileEnv := gotenv.Env{}
	for _, name := range envFiles {
		env, err := readEnvFile(name)
		if err != nil {
			return Config{}, err
		}
		for k, v := range env {
			if _, ok := fileEnv[k]; !ok {
				fileEnv[k] = v
			}
		}
	}
	lookup := func(key string) (string, bool) {
		if v := os.Getenv(key); v != "" {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}

	cfg := Default()
	if v, ok := lookup(EnvAlgorithm); ok && v != "" {
		alg, err := dhash.AlgorithmByName(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvAlgorithm, err)
		}
		cfg.Algorithm = alg.Name()
	}
	if v, ok := lookup(EnvWorkers); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("%s: invalid worker count %q", EnvWorkers, v)
		}
		cfg.Workers = n
	}
	if v, ok := lookup(EnvDebug); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: invalid boolean %q", EnvDebug, v)
		}
		cfg.Debug = b
	}
	if v, ok := lookup(EnvVectors); ok {
		cfg.VectorFile = v
	}
	return cfg, nil
}

func readEnvFile(name string) (gotenv.Env, error) {
	f, err := os.Open(name)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	env, err := gotenv.StrictParse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return env, nil
}
