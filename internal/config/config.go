// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package config loads settings from an optional config file, SMUSHINFO_*
// environment variables and command line flags, in increasing priority.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "SMUSHINFO"

const (
	KeyLogLevel   = "log_level"
	KeyLabels     = "labels"
	KeyWorkers    = "workers"
	KeyServerAddr = "server.addr"
)

type Config struct {
	LogLevel string
	// Labels is the path of a hash label file; empty means no labels.
	Labels  string
	Workers int
	Server  ServerConfig
}

type ServerConfig struct {
	Addr string
}

// New returns a viper instance with defaults and environment lookup set.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "INFO")
	v.SetDefault(KeyLabels, "")
	v.SetDefault(KeyWorkers, runtime.NumCPU())
	v.SetDefault(KeyServerAddr, ":8080")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"log-level": KeyLogLevel,
	"labels":    KeyLabels,
	"workers":   KeyWorkers,
	"addr":      KeyServerAddr,
}

// BindFlags binds the flags of fs that override configuration keys.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

// Load reads path, when not empty, and returns the resolved configuration.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		LogLevel: v.GetString(KeyLogLevel),
		Labels:   v.GetString(KeyLabels),
		Workers:  v.GetInt(KeyWorkers),
		Server:   ServerConfig{Addr: v.GetString(KeyServerAddr)},
	}
	if cfg.Workers <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %d", KeyWorkers, cfg.Workers)
	}
	return cfg, nil
}
