package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dusk-indust/introspect/internal/analyzer"
	"github.com/dusk-indust/introspect/internal/bus"
	"github.com/dusk-indust/introspect/internal/registry"
	"github.com/dusk-indust/introspect/internal/telemetry"
)

// runAnalyze analyzes a single source file and prints the intent record to
// stdout as indented JSON.
func runAnalyze(flags cliFlags) error {
	source, err := os.ReadFile(flags.File)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	reg, err := loadRegistries(flags.ConfigDir)
	if err != nil {
		return err
	}

	var tracker telemetry.Tracker = telemetry.NopTracker{}
	if flags.Verbose {
		tracker = telemetry.LogTracker{}
	}

	a := analyzer.New(analyzer.DefaultConfig(), reg, insightBus(flags), tracker)

	actx := &analyzer.Context{FileName: filepath.Base(flags.File)}
	ci, err := a.AnalyzeIntent(context.Background(), string(source), actx)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", flags.File, err)
	}

	out, err := json.MarshalIndent(ci, "", "  ")
	if err != nil {
		return fmt.Errorf("encode intent: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// loadRegistries applies any introspect.yml overrides found in dir to the
// built-in defaults.
func loadRegistries(dir string) (*registry.Registries, error) {
	cfg, err := registry.LoadConfig(dir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg.Apply(registry.Default()), nil
}

// insightBus returns an HTTP bus when agent endpoints were given, otherwise
// a no-op.
func insightBus(flags cliFlags) bus.Bus {
	if flags.Agents == "" {
		return bus.NopBus{}
	}
	var endpoints []string
	for _, e := range strings.Split(flags.Agents, ",") {
		if e = strings.TrimSpace(e); e != "" {
			endpoints = append(endpoints, e)
		}
	}
	if len(endpoints) == 0 {
		return bus.NopBus{}
	}
	return bus.NewHTTPBus(endpoints)
}
