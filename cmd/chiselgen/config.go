package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/chisel-gen/chisel"
)

type config struct {
	Artifact struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"artifact"`
	// Output is the manifest directory, overridable with --out.
	Output string `yaml:"output"`
	// CaptionOrder overrides the default strategy priority. Strategy names
	// as printed by chisel.CaptionStrategy.String.
	CaptionOrder []string `yaml:"caption_order"`
	NATS         struct {
		Subject string `yaml:"subject"`
	} `yaml:"nats"`
}

func defaultConfig() config {
	var c config
	c.Artifact.Name = "chisel_out"
	c.Artifact.Version = "0.0.0"
	c.Output = "out"
	c.NATS.Subject = "chisel.manifests"
	return c
}

func loadConfig(path string) (config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, errors.Wrap(err, "unmarshalling config")
	}
	return c, nil
}

func (c config) captionOrder() ([]chisel.CaptionStrategy, error) {
	if len(c.CaptionOrder) == 0 {
		return nil, nil
	}
	order := make([]chisel.CaptionStrategy, 0, len(c.CaptionOrder))
	for _, name := range c.CaptionOrder {
		strategy, err := chisel.ParseCaptionStrategy(name)
		if err != nil {
			return nil, err
		}
		order = append(order, strategy)
	}
	return order, nil
}

// crossRefEntry is one row of the documentation collaborator's lookup table.
type crossRefEntry struct {
	Name []string `json:"name"`
	Kind string   `json:"kind"` // "type" or "method"
}

func loadCrossReferences(path string) (chisel.TableResolver, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading cross-reference table")
	}
	var entries map[string]crossRefEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrap(err, "unmarshalling cross-reference table")
	}
	table := chisel.TableResolver{}
	for anchor, entry := range entries {
		kind := chisel.CrossReferenceType
		if entry.Kind == "method" {
			kind = chisel.CrossReferenceMethod
		}
		table[anchor] = chisel.CrossReference{Name: entry.Name, Kind: kind}
	}
	return table, nil
}
