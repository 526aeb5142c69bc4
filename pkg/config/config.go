// Package config loads the deployment configuration file shared by the infra
// and site-sync commands. The file carries the one real input of the system,
// the deployment domain; everything else is derived from it or supplied by
// the ambient AWS environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Deployment is the on-disk deployment configuration.
type Deployment struct {
	// Domain is the fully-qualified domain the site is served on.
	Domain string `yaml:"domain"`
	// StackName overrides the stack name derived from the domain.
	StackName string `yaml:"stack_name,omitempty"`
	// AssetDir is the directory of compiled front-end assets to sync.
	AssetDir string `yaml:"asset_dir,omitempty"`
	// Bucket overrides the origin bucket name derived from the domain.
	Bucket string `yaml:"bucket,omitempty"`
}

// Load reads and parses a deployment config file.
func Load(path string) (*Deployment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var d Deployment
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &d, nil
}

// Validate checks the fields required by every command.
func (d *Deployment) Validate() error {
	if strings.TrimSpace(d.Domain) == "" {
		return errors.New("domain is required")
	}
	return nil
}
