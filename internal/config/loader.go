package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pingcap/errors"
	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// LoadSim reads a simulation config file on top of Default. An empty path
// returns the defaults. The result is not validated: callers apply their
// overrides first and then call Validate.
func LoadSim(path string) (*SimConfig, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
	default:
		return nil, errors.Errorf("sim config must be a .yaml file: %s", path)
	}
	if err := loadYAML(path, cfg); err != nil {
		return nil, errors.Annotatef(err, "decode sim config %s failed", path)
	}
	cfg.normalize()
	return cfg, nil
}
