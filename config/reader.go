package config

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/a8m/envsubst"
	"github.com/pkg/errors"

	"go.viam.com/navframe/logging"
)

// Read reads a config from the given file. ${VAR} references in the file are replaced with the
// values of the matching environment variables before decoding.
func Read(filePath string, logger logging.Logger) (*Config, error) {
	buf, err := envsubst.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %q", filePath)
	}

	return FromReader(filePath, bytes.NewReader(buf), logger)
}

// FromReader reads a config from the given reader and specifies
// where, if applicable, the file the reader originated from.
func FromReader(originalPath string, r io.Reader, logger logging.Logger) (*Config, error) {
	cfg := Config{ConfigFilePath: originalPath}
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to decode Config from json")
	}
	if err := cfg.Validate(""); err != nil {
		return nil, err
	}

	logger.Debugw("read config",
		"path", originalPath,
		"angle_units", cfg.Units(),
		"attitude", cfg.VehicleAttitude().EulerAngles().String())
	return &cfg, nil
}
