package main

import (
	"errors"
	"os"

	"github.com/oisee/i8086dis/config"
)

// driverConfig holds the optional settings an i8086dis.ini file can
// override. Values are zero/false until Load fills them in or the
// defaults below apply.
type driverConfig struct {
	TraceFormat  string `config:"simulate.trace_format,default=compact"`
	CommentBytes bool   `config:"listing.comment_bytes,default=false"`
}

// loadDriverConfig reads path if it exists, returning defaults
// unchanged when it does not: an absent config file is not an error.
func loadDriverConfig(path string) (driverConfig, error) {
	cfg := driverConfig{TraceFormat: "compact"}
	if path == "" {
		return cfg, nil
	}

	err := config.Load(path, &cfg)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	return cfg, err
}
