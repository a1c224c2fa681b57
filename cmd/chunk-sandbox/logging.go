package main

import (
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/tilestream/logging"
)

const logFileName = "chunk-sandbox.log"

// logDir is relative to the working directory, tests point it elsewhere
var logDir = "logs"

// setupLogging sends logs to a rotating file with debug on, the terminal belongs to the view
func setupLogging(debug bool, cfg logging.Config) (*logrus.Logger, io.Closer, error) {
	if !debug {
		return logging.Discard(), nopCloser{}, nil
	}
	if cfg.File == "" {
		cfg.File = filepath.Join(logDir, logFileName)
	}
	cfg.Level = "debug"
	return logging.New(cfg, nil)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
