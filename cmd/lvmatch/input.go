package main

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmatch/internal/config"
	"github.com/katalvlaran/lvmatch/internal/metrics"
)

// Input collects flag values and the state resolved before a subcommand runs.
type Input struct {
	configPath  string
	logLevel    string
	logFormat   string
	catalogPath string
	metricsFile string

	engine           string
	limit            int
	timeout          string
	ignoreEdgeLabels bool
	workers          int

	genVertices   int
	genLabels     int
	genDegree     float64
	genEdgeLabels int
	genSeed       int64
	genOut        string
	genQuerySize  int
	genQueryOut   string

	traversal string

	cfg      *config.Config
	log      *logrus.Entry
	recorder *metrics.Recorder
}
