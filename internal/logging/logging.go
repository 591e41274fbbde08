/*
Copyright 2025 The llm-d Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package logging configures the logr logger shared by the build pass and
// the query layer. Verbosity follows logr conventions: callers write
// logger.V(logging.DEBUG).Info(...).
package logging

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/onsi/ginkgo/v2"
	"go.uber.org/zap/zapcore"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// Verbosity levels.
const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

// ParseLevel maps "info", "debug" and "trace" to a verbosity level.
func ParseLevel(s string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return INFO, nil
	case "debug":
		return DEBUG, nil
	case "trace":
		return TRACE, nil
	default:
		return INFO, fmt.Errorf("unsupported log level: %q", s)
	}
}

// NewLogger builds a JSON zap logger at the given verbosity and installs it
// as the controller-runtime global logger.
func NewLogger(level int) logr.Logger {
	logger := zap.New(
		zap.UseDevMode(false),
		zap.Level(zapcore.Level(-level)),
	)
	ctrl.SetLogger(logger)
	return logger
}

// NewTestLogger installs a development logger writing to the ginkgo writer
// at TRACE verbosity. Suites call it before RunSpecs.
func NewTestLogger() logr.Logger {
	logger := zap.New(
		zap.UseDevMode(true),
		zap.WriteTo(ginkgo.GinkgoWriter),
		zap.Level(zapcore.Level(-TRACE)),
	)
	ctrl.SetLogger(logger)
	return logger
}
