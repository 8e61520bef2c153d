/*
 * ecmaparse
 *
 * Copyright 2026 The ecmaparse Authors.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package elog provides a level-filtered logger. No other package of this
// module imports it: the CLI and the parser core do not log through it.
//
// Adapted from the teacher's util/logging.go LogLevelLogger, swapping the
// bare log.Logger sink for github.com/hashicorp/go-hclog so the levels
// line up with how hashicorp/nomad wires logging through its subsystems.
package elog

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
)

/*
Level is a logging level, mirroring the teacher's LogLevel string type.
*/
type Level string

/*
Known log levels.
*/
const (
	Debug Level = "debug"
	Info  Level = "info"
	Error Level = "error"
)

/*
Logger wraps a github.com/hashicorp/go-hclog.Logger with the level-gated
LogDebug/LogInfo/LogError API the teacher's util.Logger interface exposes.
*/
type Logger struct {
	backend hclog.Logger
	level   Level
}

/*
New creates a Logger at the given level, writing to os.Stderr via hclog.
*/
func New(name string, level Level) (*Logger, error) {
	switch level {
	case Debug, Info, Error:
	default:
		return nil, fmt.Errorf("invalid log level: %v", level)
	}

	return &Logger{
		backend: hclog.New(&hclog.LoggerOptions{
			Name:   name,
			Output: os.Stderr,
			Level:  hclogLevel(level),
		}),
		level: level,
	}, nil
}

func hclogLevel(l Level) hclog.Level {
	switch l {
	case Debug:
		return hclog.Debug
	case Info:
		return hclog.Info
	default:
		return hclog.Error
	}
}

/*
Level returns the current log level.
*/
func (l *Logger) Level() Level {
	return l.level
}

/*
LogDebug logs a debug message if the current level permits it.
*/
func (l *Logger) LogDebug(m ...interface{}) {
	if l.level == Debug {
		l.backend.Debug(fmt.Sprint(m...))
	}
}

/*
LogInfo logs an info message if the current level permits it.
*/
func (l *Logger) LogInfo(m ...interface{}) {
	if l.level == Debug || l.level == Info {
		l.backend.Info(fmt.Sprint(m...))
	}
}

/*
LogError always logs an error message regardless of level.
*/
func (l *Logger) LogError(m ...interface{}) {
	l.backend.Error(fmt.Sprint(m...))
}
