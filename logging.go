// Copyright 2025 Contriboss
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pubgrub

import (
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Logger adapts zerolog to the key-value Debug(msg, args...) shape the
// solver's internal call sites use, so state.go and solver.go never need
// to know which logging library backs SolverOptions.Logger.
type Logger struct {
	zl zerolog.Logger
}

// NewLogger returns a Logger writing structured console output to stderr
// at debug level, tagged with a fresh run id for correlating log lines.
// The id is fixed when the Logger is created, so every Solve call that
// uses this Logger writes the same run id.
func NewLogger() *Logger {
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
	return &Logger{zl: zl}
}

// NewLoggerFrom wraps an existing zerolog.Logger instead of constructing
// a new console writer, for callers who already manage their own sinks.
func NewLoggerFrom(zl zerolog.Logger) *Logger {
	return &Logger{zl: zl.With().Str("run_id", uuid.NewString()).Logger()}
}

// Debug logs msg with alternating key/value pairs in args, matching the
// call shape the solver's internals already use throughout state.go and
// solver.go.
func (l *Logger) Debug(msg string, args ...any) {
	if l == nil {
		return
	}
	evt := l.zl.Debug()
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		evt = evt.Interface(key, args[i+1])
	}
	evt.Msg(msg)
}
