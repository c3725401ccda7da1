/*
Copyright 2025 The Uninames Authors.

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

package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	restore := SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer restore()

	InfoS("table compiled", "ranges", 42)
	assert.Contains(t, buf.String(), "table compiled")
	assert.Contains(t, buf.String(), "ranges=42")

	require.True(t, Enabled(slog.LevelInfo))
}

func TestInitRequiresValidLevel(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log-fmt=logfmt", "--log-level=noisy"}))

	err := Init(fs)
	require.ErrorContains(t, err, "invalid log-level")
}
