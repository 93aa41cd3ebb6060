// Copyright 2025 Mia Solak. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/miasolak/fp-multiply/dv"
)

func TestRunQuick(t *testing.T) {
	cfg := dv.DefaultConfig()
	cfg.RandomCases = 50
	require.NoError(t, run(cfg, false, ""))
}

func TestRunWritesTrace(t *testing.T) {
	cfg := dv.DefaultConfig()
	cfg.RandomCases = 5
	path := filepath.Join(t.TempDir(), "wave.vcd")
	require.NoError(t, run(cfg, true, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "$enddefinitions $end")
}

func TestRunTraceOpenFailure(t *testing.T) {
	cfg := dv.DefaultConfig()
	cfg.RandomCases = 1
	err := run(cfg, true, filepath.Join(t.TempDir(), "no", "such", "dir", "wave.vcd"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "open trace")
}
