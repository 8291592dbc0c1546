/*
File    : pepega/cmd/pepega/main_test.go
Package : main
*/
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KunalKatiyar/pepega/config"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.pepega")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRunFile_CleanScriptExitsZero(t *testing.T) {
	path := writeScript(t, `chatting "hi";`)
	assert.Equal(t, 0, runFile(config.Default(), path))
}

func TestRunFile_ParseErrorExits65(t *testing.T) {
	path := writeScript(t, `lulw x = 1`)
	assert.Equal(t, 65, runFile(config.Default(), path))
}

func TestRunFile_RuntimeErrorExits70(t *testing.T) {
	path := writeScript(t, `chatting missing;`)
	assert.Equal(t, 70, runFile(config.Default(), path))
}

func TestRunFile_MissingFileExits1(t *testing.T) {
	assert.Equal(t, 1, runFile(config.Default(), filepath.Join(t.TempDir(), "does-not-exist.pepega")))
}
