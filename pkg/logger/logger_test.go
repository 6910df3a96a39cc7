package logger

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" warn "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("loud"))
}

func TestWriter(t *testing.T) {
	_, isConsole := Writer(Options{Development: true}).(zerolog.ConsoleWriter)
	assert.True(t, isConsole)

	w := Writer(Options{File: filepath.Join(t.TempDir(), "app.log"), MaxSizeMB: 1})
	_, isFile := w.(*lumberjack.Logger)
	assert.False(t, isFile, "file output is teed with stderr")
	_, isMulti := w.(zerolog.LevelWriter)
	assert.True(t, isMulti)
}
