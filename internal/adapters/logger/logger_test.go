package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/protonrun/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger returns a logger writing uncoloured output into a buffer.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(*logger.Logger)
		verbose    bool
		goldenName string
	}{
		{
			name:       "info",
			log:        func(l *logger.Logger) { l.Info("using library /mnt/data/SteamLibrary") },
			goldenName: "info_basic",
		},
		{
			name:       "warn",
			log:        func(l *logger.Logger) { l.Warn("compat data directory does not exist yet") },
			goldenName: "warn_basic",
		},
		{
			name:       "debug hidden by default",
			log:        func(l *logger.Logger) { l.Debug("scanning library 0") },
			goldenName: "debug_hidden",
		},
		{
			name:       "debug when verbose",
			log:        func(l *logger.Logger) { l.Debug("scanning library 0") },
			verbose:    true,
			goldenName: "debug_verbose",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.SetVerbose(tt.verbose)

			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "plain error",
			err:        os.ErrPermission,
			goldenName: "error_plain",
		},
		{
			name: "zerr chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("no such file or directory"), "failed to read document"),
				"environment resolution failed",
			),
			goldenName: "error_chain",
		},
		{
			name:       "zerr metadata",
			err:        zerr.With(zerr.New("manifest not found"), "path", "/steam/steamapps/appmanifest_1.acf"),
			goldenName: "error_metadata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Error(zerr.Wrap(errors.New("boom"), "launch failed"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])
	assert.Equal(t, "launch failed: boom", record["error"])
}

func TestLogger_JSON_Metadata(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	err := zerr.With(zerr.New("runtime not found"), "hint", "install Proton 8.0")
	lg.Error(zerr.Wrap(err, "failed to print command"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "failed to print command: runtime not found", record["error"])
	assert.Equal(t, "install Proton 8.0", record["hint"])
}

func TestLogger_JSON_KeepsOutputAndVerbosity(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetVerbose(true)
	lg.SetJSON(true)

	lg.Debug("probe")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "DEBUG", record["level"])
	assert.Equal(t, "probe", record["msg"])
}
