//go:build !(js && wasm)

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-counter/console"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { console.SetLogger(nil) })

	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		clicks int
		format string
		want   string
	}{
		{"html initial", 0, "html", `<button type="button">count is 0</button>`},
		{"html after clicks", 3, "html", `<button type="button">count is 3</button>`},
		{"text", 2, "text", "count is 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := render(tt.clicks, tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_RejectsBadInput(t *testing.T) {
	_, err := render(-1, "html")
	assert.ErrorContains(t, err, "negative")

	_, err = render(1, "json")
	assert.ErrorContains(t, err, "unknown format")
}

func TestRenderCommand(t *testing.T) {
	out, err := execute(t, "render", "--clicks", "5", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "count is 5\n", out)
}

func TestRenderCommand_InvalidLogLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "loud", "render")
	assert.ErrorContains(t, err, "invalid log level")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "counter version 0.1.0\n", out)
}
