package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI runs the command with args and stdin and returns its stdout.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), err
}

func TestListArgs(t *testing.T) {
	out, err := runCLI(t, "", "list", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\nello\nllo\nlo\no\n", out)
}

func TestListDefaultCommand(t *testing.T) {
	out, err := runCLI(t, "", "añb")
	require.NoError(t, err)
	assert.Equal(t, "añb\nñb\nb\n", out)
}

func TestListStdin(t *testing.T) {
	out, err := runCLI(t, "a€\n", "list")
	require.NoError(t, err)
	assert.Equal(t, "a€\n€\n", out)
}

func TestListOffsets(t *testing.T) {
	out, err := runCLI(t, "", "list", "--offsets", "aß€")
	require.NoError(t, err)
	assert.Equal(t, "0\taß€\n1\tß€\n3\t€\n", out)
}

func TestListFields(t *testing.T) {
	out, err := runCLI(t, "", "list", "-f", "-o", "the quick  fox")
	require.NoError(t, err)
	assert.Equal(t, "0\tthe quick fox\n1\tquick fox\n2\tfox\n", out)
}

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"ascii", []string{"count", "hello"}, "5\n"},
		{"mixed widths", []string{"count", "aß€😀"}, "4\n"},
		{"joined args", []string{"count", "a", "b"}, "3\n"},
		{"fields", []string{"count", "--fields", "one two three"}, "3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCountEmptyStdin(t *testing.T) {
	out, err := runCLI(t, "", "count")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestCountNFC(t *testing.T) {
	// "e" followed by a combining acute accent composes to a single scalar.
	decomposed := "e\u0301"
	out, err := runCLI(t, "", "count", decomposed)
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, err = runCLI(t, "", "count", "--nfc", decomposed)
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestHint(t *testing.T) {
	out, err := runCLI(t, "", "hint", "aß€😀")
	require.NoError(t, err)
	assert.Equal(t, "3 10\n", out)

	out, err = runCLI(t, "", "hint", "-f", "a b")
	require.NoError(t, err)
	assert.Equal(t, "2 2\n", out)
}

func TestInvalidUTF8(t *testing.T) {
	_, err := runCLI(t, "a\xffb", "count")
	assert.ErrorIs(t, err, errInvalidUTF8)
}

func TestBadFlag(t *testing.T) {
	_, err := runCLI(t, "", "count", "--log-level", "loud", "x")
	assert.Error(t, err)
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger("info", "json", &buf)
	log.Debug("hidden")
	log.Info("shown", "count", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"count":3`)

	buf.Reset()
	log = newLogger("warn", "text", &buf)
	log.Info("hidden")
	assert.Empty(t, buf.String())
}

func TestListLogsCount(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"text", []string{"--log-level", "info", "--log-format", "json", "list", "añb"}, `"count":3,"fields":false`},
		{"fields", []string{"--log-level", "info", "--log-format", "json", "list", "-f", "a b"}, `"count":2,"fields":true`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(tt.args, strings.NewReader(""), &stdout, &stderr)
			require.NoError(t, err)
			assert.Contains(t, stderr.String(), `"msg":"listed suffixes"`)
			assert.Contains(t, stderr.String(), tt.want)
		})
	}
}
