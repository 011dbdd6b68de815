package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{code: "42", expected: "42\n"},
		{code: "12+5-3", expected: "12 + 5 - 3\n"},
		{code: "  1 -\t007 ", expected: "1 - 7\n"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}
			require.Equal(t, 0, run([]string{tt.code}, stdout, stderr))
			require.Empty(t, stderr.String())
			require.Equal(t, tt.expected, stdout.String())
		})
	}
}

func TestFormatDump(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	require.Equal(t, 0, run([]string{"--dump", "--no-color", "12+5"}, stdout, stderr))

	out := stdout.String()
	require.Contains(t, out, "tokens:")
	require.Contains(t, out, "terms:")
	require.Contains(t, out, "instructions:")
	require.Contains(t, out, "Magnitude")
	require.NotContains(t, out, "\x1b[")
	require.Contains(t, out, "12 + 5\n")
}

func TestFormatErrors(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	require.Equal(t, 1, run([]string{"1 # 2"}, stdout, stderr))
	require.Empty(t, stdout.String())
	require.Equal(t, "1 # 2\n  ^ unexpected character '#' at offset 2\n", stderr.String())

	stderr.Reset()
	require.Equal(t, 1, run([]string{"-3"}, stdout, stderr))
	require.Empty(t, stdout.String())
	require.Equal(t, "-3\n^ expected a number, found '-'\n", stderr.String())

	stderr.Reset()
	require.Equal(t, 1, run(nil, stdout, stderr))
	require.Contains(t, stderr.String(), "accepts 1 arg(s), received 0")
}
