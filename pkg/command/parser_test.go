package command

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/core-tools/hsu-shell/pkg/errors"
)

const testPID = 4242

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected *Spec
	}{
		{
			name: "simple command",
			line: "ls",
			expected: &Spec{
				Program: "ls",
				Args:    []string{"ls"},
			},
		},
		{
			name: "command with arguments",
			line: "ls -la /tmp",
			expected: &Spec{
				Program: "ls",
				Args:    []string{"ls", "-la", "/tmp"},
			},
		},
		{
			name: "input redirection",
			line: "wc < words.txt",
			expected: &Spec{
				Program:   "wc",
				Args:      []string{"wc"},
				InputPath: "words.txt",
			},
		},
		{
			name: "output redirection",
			line: "ls > out.txt",
			expected: &Spec{
				Program:    "ls",
				Args:       []string{"ls"},
				OutputPath: "out.txt",
			},
		},
		{
			name: "both redirections",
			line: "sort < in.txt > out.txt",
			expected: &Spec{
				Program:    "sort",
				Args:       []string{"sort"},
				InputPath:  "in.txt",
				OutputPath: "out.txt",
			},
		},
		{
			name: "background command",
			line: "sleep 5 &",
			expected: &Spec{
				Program:    "sleep",
				Args:       []string{"sleep", "5"},
				Background: true,
			},
		},
		{
			name: "extra whitespace",
			line: "  echo    hello   ",
			expected: &Spec{
				Program: "echo",
				Args:    []string{"echo", "hello"},
			},
		},
		{
			name: "pid token as argument",
			line: "echo hello $$",
			expected: &Spec{
				Program: "echo",
				Args:    []string{"echo", "hello", "4242"},
			},
		},
		{
			name: "pid token embedded in a word",
			line: "sort < in.txt > out$$.txt",
			expected: &Spec{
				Program:    "sort",
				Args:       []string{"sort"},
				InputPath:  "in.txt",
				OutputPath: "out4242.txt",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Parse(tt.line, testPID)
			require.NoError(t, err)
			require.NotNil(t, spec)
			assert.Equal(t, tt.expected, spec)
		})
	}
}

func TestParse_IgnoredLines(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "empty line", line: ""},
		{name: "whitespace only", line: "   \t  "},
		{name: "comment", line: "# this is a comment"},
		{name: "indented comment", line: "   # also a comment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Parse(tt.line, testPID)
			require.NoError(t, err)
			assert.Nil(t, spec)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "input redirection without target", line: "wc <"},
		{name: "output redirection without target", line: "ls >"},
		{name: "only background marker", line: "&"},
		{name: "only redirections", line: "< in.txt > out.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Parse(tt.line, testPID)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.Nil(t, spec)
		})
	}
}

func TestParse_BackgroundMarkerPosition(t *testing.T) {
	// The marker is recognized anywhere on the line, not only trailing.
	spec, err := Parse("sleep 5 & > out.txt", testPID)
	require.NoError(t, err)
	assert.True(t, spec.Background)
	assert.Equal(t, "out.txt", spec.OutputPath)
}

func TestParse_PIDTokenUsesGivenPID(t *testing.T) {
	spec, err := Parse("echo $$", 777)
	require.NoError(t, err)
	assert.Equal(t, []string{"echo", fmt.Sprintf("%d", 777)}, spec.Args)
}
