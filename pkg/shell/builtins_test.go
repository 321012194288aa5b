package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/core-tools/hsu-shell/pkg/command"
	"github.com/core-tools/hsu-shell/pkg/logging"
)

func newTestSession(t *testing.T, input string) (*Session, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	s := newSessionWithStreams(DefaultConfig(), logging.NewNopLogger(), strings.NewReader(input), out)
	return s, out
}

func parseLine(t *testing.T, line string) *command.Spec {
	t.Helper()
	spec, err := command.Parse(line, os.Getpid())
	require.NoError(t, err)
	require.NotNil(t, spec)
	return spec
}

func TestBuiltin_Exit(t *testing.T) {
	s, out := newTestSession(t, "")

	handled, quit := s.runBuiltin(parseLine(t, "exit"))
	assert.True(t, handled)
	assert.True(t, quit)
	assert.Contains(t, out.String(), "exiting shell")
}

func TestBuiltin_Status_BeforeAnyCommand(t *testing.T) {
	s, out := newTestSession(t, "")

	handled, quit := s.runBuiltin(parseLine(t, "status"))
	assert.True(t, handled)
	assert.False(t, quit)
	assert.Equal(t, "exit value 0\n", out.String())
}

func TestBuiltin_CdWithArgument(t *testing.T) {
	origin, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(origin)

	dir := t.TempDir()
	s, out := newTestSession(t, "")

	handled, _ := s.runBuiltin(parseLine(t, "cd "+dir))
	assert.True(t, handled)
	assert.Empty(t, out.String())

	wd, err := os.Getwd()
	require.NoError(t, err)
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, resolved, wd)
}

func TestBuiltin_CdDefaultsToHome(t *testing.T) {
	origin, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(origin)

	home := t.TempDir()
	t.Setenv("HOME", home)

	s, _ := newTestSession(t, "")
	s.runBuiltin(parseLine(t, "cd"))

	wd, err := os.Getwd()
	require.NoError(t, err)
	resolved, err := filepath.EvalSymlinks(home)
	require.NoError(t, err)
	assert.Equal(t, resolved, wd)
}

func TestBuiltin_CdFailureIsRecoverable(t *testing.T) {
	s, out := newTestSession(t, "")

	handled, quit := s.runBuiltin(parseLine(t, "cd /no/such/directory/anywhere"))
	assert.True(t, handled)
	assert.False(t, quit)
	assert.Contains(t, out.String(), "cd: ")
}

func TestBuiltin_ExternalCommandNotHandled(t *testing.T) {
	s, _ := newTestSession(t, "")

	handled, quit := s.runBuiltin(parseLine(t, "ls -la"))
	assert.False(t, handled)
	assert.False(t, quit)
}
