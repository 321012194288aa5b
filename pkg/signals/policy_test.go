//go:build !windows

package signals

import (
	"bytes"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/atomic"

	"github.com/core-tools/hsu-shell/pkg/logging"
)

// syncBuffer guards the notice stream: notices are written from the signal
// delivery goroutine while the test polls.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func raise(t *testing.T, sig syscall.Signal) {
	t.Helper()
	require.NoError(t, syscall.Kill(syscall.Getpid(), sig))
}

func TestPolicy_ToggleFlipsForegroundOnlyMode(t *testing.T) {
	notices := &syncBuffer{}
	p := NewPolicy(nil, notices, logging.NewNopLogger())
	p.Install()
	defer p.Uninstall()

	require.False(t, p.ForegroundOnly())

	raise(t, syscall.SIGTSTP)
	require.Eventually(t, p.ForegroundOnly, 5*time.Second, 10*time.Millisecond)

	raise(t, syscall.SIGTSTP)
	require.Eventually(t, func() bool {
		return !p.ForegroundOnly()
	}, 5*time.Second, 10*time.Millisecond)

	out := notices.String()
	assert.Contains(t, out, "Entering foreground-only mode (& is now ignored)")
	assert.Contains(t, out, "Exiting foreground-only mode")
}

func TestPolicy_EvenNumberOfTogglesRestoresMode(t *testing.T) {
	notices := &syncBuffer{}
	p := NewPolicy(nil, notices, logging.NewNopLogger())
	p.Install()

	for i := 0; i < 4; i++ {
		raise(t, syscall.SIGTSTP)
		// Let each delivery land before the next; coalesced deliveries
		// would make the count uneven.
		expect := i%2 == 0
		require.Eventually(t, func() bool {
			return p.ForegroundOnly() == expect
		}, 5*time.Second, 10*time.Millisecond)
	}

	p.Uninstall()
	assert.False(t, p.ForegroundOnly())
}

func TestPolicy_InterruptInvokesCallbackAndShellSurvives(t *testing.T) {
	var calls atomic.Int32
	p := NewPolicy(func() { calls.Inc() }, &syncBuffer{}, logging.NewNopLogger())
	p.Install()
	defer p.Uninstall()

	raise(t, syscall.SIGINT)
	require.Eventually(t, func() bool {
		return calls.Load() == 1
	}, 5*time.Second, 10*time.Millisecond)

	// Still here: the interrupt did not terminate the process, and the
	// mode flag is untouched.
	assert.False(t, p.ForegroundOnly())
}

func TestPolicy_InterruptWithNoCallback(t *testing.T) {
	p := NewPolicy(nil, &syncBuffer{}, logging.NewNopLogger())
	p.Install()
	defer p.Uninstall()

	raise(t, syscall.SIGINT)
	raise(t, syscall.SIGTSTP)
	require.Eventually(t, p.ForegroundOnly, 5*time.Second, 10*time.Millisecond)
}
