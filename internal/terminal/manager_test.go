package terminal

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startTestManager(t *testing.T) *Manager {
	t.Helper()
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh not available")
	}
	m := NewManager(Options{Shell: "/bin/sh", Dir: t.TempDir(), RestartDelay: 10 * time.Millisecond})
	if err := m.Start(); err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	t.Cleanup(m.Close)
	return m
}

func snapshotContains(m *Manager, needle string) func() bool {
	return func() bool {
		return strings.Contains(m.Snapshot(), needle)
	}
}

func TestManagerRunsCommands(t *testing.T) {
	m := startTestManager(t)

	res, err := m.Send("echo $((40+2))")
	require.NoError(t, err)
	assert.Equal(t, StayInTerminal, res)
	assert.Eventually(t, snapshotContains(m, "42"), 3*time.Second, 20*time.Millisecond)
}

func TestManagerRefusesSelfInvocation(t *testing.T) {
	m := startTestManager(t)

	res, err := m.Send(";;vuit")
	require.NoError(t, err)
	assert.Equal(t, StayInTerminal, res)
	assert.Contains(t, m.Snapshot(), "Nice Try")
}

func TestManagerRestartDiscardsBuffer(t *testing.T) {
	m := startTestManager(t)

	_, err := m.Send("echo $((6*7))")
	require.NoError(t, err)
	require.Eventually(t, snapshotContains(m, "42"), 3*time.Second, 20*time.Millisecond)

	res, err := m.Send("clear")
	require.NoError(t, err)
	assert.Equal(t, StayInTerminal, res)
	assert.NotContains(t, m.Snapshot(), "42")

	_, err = m.Send("echo $((50+5))")
	require.NoError(t, err)
	assert.Eventually(t, snapshotContains(m, "55"), 3*time.Second, 20*time.Millisecond)
}

func TestManagerExitLeavesTerminal(t *testing.T) {
	m := startTestManager(t)

	res, err := m.Send("exit")
	require.NoError(t, err)
	assert.Equal(t, LeaveTerminal, res)

	_, err = m.Send("echo $((3+4))")
	require.NoError(t, err)
	assert.Eventually(t, snapshotContains(m, "7"), 3*time.Second, 20*time.Millisecond)
}

func TestManagerInterruptStopsForegroundJob(t *testing.T) {
	m := startTestManager(t)

	_, err := m.Send("sleep 30")
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)
	m.Interrupt()

	_, err = m.Send("echo $((100+23))")
	require.NoError(t, err)
	assert.Eventually(t, snapshotContains(m, "123"), 3*time.Second, 20*time.Millisecond)
}

func TestResolveShellPrefersConfiguredThenEnv(t *testing.T) {
	assert.Equal(t, "/usr/bin/fish", ResolveShell("/usr/bin/fish"))

	t.Setenv("SHELL", "/bin/zsh")
	assert.Equal(t, "/bin/zsh", ResolveShell(""))

	t.Setenv("SHELL", "")
	assert.NotEmpty(t, ResolveShell(""))
}
