package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"timeline-lab/auth"
	"timeline-lab/domain/timeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "timelinectl", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"token", "seed", "inspect", "journal", "snapshot", "export", "watch",
		"start", "complete", "delay", "check", "edit", "broadcast"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	scheduleFlag := cmd.PersistentFlags().Lookup("schedule")
	require.NotNil(t, scheduleFlag)
	assert.Equal(t, "s", scheduleFlag.Shorthand)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	require.NotNil(t, cmd.PersistentFlags().Lookup("addr"))
	require.NotNil(t, cmd.PersistentFlags().Lookup("token"))
}

func TestDelayCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	delayCmd, _, err := cmd.Find([]string{"delay"})
	require.NoError(t, err)

	minutesFlag := delayCmd.Flags().Lookup("minutes")
	require.NotNil(t, minutesFlag)
	assert.Equal(t, "m", minutesFlag.Shorthand)

	cascadeFlag := delayCmd.Flags().Lookup("cascade")
	require.NotNil(t, cascadeFlag)
	assert.Equal(t, "false", cascadeFlag.DefValue)
}

func TestBroadcastCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	broadcastCmd, _, err := cmd.Find([]string{"broadcast"})
	require.NoError(t, err)

	priorityFlag := broadcastCmd.Flags().Lookup("priority")
	require.NotNil(t, priorityFlag)
	assert.Equal(t, "normal", priorityFlag.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "xml", "snapshot", "-s", "wedding"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestIntentRequiresSchedule(t *testing.T) {
	t.Setenv("TIMELINE_SCHEDULE", "")
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"start", "ceremony"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schedule id is required")
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("TIMELINE_JWT_SECRET", "a-secret-long-enough-for-the-tests!")
	out := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetArgs([]string{"token", "alice", "--ttl", "1h"})

	// When a token is minted
	require.NoError(t, cmd.Execute())

	// Then the master accepts it for the same actor
	tokens, err := auth.NewTokenManager("a-secret-long-enough-for-the-tests!")
	require.NoError(t, err)
	claims, err := tokens.ValidateToken(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.ActorRef)
}

func TestLoadSchedule(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wedding.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
schedule_id: wedding
date: 2026-06-20T00:00:00Z
events:
  - id: photos
    title: Photos
    category: photo
    start_time: 2026-06-20T10:30:00Z
    end_time: 2026-06-20T11:15:00Z
    assigned_vendor_ref: vendor-photo
  - id: ceremony
    title: Ceremony
    category: ceremony
    start_time: 2026-06-20T10:00:00Z
    end_time: 2026-06-20T10:30:00Z
    checklist:
      - id: rings
        task: Bring the rings
`), 0o600))

	day, err := LoadSchedule(path)
	require.NoError(t, err)

	// Then events are ordered by start and start out not started
	require.Len(t, day.Events, 2)
	assert.Equal(t, "ceremony", day.Events[0].ID)
	assert.Equal(t, timeline.StatusNotStarted, day.Events[1].Status)
	assert.Equal(t, "vendor-photo", day.Events[1].AssignedVendorRef)
	require.Len(t, day.Events[0].Checklist, 1)
}

func TestLoadSchedule_EndBeforeStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
schedule_id: wedding
date: 2026-06-20T00:00:00Z
events:
  - id: a
    title: A
    start_time: 2026-06-20T11:00:00Z
    end_time: 2026-06-20T10:00:00Z
`), 0o600))

	_, err := LoadSchedule(path)
	require.Error(t, err)
}
