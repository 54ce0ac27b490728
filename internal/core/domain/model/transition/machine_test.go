package transition_test

import (
	"sync"
	"testing"
	"time"

	"backoffice/internal/core/domain/model/transition"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type light string

const (
	red    light = "RED"
	green  light = "GREEN"
	yellow light = "YELLOW"
	broken light = "BROKEN"
)

func newLights(t *testing.T) *transition.Machine[light] {
	t.Helper()
	m, err := transition.NewMachine(transition.StatusTypeOrder, []transition.Rule[light]{
		{From: red, To: []light{green, broken}},
		{From: green, To: []light{yellow, broken}},
		{From: yellow, To: []light{red, broken}},
		{From: broken},
	})
	require.NoError(t, err)
	return m
}

func TestNewMachine(t *testing.T) {
	t.Run("should reject targets that are not declared", func(t *testing.T) {
		_, err := transition.NewMachine(transition.StatusTypeOrder, []transition.Rule[light]{
			{From: red, To: []light{green}},
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "RED -> GREEN")
	})

	t.Run("should reject duplicate sources and targets", func(t *testing.T) {
		_, err := transition.NewMachine(transition.StatusTypeOrder, []transition.Rule[light]{
			{From: red}, {From: red},
		})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = transition.NewMachine(transition.StatusTypeOrder, []transition.Rule[light]{
			{From: red, To: []light{broken, broken}}, {From: broken},
		})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should require status type and rules", func(t *testing.T) {
		_, err := transition.NewMachine[light]("", []transition.Rule[light]{{From: red}})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = transition.NewMachine[light](transition.StatusTypeOrder, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should not alias caller slices", func(t *testing.T) {
		targets := []light{broken}
		m := transition.MustNewMachine(transition.StatusTypeOrder, []transition.Rule[light]{
			{From: red, To: targets}, {From: broken},
		})
		targets[0] = red

		assert.Equal(t, []light{broken}, m.AllowedNextStates(red))
	})

	t.Run("must variant should panic on bad table", func(t *testing.T) {
		assert.Panics(t, func() {
			transition.MustNewMachine(transition.StatusTypeOrder, []transition.Rule[light]{{From: red, To: []light{green}}})
		})
	})
}

func TestMachine_Lookups(t *testing.T) {
	m := newLights(t)

	assert.Equal(t, []light{red, green, yellow, broken}, m.States())
	assert.Equal(t, []light{broken}, m.TerminalStates())
	assert.True(t, m.IsTerminal(broken))
	assert.False(t, m.IsTerminal(red))
	assert.False(t, m.IsTerminal("BLUE"))
	assert.True(t, m.Knows(yellow))
	assert.False(t, m.Knows("BLUE"))
	assert.Empty(t, m.AllowedNextStates("BLUE"))
	assert.Equal(t, transition.StatusTypeOrder, m.StatusType())
}

func TestMachine_AllowedNextStatesIsACopy(t *testing.T) {
	m := newLights(t)

	got := m.AllowedNextStates(red)
	got[0] = yellow

	assert.Equal(t, []light{green, broken}, m.AllowedNextStates(red))
}

func TestMachine_Transition(t *testing.T) {
	m := newLights(t)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("should return entry for allowed change", func(t *testing.T) {
		next, entry, err := m.Transition(red, green, "operator", now)

		require.NoError(t, err)
		assert.Equal(t, green, next)
		assert.Equal(t, transition.Entry{
			Timestamp:  now,
			Actor:      "operator",
			StatusType: transition.StatusTypeOrder,
			OldStatus:  "RED",
			NewStatus:  "GREEN",
		}, entry)
	})

	t.Run("should reject change outside the table", func(t *testing.T) {
		next, entry, err := m.Transition(red, yellow, "operator", now)

		var invalid *errs.InvalidTransitionError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "RED", invalid.From)
		assert.Equal(t, "YELLOW", invalid.To)
		assert.Empty(t, next)
		assert.Zero(t, entry)
	})

	t.Run("should reject self transition that is not listed", func(t *testing.T) {
		_, _, err := m.Transition(green, green, "operator", now)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("should reject everything from unknown status", func(t *testing.T) {
		_, _, err := m.Transition("BLUE", red, "operator", now)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestMachine_ConcurrentUse(t *testing.T) {
	m := newLights(t)
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, _, _ = m.Transition(red, green, "worker", time.Now())
				_ = m.AllowedNextStates(yellow)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, []light{red, broken}, m.AllowedNextStates(yellow))
}
