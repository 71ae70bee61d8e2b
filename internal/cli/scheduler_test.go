package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_ZeroDelayDeliversImmediately(t *testing.T) {
	s := newScheduler()
	cmd := s.Schedule(taskSearch, 0, searchMsg{query: "bio"})
	require.NotNil(t, cmd)

	msg, ok := cmd().(scheduledMsg)
	require.True(t, ok)
	assert.True(t, s.Pending(taskSearch))
	assert.True(t, s.Accept(msg))
	assert.Equal(t, searchMsg{query: "bio"}, msg.payload)
	assert.False(t, s.Pending(taskSearch))
	assert.False(t, s.Accept(msg), "a task fires once")
}

func TestScheduler_RescheduleSupersedes(t *testing.T) {
	s := newScheduler()
	first := s.Schedule(taskSearch, 0, searchMsg{query: "b"})().(scheduledMsg)
	second := s.Schedule(taskSearch, 0, searchMsg{query: "bi"})().(scheduledMsg)

	assert.False(t, s.Accept(first))
	assert.True(t, s.Accept(second))
}

func TestScheduler_KeysAreIndependent(t *testing.T) {
	s := newScheduler()
	a := s.Schedule(deckPressTask("physics"), 0, deckReleaseMsg{id: "physics"})().(scheduledMsg)
	b := s.Schedule(deckPressTask("biology"), 0, deckReleaseMsg{id: "biology"})().(scheduledMsg)

	assert.True(t, s.Accept(a))
	assert.True(t, s.Accept(b))
}

func TestScheduler_Cancel(t *testing.T) {
	s := newScheduler()
	msg := s.Schedule(taskCramButton, 0, cramReadyMsg{chapter: "Waves", count: 2})().(scheduledMsg)

	s.Cancel(taskCramButton)
	assert.False(t, s.Pending(taskCramButton))
	assert.False(t, s.Accept(msg))

	s.Cancel("never-scheduled")
}

func TestScheduler_RejectsForeignMessages(t *testing.T) {
	mine, other := newScheduler(), newScheduler()
	mine.Schedule(taskNavPress, time.Hour, navReleaseMsg{})
	foreign := other.Schedule(taskNavPress, 0, navReleaseMsg{})().(scheduledMsg)

	assert.False(t, mine.Accept(foreign))
	assert.True(t, mine.Pending(taskNavPress))
}

func TestScheduler_DelayedTaskIsPendingUntilAccepted(t *testing.T) {
	s := newScheduler()
	cmd := s.Schedule(sessionTask("physics"), time.Hour, sessionReadyMsg{id: "physics"})

	require.NotNil(t, cmd)
	assert.True(t, s.Pending(sessionTask("physics")))
	assert.False(t, s.Pending(sessionTask("chemistry")))
}
