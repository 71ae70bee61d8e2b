package explore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/cramit/internal/domain"
)

func TestOpenModal_AllSelected(t *testing.T) {
	s := newDefaultState(t, "physics")

	pulse := s.OpenModal("Work, Energy and Power")

	assert.Equal(t, OpenPulse, pulse)
	assert.True(t, s.ModalOpen())
	assert.Equal(t, "Work, Energy and Power", s.ModalChapter())
	assert.Equal(t, domain.DefaultSubtopics, s.SelectedSubtopics())
	assert.Equal(t, StartLabel, s.StartLabel())
}

func TestOpenModal_ResetsPreviousToggles(t *testing.T) {
	s := newDefaultState(t, "physics")
	s.OpenModal("Gravitation")
	s.ToggleSubtopic(0)
	s.ToggleSubtopic(3)
	s.CloseModal()

	s.OpenModal("Oscillations")
	assert.Len(t, s.SelectedSubtopics(), 6)
	assert.Equal(t, "Oscillations", s.ModalChapter())
}

func TestToggleSubtopic_Isolated(t *testing.T) {
	s := newDefaultState(t, "physics")
	s.OpenModal("Gravitation")

	pulse, ok := s.ToggleSubtopic(2)
	require.True(t, ok)
	assert.Equal(t, TogglePulse, pulse)

	items := s.Subtopics()
	for i, item := range items {
		assert.Equal(t, i != 2, item.Selected, "row %d", i)
	}
	assert.NotContains(t, s.SelectedSubtopics(), "Formulas")

	s.ToggleSubtopic(2)
	assert.Len(t, s.SelectedSubtopics(), 6)
}

func TestToggleSubtopic_OutOfRange(t *testing.T) {
	s := newDefaultState(t, "physics")
	s.OpenModal("Gravitation")

	_, ok := s.ToggleSubtopic(6)
	assert.False(t, ok)
	_, ok = s.ToggleSubtopic(-1)
	assert.False(t, ok)
	assert.Len(t, s.SelectedSubtopics(), 6)
}

func TestToggleFocused_FollowsCursor(t *testing.T) {
	s := newDefaultState(t, "physics")
	s.OpenModal("Gravitation")

	s.MoveSubtopicCursor(4)
	_, ok := s.ToggleFocused()
	require.True(t, ok)
	assert.NotContains(t, s.SelectedSubtopics(), "Past Year Questions")
	assert.True(t, s.Subtopics()[4].Focused)

	s.MoveSubtopicCursor(10)
	assert.True(t, s.Subtopics()[5].Focused)
}

func TestCloseModal_KeepsChapter(t *testing.T) {
	s := newDefaultState(t, "physics")
	s.OpenModal("Gravitation")
	s.ToggleSubtopic(1)

	s.CloseModal()

	assert.False(t, s.ModalOpen())
	assert.Equal(t, "Gravitation", s.ModalChapter())
	assert.Len(t, s.SelectedSubtopics(), 5)
}

func TestBeginCram_EmptySelectionBlocked(t *testing.T) {
	s := newDefaultState(t, "physics")
	s.OpenModal("Gravitation")
	for i := range domain.DefaultSubtopics {
		s.ToggleSubtopic(i)
	}

	req, err := s.BeginCram()

	assert.ErrorIs(t, err, domain.ErrEmptySelection)
	assert.Nil(t, req)
	assert.Equal(t, StartLabel, s.StartLabel())
	assert.False(t, s.Initiating())
	assert.True(t, s.ModalOpen())
}

func TestBeginCram_ModalClosed(t *testing.T) {
	s := newDefaultState(t, "physics")
	_, err := s.BeginCram()
	assert.ErrorIs(t, err, ErrModalClosed)
}

func TestBeginCram_ThenFinish(t *testing.T) {
	s := newDefaultState(t, "chemistry")
	s.OpenModal("Equilibrium")
	s.ToggleSubtopic(1)

	req, err := s.BeginCram()
	require.NoError(t, err)
	assert.Equal(t, "chemistry", req.SubjectID)
	assert.Equal(t, "Equilibrium", req.Chapter)
	assert.Equal(t, []string{"Key Concepts", "Formulas", "Problem Solving", "Past Year Questions", "Critical Models"}, req.Subtopics)
	assert.Equal(t, InitiatingLabel, s.StartLabel())
	assert.True(t, s.Initiating())

	s.FinishCram()
	assert.False(t, s.ModalOpen())
	assert.False(t, s.Initiating())
	assert.Equal(t, StartLabel, s.StartLabel())
}

func TestCancelCram_KeepsModalOpen(t *testing.T) {
	s := newDefaultState(t, "physics")
	s.OpenModal("Waves")
	_, err := s.BeginCram()
	require.NoError(t, err)

	s.CancelCram()

	assert.True(t, s.ModalOpen())
	assert.False(t, s.Initiating())
	assert.Equal(t, StartLabel, s.StartLabel())
}
