package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/cramit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_EmbeddedCatalog(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	require.Len(t, cat.Subjects, 3)
	assert.Equal(t, "physics", cat.Subjects[0].ID)
	assert.Equal(t, "chemistry", cat.Subjects[1].ID)
	assert.Equal(t, "mathematics", cat.Subjects[2].ID)
	for _, s := range cat.Subjects {
		assert.Len(t, s.Chapters, 15, "subject %s", s.ID)
	}
	assert.Equal(t, "Units and Measurements", cat.Subjects[0].Chapters[0])
	assert.Equal(t, domain.ColorTeal, cat.Subjects[1].Color)

	assert.Equal(t, domain.DefaultSubtopics, cat.Subtopics)

	require.Len(t, cat.Decks, 4)
	assert.Equal(t, domain.Deck{
		ID: "physics", Name: "Physics", Total: 100, Due: 15,
		Status: domain.DeckCritical, Color: domain.ColorPurple,
	}, cat.Decks[3])

	assert.Equal(t, 12, cat.Profile.Streak)
	assert.Equal(t, "physics", cat.Profile.Recommended.SubjectID)
	assert.Equal(t, "~8m", cat.Profile.Recommended.EstimatedTime)
}

func TestLoad_EmptyPathUsesEmbedded(t *testing.T) {
	cat, err := Load("  ")
	require.NoError(t, err)
	assert.Len(t, cat.Subjects, 3)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := []byte(`
subjects:
  - id: bio
    name: Biology
    color: teal
    chapters: [Cells, Genetics]
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cat, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cat.Subjects, 1)
	assert.Equal(t, []string{"Cells", "Genetics"}, cat.Subjects[0].Chapters)
	assert.Equal(t, domain.DefaultSubtopics, cat.Subtopics, "missing subtopics fall back to defaults")
	assert.Empty(t, cat.Decks)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading catalog")
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("subjects: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding catalog")
}

func TestParse_ValidationErrorsAreJoined(t *testing.T) {
	data := []byte(`
subjects:
  - id: a
    name: A
    color: magenta
    chapters: [One]
  - id: a
    name: ""
    color: teal
    chapters: []
decks:
  - id: d
    name: D
    total: 5
    due: 9
    status: overdue
    color: teal
`)
	_, err := Parse(data)
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, `unknown color "magenta"`)
	assert.Contains(t, msg, `duplicate id "a"`)
	assert.Contains(t, msg, "name is required")
	assert.Contains(t, msg, "at least one chapter")
	assert.Contains(t, msg, `unknown status "overdue"`)
	assert.Contains(t, msg, "due 9 out of range")
}

func TestParse_NoSubjects(t *testing.T) {
	_, err := Parse([]byte("decks: []"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no subjects")
}

func TestSubjectLookup(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	s, ok := cat.Subject("chemistry")
	require.True(t, ok)
	assert.Equal(t, "Chemistry", s.Name)

	_, ok = cat.Subject("history")
	assert.False(t, ok)
}
