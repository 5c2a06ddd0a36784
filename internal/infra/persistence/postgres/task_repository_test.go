package postgres

import (
	"testing"
	"time"

	"taskboard/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTaskDomain_CarriesCreatedAt(t *testing.T) {
	createdAt := time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC)
	description := "details"

	task := &entity.Task{
		ID:          42,
		Title:       "renamed",
		Description: &description,
		OwnerID:     7,
		CreatedAt:   createdAt,
	}

	taskM := fromTaskDomain(task)

	require.NotNil(t, taskM)
	// Update writes every column via Save, so a zero CreatedAt here would
	// overwrite the stored creation timestamp with the zero time.
	assert.Equal(t, createdAt, taskM.CreatedAt)
	assert.Equal(t, task.ID, taskM.ID)
	assert.Equal(t, task.Title, taskM.Title)
	assert.Equal(t, task.Description, taskM.Description)
	assert.Equal(t, task.OwnerID, taskM.OwnerID)
}

func TestTaskMappers_RoundTrip(t *testing.T) {
	createdAt := time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC)

	original := &entity.Task{
		ID:        11,
		Title:     "round trip",
		OwnerID:   3,
		CreatedAt: createdAt,
	}

	restored := toTaskDomain(fromTaskDomain(original))

	require.NotNil(t, restored)
	assert.Equal(t, original.ID, restored.ID)
	assert.Equal(t, original.Title, restored.Title)
	assert.Nil(t, restored.Description)
	assert.Equal(t, original.OwnerID, restored.OwnerID)
	assert.Equal(t, original.CreatedAt, restored.CreatedAt)
}
