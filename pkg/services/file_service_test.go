package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileUpload_StoresAndExtracts(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	record, text, err := f.svc.Files.Upload(ctx, f.project.ID, testOwnerID,
		"process.txt", []byte("start the pump when the tank level is low"))
	require.NoError(t, err)

	assert.Equal(t, "process.txt", record.OriginalFilename)
	assert.NotEqual(t, "process.txt", record.StoredFilename)
	assert.Equal(t, ".txt", record.FileType)
	assert.Equal(t, "start the pump when the tank level is low", text)

	files, err := f.svc.Files.List(ctx, f.project.ID, testOwnerID)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestFileUpload_Validation(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	_, _, err := f.svc.Files.Upload(ctx, f.project.ID, testOwnerID, "empty.txt", nil)
	assert.True(t, IsValidationError(err))

	_, _, err = f.svc.Files.Upload(ctx, f.project.ID, testOwnerID+1, "a.txt", []byte("x"))
	assert.ErrorIs(t, err, ErrForbidden)
}
