package upload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave(t *testing.T) {
	dir := t.TempDir()
	store, err := New(filepath.Join(dir, "docs"))
	require.NoError(t, err)

	tests := []struct {
		name        string
		data        []byte
		ext         string
		expectError bool
	}{
		{
			name:        "Saves a document",
			data:        []byte("fake jpeg bytes"),
			ext:         ".jpg",
			expectError: false,
		},
		{
			name:        "Rejects empty data",
			data:        nil,
			ext:         ".jpg",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := store.Save(tt.data, tt.ext)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, ref)
				return
			}
			assert.NoError(t, err)
			assert.True(t, strings.HasSuffix(ref, tt.ext))

			saved, err := os.ReadFile(filepath.Join(dir, "docs", ref))
			assert.NoError(t, err)
			assert.Equal(t, tt.data, saved)
		})
	}
}

func TestSaveReferencesAreUnique(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	refs := make(map[string]struct{})
	for i := 0; i < 10; i++ {
		ref, err := store.Save([]byte("doc"), ".png")
		require.NoError(t, err)
		refs[ref] = struct{}{}
	}
	assert.Len(t, refs, 10)
}
