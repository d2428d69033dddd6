package fetch

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFilename(t *testing.T) {
	assert.Equal(t, "sunset.png", Filename("https://example.com/photos/sunset.png"))
	assert.Equal(t, "b.jpg", Filename("https://example.com/a/b.jpg?w=240"))
}

func TestFilenameFallsBackToId(t *testing.T) {
	for _, raw := range []string{
		"https://example.com/",
		"https://example.com",
		"https://example.com/%zz",
	} {
		name := Filename(raw)
		assert.Len(t, name, 20, raw)
		assert.NotContains(t, name, "/", raw)
	}
}

func TestFetchSkipsExisting(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("images", 0755))
	require.NoError(t, afero.WriteFile(fs, "images/one.png", []byte("cached"), 0644))

	f, err := New("images", zap.NewNop(), WithFs(fs))
	require.NoError(t, err)

	name, err := f.Fetch("https://example.com/pics/one.png")
	require.NoError(t, err)
	assert.Equal(t, "one.png", name)

	bs, err := afero.ReadFile(fs, "images/one.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("cached"), bs)
}

func TestNewMissingDir(t *testing.T) {
	_, err := New("nowhere", zap.NewNop(), WithFs(afero.NewMemMapFs()))
	assert.Error(t, err)
}
