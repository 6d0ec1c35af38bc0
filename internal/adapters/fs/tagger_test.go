package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jitsnap/internal/adapters/fs"
	"go.trai.ch/jitsnap/internal/core/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func TestTagger_Tag(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.js", "export const a = 1")
	b := writeFile(t, dir, "b.js", "export const a = 1")
	c := writeFile(t, dir, "c.js", "export const c = 2")

	tagger := fs.NewTagger()
	ctx := context.Background()

	tagA, err := tagger.Tag(ctx, a)
	require.NoError(t, err)
	tagB, err := tagger.Tag(ctx, b)
	require.NoError(t, err)
	tagC, err := tagger.Tag(ctx, c)
	require.NoError(t, err)

	assert.Equal(t, tagA, tagB, "equal content yields equal tags")
	assert.NotEqual(t, tagA, tagC)
	assert.Len(t, tagA, 18, "16 hex digits plus quotes")
	assert.Equal(t, `"`, tagA[:1])
}

func TestTagger_TagContent_MatchesTag(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.js", "console.log('hi')")

	tagger := fs.NewTagger()
	fromDisk, err := tagger.Tag(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, fromDisk, tagger.TagContent([]byte("console.log('hi')")))
}

func TestTagger_Tag_Missing(t *testing.T) {
	tagger := fs.NewTagger()

	_, err := tagger.Tag(context.Background(), filepath.Join(t.TempDir(), "missing.js"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrFileOpenFailed.Error())
}

func TestTagger_Tag_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fs.NewTagger().Tag(ctx, "irrelevant")
	require.ErrorIs(t, err, context.Canceled)
}

func TestTagger_ComputeFileHash_Directory(t *testing.T) {
	_, err := fs.NewTagger().ComputeFileHash(t.TempDir())
	require.Error(t, err)
}
