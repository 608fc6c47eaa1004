package gallery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("img"), 0o644))
}

func TestListOrderingWithMainImage(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"2.jpeg", "extra.png", "1.jpeg", MainImage} {
		touch(t, dir, n)
	}

	listing, err := List(dir)
	require.NoError(t, err)
	require.Equal(t, "img/"+MainImage, listing.MainURL)
	require.Equal(t, []string{"img/1.jpeg", "img/2.jpeg", "img/extra.png"}, listing.GalleryURLs)
}

func TestListWithoutMainImagePromotesFirst(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "3.jpeg")
	touch(t, dir, "1.jpeg")

	listing, err := List(dir)
	require.NoError(t, err)
	require.Equal(t, "img/1.jpeg", listing.MainURL)
	require.Equal(t, []string{"img/3.jpeg"}, listing.GalleryURLs)
}

func TestListSkipsNonImagesAndSubdirs(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "notes.txt")
	touch(t, dir, "photo.JPG") // extension match is case-insensitive
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	listing, err := List(dir)
	require.NoError(t, err)
	require.Equal(t, "img/photo.JPG", listing.MainURL)
	require.Empty(t, listing.GalleryURLs)
}

func TestListEmptyDirIsNotAnError(t *testing.T) {
	listing, err := List(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, listing.MainURL)
	require.Empty(t, listing.GalleryURLs)
}

func TestListUnreadableDirIsAnError(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
}
