package artifact

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestSaveAndPurge(t *testing.T) {
	is := is.New(t)

	dir := t.TempDir()
	s, err := NewStore(dir, time.Hour)
	is.NoErr(err)

	path, err := s.Save(42, []byte("mp3-bytes"))
	is.NoErr(err)
	is.True(strings.HasPrefix(filepath.Base(path), "speech_42_"))

	data, err := os.ReadFile(path)
	is.NoErr(err)
	is.Equal(string(data), "mp3-bytes")

	// Fresh artifact survives a purge.
	removed, err := s.Purge()
	is.NoErr(err)
	is.Equal(removed, 0)

	// Age the file past the TTL; now it goes.
	old := time.Now().Add(-2 * time.Hour)
	is.NoErr(os.Chtimes(path, old, old))

	removed, err = s.Purge()
	is.NoErr(err)
	is.Equal(removed, 1)

	_, err = os.Stat(path)
	is.True(os.IsNotExist(err))
}

func TestSaveNamesNeverCollide(t *testing.T) {
	is := is.New(t)

	s, err := NewStore(t.TempDir(), time.Hour)
	is.NoErr(err)

	p1, err := s.Save(1, []byte("a"))
	is.NoErr(err)
	p2, err := s.Save(1, []byte("b"))
	is.NoErr(err)
	is.True(p1 != p2)
}
