// Package store persists normalized images under random unique names so
// the web layer can reference them across requests.
package store

import (
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
)

// ErrPersistenceExhausted means every attempt at a unique file name
// collided. The caller should reject the request rather than keep looping.
var ErrPersistenceExhausted = errors.New("store: unique name generation exhausted")

const (
	nameLength  = 30
	maxAttempts = 10
	alphabet    = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// Store writes images into a single directory. The namespace is append-only:
// collisions are handled by existence-check-then-retry, never by locking.
type Store struct {
	Dir string

	// newName generates a candidate base name; tests swap it out to force
	// collisions.
	newName func() string
}

// New returns a Store rooted at dir. The directory must already exist.
func New(dir string) *Store {
	return &Store{Dir: dir, newName: randomName}
}

func randomName() string {
	buf := make([]byte, nameLength)
	for i := range buf {
		buf[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(buf)
}

// Save encodes img under a fresh random name with the given extension and
// returns the file name. The name space is large enough that collisions are
// not expected; the attempt bound exists only to guarantee termination.
func (s *Store) Save(img image.Image, ext string) (string, error) {
	if s.newName == nil {
		s.newName = randomName
	}
	for attempt := 0; attempt < maxAttempts; attempt++ {
		name := s.newName() + ext
		path := filepath.Join(s.Dir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return "", err
		}
		if err := s.write(path, img, ext); err != nil {
			return "", err
		}
		return name, nil
	}
	return "", ErrPersistenceExhausted
}

func (s *Store) write(path string, img image.Image, ext string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f, img, ext); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encode(f *os.File, img image.Image, ext string) error {
	switch ext {
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	default:
		return png.Encode(f, img)
	}
}

// Load reopens a previously saved image.
func (s *Store) Load(name string) (image.Image, error) {
	f, err := os.Open(filepath.Join(s.Dir, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}
