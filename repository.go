package marketplace

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Repository is the persistence gateway: it loads the entire store and saves
// it back as a whole-document replace.
//
// No locking or versioning is provided. Two overlapping load/mutate/save
// cycles race: both see the same snapshot and the second save silently
// discards the first's effect (a lost update). This is an accepted hazard of
// the whole-document model; usage is single process, one invocation at a time.
type Repository interface {
	Load() (*Store, error)
	Save(*Store) error
}

// FileRepository persists the store as a single JSON file.
type FileRepository struct {
	Path string

	// InitMissing makes Load return an empty store when the file does not
	// exist yet, instead of reporting ErrStorageUnavailable. The CLI sets it
	// so a first run starts from nothing.
	InitMissing bool
}

// Load reads and decodes the store file. A missing or unreadable file
// reports ErrStorageUnavailable (and keeps fs.ErrNotExist matchable);
// undecodable content reports ErrCorruptStore.
func (r *FileRepository) Load() (*Store, error) {
	f, err := os.Open(r.Path)
	if err != nil {
		if r.InitMissing && errors.Is(err, fs.ErrNotExist) {
			log.Printf("warning, store file %q does not exist, starting with an empty store", r.Path)
			return NewStore(), nil
		}
		return nil, fmt.Errorf("%w: could not open store file %q: %w", ErrStorageUnavailable, r.Path, err)
	}
	defer f.Close()

	store, err := DecodeStore(f)
	if err != nil {
		return nil, fmt.Errorf("store file %q: %w", r.Path, err)
	}
	return store, nil
}

// Save overwrites the store file with the whole store. It writes to a
// temporary file in the same directory and renames it over the target, so a
// crash mid-write leaves the previous document intact.
func (r *FileRepository) Save(s *Store) error {
	dir := filepath.Dir(r.Path)
	tmp, err := os.CreateTemp(dir, ".store-*.json")
	if err != nil {
		return fmt.Errorf("%w: could not create temporary store file: %w", ErrStorageUnavailable, err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeStore(tmp, s); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: could not write store file: %w", ErrStorageUnavailable, err)
	}
	if err := os.Rename(tmp.Name(), r.Path); err != nil {
		return fmt.Errorf("%w: could not replace store file %q: %w", ErrStorageUnavailable, r.Path, err)
	}
	return nil
}

// MemoryRepository keeps the encoded store in memory. It round-trips through
// the same codec as the file backend, so tests exercise the real wire format
// and can compare stored bytes before and after an operation.
type MemoryRepository struct {
	data []byte
}

// NewMemoryRepository creates a repository holding an empty store.
func NewMemoryRepository() *MemoryRepository {
	var buf bytes.Buffer
	if err := EncodeStore(&buf, NewStore()); err != nil {
		panic(err) // encoding an empty store cannot fail
	}
	return &MemoryRepository{data: buf.Bytes()}
}

// Load decodes a fresh store from the stored bytes.
func (r *MemoryRepository) Load() (*Store, error) {
	return DecodeStore(bytes.NewReader(r.data))
}

// Save replaces the stored bytes with the encoded store.
func (r *MemoryRepository) Save(s *Store) error {
	var buf bytes.Buffer
	if err := EncodeStore(&buf, s); err != nil {
		return err
	}
	r.data = buf.Bytes()
	return nil
}

// Bytes returns the persisted document as stored.
func (r *MemoryRepository) Bytes() []byte {
	return bytes.Clone(r.data)
}
