package marketplace

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileRepository_MissingFile(t *testing.T) {
	repo := &FileRepository{Path: filepath.Join(t.TempDir(), "users.json")}

	_, err := repo.Load()
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("Load on missing file = %v, want ErrStorageUnavailable", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load on missing file = %v, want fs.ErrNotExist to stay matchable", err)
	}
}

func TestFileRepository_InitMissing(t *testing.T) {
	repo := &FileRepository{Path: filepath.Join(t.TempDir(), "users.json"), InitMissing: true}

	store, err := repo.Load()
	if err != nil {
		t.Fatalf("Load with InitMissing: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("missing file loaded %d users, want 0", store.Len())
	}
}

func TestFileRepository_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	repo := &FileRepository{Path: path}

	if err := repo.Save(twoUserStore()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Len() != 2 {
		t.Fatalf("loaded %d users, want 2", got.Len())
	}
	if !got.UserExists("alice") || !got.UserExists("bob") {
		t.Error("users lost in file round trip")
	}

	// The document on disk is a pretty-printed array.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.HasPrefix(string(data), "[\n") {
		t.Errorf("file does not start with a pretty-printed array: %.10q", data)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("file does not end with a newline")
	}
}

func TestFileRepository_SaveReplacesWholeDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	repo := &FileRepository{Path: path}

	if err := repo.Save(twoUserStore()); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	s := NewStore()
	s.AddUser(NewUser("Carol Poe", "carol", cash(10)))
	if err := repo.Save(s); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, err := repo.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Len() != 1 || !got.UserExists("carol") {
		t.Errorf("second save did not replace the document: %d users", got.Len())
	}
}

func TestFileRepository_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}
	repo := &FileRepository{Path: path}

	_, err := repo.Load()
	if !errors.Is(err, ErrCorruptStore) {
		t.Errorf("Load on corrupt file = %v, want ErrCorruptStore", err)
	}
}
