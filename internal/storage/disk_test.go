package storage

import (
	"bytes"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fileHeader(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	r := multipart.NewReader(&buf, w.Boundary())
	form, err := r.ReadForm(int64(len(content)) + 1024)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })

	headers := form.File[field]
	if len(headers) != 1 {
		t.Fatalf("expected 1 file header, got %d", len(headers))
	}
	return headers[0]
}

func newTestStore(t *testing.T, maxBytes int64) *DiskStore {
	t.Helper()
	store, err := NewDiskStore(t.TempDir(), maxBytes)
	if err != nil {
		t.Fatalf("new disk store: %v", err)
	}
	return store
}

func TestDiskStore_Save_CV(t *testing.T) {
	store := newTestStore(t, 1<<20)
	fh := fileHeader(t, "cvFile", "resume.PDF", []byte("%PDF-1.4 fake"))

	name, err := store.Save(fh, "cvFile", CVExtensions)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(name, "cvFile-") || !strings.HasSuffix(name, ".pdf") {
		t.Fatalf("unexpected generated name: %s", name)
	}

	data, err := os.ReadFile(filepath.Join(store.Dir(), name))
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "%PDF-1.4 fake" {
		t.Fatalf("saved content mismatch")
	}
}

func TestDiskStore_Save_RejectsExtension(t *testing.T) {
	store := newTestStore(t, 1<<20)
	fh := fileHeader(t, "cvFile", "resume.exe", []byte("MZ"))

	_, err := store.Save(fh, "cvFile", CVExtensions)
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestDiskStore_Save_RejectsOversized(t *testing.T) {
	store := newTestStore(t, 16)
	fh := fileHeader(t, "profilePicture", "me.png", bytes.Repeat([]byte("a"), 64))

	_, err := store.Save(fh, "profilePicture", PictureExtensions)
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestDiskStore_Save_UniqueNames(t *testing.T) {
	store := newTestStore(t, 1<<20)

	a, err := store.Save(fileHeader(t, "cvFile", "resume.pdf", []byte("a")), "cvFile", CVExtensions)
	if err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	b, err := store.Save(fileHeader(t, "cvFile", "resume.pdf", []byte("b")), "cvFile", CVExtensions)
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct names for identical uploads, got %s", a)
	}
}

func TestDiskStore_Remove(t *testing.T) {
	store := newTestStore(t, 1<<20)

	name, err := store.Save(fileHeader(t, "cvFile", "resume.pdf", []byte("x")), "cvFile", CVExtensions)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Remove(name); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.Dir(), name)); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected file to be gone, stat err: %v", err)
	}

	// Removing a missing file is not an error.
	if err := store.Remove(name); err != nil {
		t.Fatalf("second remove failed: %v", err)
	}
}

func TestDiskStore_Remove_StripsPath(t *testing.T) {
	store := newTestStore(t, 1<<20)

	outside := filepath.Join(filepath.Dir(store.Dir()), "outside.txt")
	if err := os.WriteFile(outside, []byte("keep"), 0o644); err != nil {
		t.Fatalf("write outside file: %v", err)
	}

	if err := store.Remove("../outside.txt"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := os.Stat(outside); err != nil {
		t.Fatalf("file outside the upload dir was touched: %v", err)
	}
}
