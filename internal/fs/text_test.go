package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestIsTextFileDetectsUTF16LE(t *testing.T) {
	content := []byte{0xFF, 0xFE, 0x41, 0x00, 0x0D, 0x00, 0x0A, 0x00}
	if !IsTextFile("config.ini", content) {
		t.Fatalf("expected UTF-16 LE content to be treated as text")
	}
}

func TestIsTextFileRejectsNULBytes(t *testing.T) {
	if IsTextFile("blob", []byte{'a', 0x00, 'b'}) {
		t.Fatalf("expected NUL content to be binary")
	}
	if IsTextFile("image.png", []byte("looks like text")) {
		t.Fatalf("expected .png extension to be binary")
	}
}

func TestNormalizeTextContentUTF16LE(t *testing.T) {
	content := []byte{0xFF, 0xFE, 0x41, 0x00, 0x0D, 0x00, 0x0A, 0x00}
	if got := NormalizeTextContent(content); got != "A\r\n" {
		t.Fatalf("NormalizeTextContent returned %q, want %q", got, "A\r\n")
	}
}

func TestReadLinesWindow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("one\r\ntwo\nthree\nfour\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	lines, start, err := ReadLines(path, 1, 2)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if start != 1 || len(lines) != 2 || lines[0] != "two" || lines[1] != "three" {
		t.Fatalf("unexpected window %q at %d", lines, start)
	}

	lines, _, err = ReadLines(path, 0, 10)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(lines) != 4 || lines[0] != "one" {
		t.Fatalf("expected CR stripped and 4 lines, got %q", lines)
	}
}

func TestReadLinesBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data")
	if err := os.WriteFile(path, []byte{0x00, 0x01, 0x02}, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := ReadLines(path, 0, 5); !errors.Is(err, ErrNotText) {
		t.Fatalf("expected ErrNotText, got %v", err)
	}
}

func TestReadLinesPastWindowFallsBackToHead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	lines, start, err := ReadLines(path, 50, 2)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if start != 0 {
		t.Fatalf("expected head window, got start %d", start)
	}
	if len(lines) != 2 || lines[0] != "one" || lines[1] != "two" {
		t.Fatalf("unexpected head window %q", lines)
	}
}
