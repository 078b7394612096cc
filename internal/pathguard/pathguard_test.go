package pathguard

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateInsideAllowed(t *testing.T) {
	dir := t.TempDir()
	guard, err := New([]string{dir})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	path := filepath.Join(dir, "doc.docx")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := guard.Validate(path)
	if err != nil {
		t.Fatalf("Validate rejected in-bounds path: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("validated path %q is not absolute", got)
	}
}

func TestValidateNewFileChecksParent(t *testing.T) {
	dir := t.TempDir()
	guard, err := New([]string{dir})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// File does not exist yet; the existing parent decides.
	if _, err := guard.Validate(filepath.Join(dir, "new.docx")); err != nil {
		t.Errorf("Validate rejected new file in allowed dir: %v", err)
	}
}

func TestValidateRejectsOutside(t *testing.T) {
	guard, err := New([]string{t.TempDir()})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	outside := filepath.Join(t.TempDir(), "escape.txt")
	if err := os.WriteFile(outside, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := guard.Validate(outside); err == nil {
		t.Error("Validate accepted a path outside the allowed directories")
	}
}

func TestValidateRejectsSiblingPrefix(t *testing.T) {
	parent := t.TempDir()
	allowed := filepath.Join(parent, "data")
	sibling := filepath.Join(parent, "database")
	for _, d := range []string{allowed, sibling} {
		if err := os.Mkdir(d, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	guard, err := New([]string{allowed})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	target := filepath.Join(sibling, "file.txt")
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := guard.Validate(target); err == nil {
		t.Error("prefix match admitted a sibling directory")
	}
}

func TestValidateRejectsSymlinkEscape(t *testing.T) {
	allowed := t.TempDir()
	outside := t.TempDir()
	target := filepath.Join(outside, "secret.txt")
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(allowed, "link.txt")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	guard, err := New([]string{allowed})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := guard.Validate(link); err == nil {
		t.Error("symlink pointing outside the allowed directories was accepted")
	}
}

func TestNewRejectsMissingDirectory(t *testing.T) {
	if _, err := New([]string{filepath.Join(t.TempDir(), "absent")}); err == nil {
		t.Error("New accepted a non-existent directory")
	}
}

func TestNewRejectsEmptySet(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("New accepted an empty directory set")
	}
}
