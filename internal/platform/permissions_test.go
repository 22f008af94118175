package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestChmodDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}

	if err := Chmod(dir, 0700); err != nil {
		t.Fatalf("Chmod on dir failed: %v", err)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != 0700 {
			t.Errorf("permissions = %o, want %o", perm, 0700)
		}
	}
}

func TestCheckWritable(t *testing.T) {
	dir := t.TempDir()
	if err := CheckWritable(dir); err != nil {
		t.Fatalf("CheckWritable(%s): %v", dir, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("probe left %d entries behind", len(entries))
	}
}

func TestCheckWritable_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "src")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := CheckWritable(file); err == nil {
		t.Error("expected error for regular file, got nil")
	}
}

func TestCheckWritable_Missing(t *testing.T) {
	if err := CheckWritable(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory, got nil")
	}
}
