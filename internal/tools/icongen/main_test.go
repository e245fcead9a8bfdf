package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const checkSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><polyline points="20 6 9 17 4 12" /></svg>`

func writeSource(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "check.svg"), []byte(checkSVG), 0o644); err != nil {
		t.Fatalf("write svg: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "check.json"), []byte(`{"aliases": ["tick"]}`), 0o644); err != nil {
		t.Fatalf("write metadata: %v", err)
	}
	return dir
}

func TestRunWritesCatalog(t *testing.T) {
	src := writeSource(t)
	out := filepath.Join(t.TempDir(), "gen", "catalog_gen.go")
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	if err := run([]string{"-src", src, "-out", out, "-pkg", "sample"}, &stdout, &stderr); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if stderr.Len() != 0 {
		t.Fatalf("unexpected stderr output: %q", stderr.String())
	}
	if !strings.Contains(stdout.String(), "wrote 1 icons") {
		t.Fatalf("unexpected stdout: %q", stdout.String())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read generated catalog: %v", err)
	}
	for _, want := range []string{"// Code generated by icongen. DO NOT EDIT.", "package sample", `aliases: []string{"tick"}`, "func Check(p Properties) Element"} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("generated catalog missing %q:\n%s", want, data)
		}
	}
}

func TestRunReadsSourceFromEnv(t *testing.T) {
	src := writeSource(t)
	out := filepath.Join(t.TempDir(), "catalog_gen.go")
	t.Setenv("LUCIDE_ICONS_DIR", src)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	if err := run([]string{"-out", out}, &stdout, &stderr); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read generated catalog: %v", err)
	}
	if !strings.Contains(string(data), "package icons") {
		t.Fatalf("expected default package name:\n%s", data)
	}
}

func TestRunRequiresSource(t *testing.T) {
	t.Setenv("LUCIDE_ICONS_DIR", "")
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	err := run([]string{}, &stdout, &stderr)
	if err == nil || !strings.Contains(err.Error(), "icon source directory is required") {
		t.Fatalf("expected missing source error, got %v", err)
	}
}

func TestRunKeepsExistingOutputOnFailure(t *testing.T) {
	src := t.TempDir()
	if err := os.WriteFile(filepath.Join(src, "broken.svg"), []byte(`<svg viewBox="0 0 16 16"><path d="M0 0"/></svg>`), 0o644); err != nil {
		t.Fatalf("write svg: %v", err)
	}
	out := filepath.Join(t.TempDir(), "catalog_gen.go")
	if err := os.WriteFile(out, []byte("previous"), 0o644); err != nil {
		t.Fatalf("seed output: %v", err)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	if err := run([]string{"-src", src, "-out", out}, &stdout, &stderr); err == nil {
		t.Fatal("expected invalid svg error")
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "previous" {
		t.Fatalf("expected output untouched, got %q", data)
	}
}

func TestRunReturnsUsageErrorOnInvalidFlag(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	err := run([]string{"-unknown"}, &stdout, &stderr)
	if err == nil {
		t.Fatal("expected parse error for invalid flag")
	}
	if !strings.Contains(err.Error(), "flag provided but not defined") {
		t.Fatalf("error = %q, want invalid flag message", err.Error())
	}
}
