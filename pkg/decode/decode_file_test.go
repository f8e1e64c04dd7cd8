package decode

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func mediaLine(title string) string {
	return `{"title":"` + title + `","added_year":"2016","added_date":"2016-03-01","description":"d","userid":"u","videoid":"v"}`
}

func TestValidateFile_JSON_Auto_OK(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "one.json")
	if err := os.WriteFile(path, []byte(mediaLine("A")), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(context.Background(), path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "1 valid / 0 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	if !strings.Contains(out.String(), `"title":"A"`) {
		t.Fatalf("expected canonical record, got %q", out.String())
	}
}

func TestValidateFile_JSON_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte(`{"title":"A"}`), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(context.Background(), path, FormatJSON, &out)
	if err == nil {
		t.Fatalf("expected error")
	}
	if summary != "0 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestValidateFile_JSONL_Auto_Mixed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.jsonl")
	content := mediaLine("A") + "\n\n" + `{"title":"B"}` + "\n" + mediaLine("C") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(context.Background(), path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "2 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(lines))
	}
}

func TestValidateFile_MissingFile(t *testing.T) {
	var out bytes.Buffer
	if _, err := ValidateFile(context.Background(), filepath.Join(t.TempDir(), "nope.json"), FormatAuto, &out); err == nil {
		t.Fatalf("expected open error")
	}
}

func TestValidateFile_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.json")
	if err := os.WriteFile(path, []byte(mediaLine("A")), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	var out bytes.Buffer
	if _, err := ValidateFile(context.Background(), path, InputFormat("xml"), &out); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}

func TestValidateJSONLStream_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	if _, err := ValidateJSONLStream(ctx, strings.NewReader(mediaLine("A")+"\n"), &out); err == nil {
		t.Fatalf("expected context error")
	}
}
