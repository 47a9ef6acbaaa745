package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shelfmark/shelfmark/pkg/errors"
	"github.com/shelfmark/shelfmark/pkg/layout"
	"github.com/shelfmark/shelfmark/pkg/source"
)

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"input only", Options{Input: "x.csv"}, false},
		{"input and output", Options{Input: "x.csv", Output: "out.pdf"}, false},
		{"missing input", Options{}, true},
		{"bad output path", Options{Input: "x.csv", Output: "bad\x00.pdf"}, true},
	}

	for _, tt := range tests {
		err := tt.opts.ValidateAndSetDefaults()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestOptionsDefaultOutput(t *testing.T) {
	opts := Options{Input: "x.csv"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.Output != DefaultOutput {
		t.Errorf("Output = %q, want %q", opts.Output, DefaultOutput)
	}
}

func writeCSV(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "locations.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExecuteWritesPDF(t *testing.T) {
	dir := t.TempDir()
	input := writeCSV(t, dir,
		"aisle,ambient,color,qr_value\n"+
			"A12,B3,blue,STOWAGE-A12-B3\n"+
			"C5,D1,red,CHILLER-C5-D1\n")
	output := filepath.Join(dir, "labels.pdf")

	result, err := NewRunner(nil, nil).Execute(context.Background(), Options{Input: input, Output: output})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Records != 2 {
		t.Errorf("Records = %d, want 2", result.Records)
	}
	if result.Pages != 1 {
		t.Errorf("Pages = %d, want 1", result.Pages)
	}
	if result.Output != output {
		t.Errorf("Output = %q, want %q", result.Output, output)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
}

func TestExecuteEmptyInputPersistsNothing(t *testing.T) {
	dir := t.TempDir()
	input := writeCSV(t, dir, "aisle,ambient,color,qr_value\n")
	output := filepath.Join(dir, "labels.pdf")

	result, err := NewRunner(nil, nil).Execute(context.Background(), Options{Input: input, Output: output})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Pages != 0 {
		t.Errorf("Pages = %d, want 0", result.Pages)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("empty input should not persist a document")
	}
}

func TestExecuteRejectsUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "locations.ods")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewRunner(nil, nil).Execute(context.Background(), Options{Input: path, Output: filepath.Join(dir, "o.pdf")})
	if !errors.Is(err, errors.ErrCodeUnsupportedFormat) {
		t.Errorf("error = %v, want UNSUPPORTED_FORMAT", err)
	}
	// Nothing rendered, nothing persisted.
	if _, statErr := os.Stat(filepath.Join(dir, "o.pdf")); !os.IsNotExist(statErr) {
		t.Error("failed run should not persist a document")
	}
}

func TestExecuteRejectsOversizedGrid(t *testing.T) {
	dir := t.TempDir()
	input := writeCSV(t, dir, "aisle,ambient,color,qr_value\nA1,B1,blue,STOWAGE-A1\n")
	layoutFile := filepath.Join(dir, "layout.toml")
	if err := os.WriteFile(layoutFile, []byte("[grid]\ncolumns = 4\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewRunner(nil, nil).Execute(context.Background(), Options{
		Input:      input,
		Output:     filepath.Join(dir, "o.pdf"),
		LayoutFile: layoutFile,
	})
	if !errors.Is(err, errors.ErrCodeInvalidGeometry) {
		t.Errorf("error = %v, want INVALID_GEOMETRY", err)
	}
}

func TestRenderInMemory(t *testing.T) {
	dir := t.TempDir()
	input := writeCSV(t, dir, "aisle,ambient,color,qr_value\nA1,B1,blue,STOWAGE-A1\n")

	records, err := source.Read(input)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	pages, err := NewRunner(nil, nil).Render(context.Background(), records, layout.Default(), &buf)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if pages != 1 {
		t.Errorf("pages = %d, want 1", pages)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
}

func TestExecuteHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	input := writeCSV(t, dir, "aisle,ambient,color,qr_value\nA1,B1,blue,STOWAGE-A1\n")

	if _, err := NewRunner(nil, nil).Execute(ctx, Options{Input: input, Output: filepath.Join(dir, "o.pdf")}); err == nil {
		t.Error("Execute should fail on a cancelled context")
	}
}
