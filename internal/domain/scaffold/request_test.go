package scaffold

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestNewRequestTrimsFilename(t *testing.T) {
	req, err := NewRequest("  my_widget \t", "out", true, false)
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	if req.Filename != "my_widget" {
		t.Fatalf("Filename = %q", req.Filename)
	}
	if req.HeaderName() != "my_widget.hpp" {
		t.Fatalf("HeaderName() = %q", req.HeaderName())
	}
	if got, want := req.Path("my_widget.cpp"), filepath.Join("out", "my_widget.cpp"); got != want {
		t.Fatalf("Path() = %q, want %q", got, want)
	}
}

func TestNewRequestValidation(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		directory string
		wantMsg   string
	}{
		{name: "empty filename", filename: "", directory: "out", wantMsg: "empty input: filename is required"},
		{name: "whitespace filename", filename: "   ", directory: "out", wantMsg: "empty input: filename is required"},
		{name: "empty directory", filename: "buffer", directory: "", wantMsg: "empty input: directory is required"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRequest(tc.filename, tc.directory, false, false)
			if !errors.Is(err, ErrEmptyInput) {
				t.Fatalf("expected ErrEmptyInput, got %v", err)
			}
			if err.Error() != tc.wantMsg {
				t.Fatalf("error = %q, want %q", err.Error(), tc.wantMsg)
			}
		})
	}
}

func TestFilesystemErrorMatchesSentinel(t *testing.T) {
	cause := errors.New("permission denied")
	err := error(NewFilesystemError("write", "/tmp/x.hpp", cause))
	if !errors.Is(err, ErrFilesystem) {
		t.Fatal("FilesystemError must match ErrFilesystem")
	}
	if !errors.Is(err, cause) {
		t.Fatal("FilesystemError must unwrap to its cause")
	}
	if err.Error() != "write /tmp/x.hpp: permission denied" {
		t.Fatalf("Error() = %q", err.Error())
	}
	var fsErr *FilesystemError
	if !errors.As(err, &fsErr) || fsErr.Op != "write" {
		t.Fatalf("errors.As failed: %#v", fsErr)
	}
}
