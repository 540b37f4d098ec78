package templategen

import "testing"

func TestConfirmation(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  string
	}{
		{name: "none", files: nil, want: "No files have been generated."},
		{name: "one", files: []string{"a.hpp"}, want: "Files 'a.hpp' have been generated."},
		{
			name:  "pair",
			files: []string{"d/a.hpp", "d/a.cpp"},
			want:  "Files 'd/a.hpp', 'd/a.cpp' have been generated.",
		},
		{
			name:  "triple",
			files: []string{"d/a.hpp", "d/a.cpp", "d/a.tpp"},
			want:  "Files 'd/a.hpp', 'd/a.cpp', and 'd/a.tpp' have been generated.",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Confirmation(Result{Files: tc.files}); got != tc.want {
				t.Fatalf("Confirmation() = %q, want %q", got, tc.want)
			}
		})
	}
}
