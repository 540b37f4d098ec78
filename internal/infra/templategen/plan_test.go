package templategen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/poruru/cppgen/internal/domain/scaffold"
	"gopkg.in/yaml.v3"
)

func TestBuildPlanDoesNotWrite(t *testing.T) {
	dir := t.TempDir()
	req := scaffold.Request{Filename: "my_widget", Directory: dir, CreateClass: true}

	plan, err := BuildPlan(req)
	if err != nil {
		t.Fatalf("BuildPlan() error = %v", err)
	}
	if plan.ClassName != "MyWidget" || plan.Guard != "MY_WIDGET_HPP" {
		t.Fatalf("unexpected plan identity: %#v", plan)
	}
	if len(plan.Files) != 2 {
		t.Fatalf("planned files = %#v", plan.Files)
	}
	if plan.Files[0].Path != filepath.Join(dir, "my_widget.hpp") || plan.Files[0].Kind != scaffold.KindDeclaration {
		t.Fatalf("first planned file = %#v", plan.Files[0])
	}
	if plan.Files[0].Bytes == 0 {
		t.Fatal("planned bytes must be non-zero")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("plan must not write files, found %d", len(entries))
	}
}

func TestEncodePlanRoundTripsKeys(t *testing.T) {
	plan, err := BuildPlan(scaffold.Request{Filename: "buffer", Directory: "out", CreateTemplate: true})
	if err != nil {
		t.Fatalf("BuildPlan() error = %v", err)
	}
	encoded, err := EncodePlan(plan)
	if err != nil {
		t.Fatalf("EncodePlan() error = %v", err)
	}

	var decoded map[string]any
	if err := yaml.Unmarshal([]byte(encoded), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded["include_guard"] != "BUFFER_HPP" {
		t.Fatalf("include_guard = %v", decoded["include_guard"])
	}
	files, ok := decoded["files"].([]any)
	if !ok || len(files) != 3 {
		t.Fatalf("files = %#v", decoded["files"])
	}
}
