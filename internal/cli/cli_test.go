package cli

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"Empty", "", []string{"svg"}},
		{"Single", "png", []string{"png"}},
		{"Multiple", "svg,json,report", []string{"svg", "json", "report"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFormats(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestArtifactExt(t *testing.T) {
	if got := artifactExt("report"); got != "txt" {
		t.Errorf("artifactExt(report) = %q, want txt", got)
	}
	if got := artifactExt("svg"); got != "svg" {
		t.Errorf("artifactExt(svg) = %q", got)
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	artifacts := map[string][]byte{
		"svg":    []byte("<svg/>"),
		"report": []byte("text"),
	}

	paths, err := writeArtifacts(artifacts, []string{"svg", "report"}, filepath.Join(dir, "plan"), "Dark Store A")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "plan.svg"); paths["svg"] != want {
		t.Errorf("svg path = %q, want %q", paths["svg"], want)
	}
	if want := filepath.Join(dir, "plan.txt"); paths["report"] != want {
		t.Errorf("report path = %q, want %q", paths["report"], want)
	}
	data, err := os.ReadFile(paths["svg"])
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("svg content = %q", data)
	}
}

func TestWriteArtifactsSingleExplicitOutput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "custom.name")

	paths, err := writeArtifacts(map[string][]byte{"svg": []byte("x")}, []string{"svg"}, out, "n")
	if err != nil {
		t.Fatal(err)
	}
	if paths["svg"] != out {
		t.Errorf("path = %q, want exact output %q", paths["svg"], out)
	}
}

func TestWriteArtifactsNameFallback(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	paths, err := writeArtifacts(map[string][]byte{"svg": []byte("x")}, []string{"svg"}, "", "Dark Store A")
	if err != nil {
		t.Fatal(err)
	}
	if paths["svg"] != "Dark_Store_A.svg" {
		t.Errorf("path = %q, want Dark_Store_A.svg", paths["svg"])
	}
}

func TestLoggerFromContextFallback(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Error("expected default logger for bare context")
	}
}
