package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadExpressionLiteral(t *testing.T) {
	got, err := readExpression("(Human *x)")
	if err != nil {
		t.Fatalf("readExpression: %v", err)
	}
	if got != "(Human *x)" {
		t.Errorf("got %q", got)
	}
}

func TestReadExpressionFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.egif")
	if err := os.WriteFile(path, []byte("~[ (p *x) ]"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := readExpression(path)
	if err != nil {
		t.Fatalf("readExpression: %v", err)
	}
	if got != "~[ (p *x) ]" {
		t.Errorf("got %q", got)
	}
}

func TestReadExpressionMissingFile(t *testing.T) {
	if _, err := readExpression(filepath.Join(t.TempDir(), "absent.egif")); err == nil {
		t.Fatal("expected error for missing .egif file")
	}
}

func TestLooksLikeFile(t *testing.T) {
	existing := filepath.Join(t.TempDir(), "anything")
	if err := os.WriteFile(existing, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	tests := []struct {
		arg  string
		want bool
	}{
		{existing, true},
		{"graph.egif", true},
		{"Graph.EGIF", true},
		{"out.json", true},
		{"(Human *x)", false},
		{"*x", false},
	}
	for _, tt := range tests {
		if got := looksLikeFile(tt.arg); got != tt.want {
			t.Errorf("looksLikeFile(%q) = %v, want %v", tt.arg, got, tt.want)
		}
	}
}
