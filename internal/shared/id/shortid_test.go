package id

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		s, err := Generate(0)
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if len(s) != DefaultLength {
			t.Fatalf("len = %d, want %d", len(s), DefaultLength)
		}
		for _, r := range s {
			if !strings.ContainsRune(alphabet, r) {
				t.Fatalf("%q contains %q outside the alphabet", s, r)
			}
		}
		if seen[s] {
			t.Fatalf("duplicate id %q", s)
		}
		seen[s] = true
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	s, err := GenerateWithPrefix(PrefixReconcileJob, 8)
	if err != nil {
		t.Fatalf("GenerateWithPrefix() error = %v", err)
	}
	if !strings.HasPrefix(s, "rcj_") || len(s) != len("rcj_")+8 {
		t.Errorf("GenerateWithPrefix() = %q", s)
	}
}
