package profile

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNormalizeCompany(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{"  acme corp  ", "Acme Corp", nil},
		{"laura's bakery", "Laura's Bakery", nil},
		{"smith & sons co.", "Smith & Sons Co.", nil},
		{"café  du   monde", "Café Du Monde", nil},
		{"   ", "", nil},
		{"<script>alert(1)</script>", "", ErrCompanyInvalid},
		{"acme > others", "", ErrCompanyInvalid},
		{"shop@home", "", ErrCompanyInvalid},
		{strings.Repeat("a", 101), "", ErrCompanyTooLong},
	}
	for _, tt := range tests {
		got, err := NormalizeCompany(tt.in)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("NormalizeCompany(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeCompany(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewProfile(t *testing.T) {
	p, err := NewProfile(nil, Fields{
		Industry: "Bakery",
		Tone:     "friendly",
		Company:  "  laura's bakery ",
	})
	if err != nil {
		t.Fatalf("NewProfile() error = %v", err)
	}
	if p.ID() == "" {
		t.Error("profile has no id")
	}
	if p.Company() != "Laura's Bakery" {
		t.Errorf("Company() = %q", p.Company())
	}
	if len(p.Platforms()) != 1 || p.Platforms()[0] != "instagram" {
		t.Errorf("Platforms() = %v, want default instagram", p.Platforms())
	}
	if p.Details() == nil {
		t.Error("Details() is nil")
	}
}

func TestUpdateRejectsInvalidCompanyWithoutChanges(t *testing.T) {
	p, _ := NewProfile(nil, Fields{Industry: "Retail", Company: "Good Name"})

	err := p.Update(Fields{Industry: "Fitness", Company: "<b>bad</b>"}, time.Now())
	if !errors.Is(err, ErrCompanyInvalid) {
		t.Fatalf("Update() error = %v, want ErrCompanyInvalid", err)
	}
	if p.Industry() != "Retail" || p.Company() != "Good Name" {
		t.Errorf("profile changed: industry %q company %q", p.Industry(), p.Company())
	}
}

func TestOwnedBy(t *testing.T) {
	owner := uint(7)
	p, _ := NewProfile(&owner, Fields{})
	if !p.OwnedBy(7) || p.OwnedBy(8) {
		t.Error("owned profile ownership check failed")
	}
	anon, _ := NewProfile(nil, Fields{})
	if !anon.OwnedBy(8) {
		t.Error("anonymous profile should be editable")
	}
}
