package domain

import (
	"errors"
	"testing"
)

func TestProductValidate(t *testing.T) {
	p := Product{ID: 200, Name: "Widget", Price: "9.99", Category: "tools"}
	if errs := p.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestProductValidateNameRequired(t *testing.T) {
	p := Product{ID: 200}
	errs := p.Validate()
	if len(errs) != 1 || !errors.Is(errs[0], ErrProductNameRequired) {
		t.Fatalf("expected ErrProductNameRequired, got %v", errs)
	}
}

func TestProductValidateIDRange(t *testing.T) {
	p := Product{ID: 99, Name: "Widget"}
	errs := p.Validate()
	if len(errs) != 1 || !errors.Is(errs[0], ErrIDOutOfRange) {
		t.Fatalf("expected ErrIDOutOfRange, got %v", errs)
	}
}
