package vehicle

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewValidation(t *testing.T) {
	if _, err := New("  ", "Toyota", "Camry", decimal.NewFromInt(60), CategorySedan); err == nil {
		t.Fatalf("expected blank id rejected")
	}
	if _, err := New("C001", "Toyota", "Camry", decimal.Zero, CategorySedan); err == nil {
		t.Fatalf("expected zero price rejected")
	}
	if _, err := New("C001", "Toyota", "Camry", decimal.NewFromInt(-5), CategorySedan); err == nil {
		t.Fatalf("expected negative price rejected")
	}

	v, err := New(" C001 ", "Toyota", "Camry", decimal.NewFromInt(60), CategorySedan)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if v.ID != "C001" {
		t.Fatalf("expected trimmed id, got %q", v.ID)
	}
	if !v.Available {
		t.Fatalf("expected new vehicle available")
	}
}

func TestRentAndReturn(t *testing.T) {
	v, err := New("C001", "Toyota", "Camry", decimal.NewFromInt(60), CategorySedan)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := v.Rent(); err != nil {
		t.Fatalf("Rent: %v", err)
	}
	if v.Available {
		t.Fatalf("expected vehicle unavailable after rent")
	}

	err = v.Rent()
	var notAvail *NotAvailableError
	if !errors.As(err, &notAvail) {
		t.Fatalf("expected NotAvailableError, got %v", err)
	}

	v.Return()
	if !v.Available {
		t.Fatalf("expected vehicle available after return")
	}
	// Return 幂等。
	v.Return()
	if !v.Available {
		t.Fatalf("expected return to be idempotent")
	}
}

func TestCalculatePrice(t *testing.T) {
	v, err := New("C001", "Toyota", "Camry", decimal.NewFromInt(60), CategorySedan)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := v.CalculatePrice(0); err == nil {
		t.Fatalf("expected non-positive days rejected")
	}

	got, err := v.CalculatePrice(10)
	if err != nil {
		t.Fatalf("CalculatePrice: %v", err)
	}
	if got.StringFixed(2) != "540.00" {
		t.Fatalf("CalculatePrice(10) = %s, want 540.00", got.StringFixed(2))
	}
}

func TestParseCategory(t *testing.T) {
	for in, want := range map[string]Category{
		"suv":      CategorySUV,
		" Luxury ": CategoryLuxury,
		"ECONOMY":  CategoryEconomy,
		"sedan":    CategorySedan,
	} {
		got, err := ParseCategory(in)
		if err != nil {
			t.Fatalf("ParseCategory(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseCategory(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseCategory("hatchback"); err == nil {
		t.Fatalf("expected unknown category rejected")
	}
}

func TestStringShowsAvailability(t *testing.T) {
	v, err := New("C001", "Toyota", "Camry", decimal.NewFromInt(60), CategorySedan)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !strings.Contains(v.String(), "Available") {
		t.Fatalf("expected Available in %q", v.String())
	}
	if err := v.Rent(); err != nil {
		t.Fatalf("Rent: %v", err)
	}
	if !strings.Contains(v.String(), "Rented") {
		t.Fatalf("expected Rented in %q", v.String())
	}
}
