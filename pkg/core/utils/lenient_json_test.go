package utils

import (
	"testing"
)

type probe struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func TestSmartDecodeStrict(t *testing.T) {
	var p probe
	if err := SmartDecode(`{"name":"12 Oak Ave","price":450000}`, &p); err != nil {
		t.Fatalf("strict decode failed: %v", err)
	}
	if p.Name != "12 Oak Ave" || p.Price != 450000 {
		t.Errorf("Unexpected decode result: %+v", p)
	}
}

func TestSmartDecodeSloppyVendorJSON(t *testing.T) {
	// Trailing comma and single quotes: invalid JSON, repairable.
	var p probe
	if err := SmartDecode(`{'name': '12 Oak Ave', 'price': 450000,}`, &p); err != nil {
		t.Fatalf("repair path failed: %v", err)
	}
	if p.Price != 450000 {
		t.Errorf("Expected price 450000, got %f", p.Price)
	}
}

func TestSmartDecodeHJSON(t *testing.T) {
	// Comments and unquoted keys fall through to the Hjson strategy.
	input := "{\n  # vendor comment\n  name: \"12 Oak Ave\"\n  price: 450000\n}"
	var p probe
	if err := SmartDecode(input, &p); err != nil {
		t.Fatalf("hjson path failed: %v", err)
	}
	if p.Name != "12 Oak Ave" {
		t.Errorf("Expected name decoded, got %+v", p)
	}
}
