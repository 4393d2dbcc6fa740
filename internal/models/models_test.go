package models

import (
	"encoding/json"
	"testing"
)

func TestFlexValueAcceptsNumbersAndStrings(t *testing.T) {
	var in PropertyInput
	payload := `{"location":"Tembalang","bedrooms":3,"building_area":"120 m²","land_area":150.5}`
	if err := json.Unmarshal([]byte(payload), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if in.Bedrooms != "3" {
		t.Fatalf("bedrooms = %q, want 3", in.Bedrooms)
	}
	if in.BuildingArea != "120 m²" {
		t.Fatalf("building_area = %q", in.BuildingArea)
	}
	if in.LandArea != "150.5" {
		t.Fatalf("land_area = %q", in.LandArea)
	}
	if !in.Bathrooms.IsZero() {
		t.Fatalf("absent bathrooms should be zero, got %q", in.Bathrooms)
	}
}

func TestFlexValueNull(t *testing.T) {
	var in PropertyInput
	if err := json.Unmarshal([]byte(`{"location":"x","bedrooms":null}`), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !in.Bedrooms.IsZero() {
		t.Fatalf("null bedrooms should be zero, got %q", in.Bedrooms)
	}
}

func TestFlexValueRejectsObjects(t *testing.T) {
	var in PropertyInput
	err := json.Unmarshal([]byte(`{"location":"x","bedrooms":{"n":3}}`), &in)
	if err == nil {
		t.Fatalf("expected error for object value")
	}
}
