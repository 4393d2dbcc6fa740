package zone

import "testing"

func TestNormalizeKnownLocation(t *testing.T) {
	z, matched := Normalize("Tembalang")
	if z != ZoneEast {
		t.Fatalf("expected Semarang Timur, got %s", z)
	}
	if !matched {
		t.Fatalf("expected a match for Tembalang")
	}
}

func TestNormalizeCaseAndWhitespace(t *testing.T) {
	z, matched := Normalize("  tembalang  ")
	if z != ZoneEast || !matched {
		t.Fatalf("expected Semarang Timur match, got %s matched=%v", z, matched)
	}
}

func TestNormalizeStripsCitySuffix(t *testing.T) {
	z, matched := Normalize("Ngaliyan, Semarang")
	if z != ZoneWest || !matched {
		t.Fatalf("expected Semarang Barat match, got %s matched=%v", z, matched)
	}
}

func TestNormalizeSubstringInLongerAddress(t *testing.T) {
	z, matched := Normalize("Jl. Raya Simpang Lima No. 1")
	if z != ZoneCentral || !matched {
		t.Fatalf("expected Semarang Tengah match, got %s matched=%v", z, matched)
	}
}

func TestNormalizeFallback(t *testing.T) {
	z, matched := Normalize("Jakarta Selatan")
	if z != ZoneOther {
		t.Fatalf("expected fallback zone, got %s", z)
	}
	if matched {
		t.Fatalf("expected matched=false for unknown location")
	}
}

func TestNormalizeEmpty(t *testing.T) {
	z, matched := Normalize("   ")
	if z != ZoneOther || matched {
		t.Fatalf("expected unmatched fallback, got %s matched=%v", z, matched)
	}
}

func TestNormalizeAlwaysReturnsEnumeratedZone(t *testing.T) {
	inputs := []string{"Tembalang", "Ungaran", "???", "", "Krapyak", "Wonodri", "Tanah Mas", "Pemuda"}
	valid := map[Zone]bool{}
	for _, z := range All {
		valid[z] = true
	}
	for _, in := range inputs {
		z, _ := Normalize(in)
		if !valid[z] {
			t.Fatalf("Normalize(%q) returned non-enumerated zone %s", in, z)
		}
	}
}

func TestNormalizeOutsideCity(t *testing.T) {
	z, matched := Normalize("Ungaran Barat")
	if z != ZoneOther {
		t.Fatalf("expected Semarang Lainnya for Ungaran Barat, got %s", z)
	}
	if !matched {
		t.Fatalf("Ungaran Barat is a known location, expected matched=true")
	}
}

func TestLocationsCoversAllZones(t *testing.T) {
	locs := Locations()
	for _, z := range All {
		if len(locs[z]) == 0 {
			t.Fatalf("zone %s has no known locations", z)
		}
	}
}
