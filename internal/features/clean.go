package features

import (
	"strconv"
	"strings"
)

// CleanNumeric parses a loosely-typed numeric value: unit suffixes and other
// non-numeric characters are stripped ("150 m²" -> 150, "1300 VA" -> 1300),
// decimal commas become dots. Returns ok=false when nothing parseable remains.
func CleanNumeric(raw string) (float64, bool) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			b.WriteRune(r)
		}
	}
	cleaned := strings.ReplaceAll(b.String(), ",", ".")
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// CleanCount extracts the first run of digits as an integer count
// ("3 kamar" -> 3). Returns ok=false when the value holds no digits.
func CleanCount(raw string) (float64, bool) {
	start := -1
	for i, r := range raw {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, err := strconv.Atoi(raw[start:i])
			if err != nil {
				return 0, false
			}
			return float64(n), true
		}
	}
	if start < 0 {
		return 0, false
	}
	n, err := strconv.Atoi(raw[start:])
	if err != nil {
		return 0, false
	}
	return float64(n), true
}

const (
	ConditionGood       = "Bagus"
	ConditionRenovation = "Renovasi"

	FurnishingNone = "Tidak Berperabot"
	FurnishingSemi = "Semi Furnished"
	FurnishingFull = "Furnished"
)

type synonym struct {
	key   string
	value string
}

// Ordered: earlier entries win when free text matches more than one key.
var propertyConditionSynonyms = []synonym{
	{"bagus", ConditionGood},
	{"baik", ConditionGood},
	{"good", ConditionGood},
	{"sangat bagus", ConditionGood},
	{"siap huni", ConditionGood},
	{"terawat", ConditionGood},
	{"perlu renovasi", ConditionRenovation},
	{"butuh renovasi", ConditionRenovation},
	{"renovasi", ConditionRenovation},
	{"rusak", ConditionRenovation},
}

var furnishingSynonyms = []synonym{
	{"tidak berperabot", FurnishingNone},
	{"unfurnished", FurnishingNone},
	{"kosong", FurnishingNone},
	{"semi furnished", FurnishingSemi},
	{"semi berperabot", FurnishingSemi},
	{"sebagian berperabot", FurnishingSemi},
	{"full furnished", FurnishingFull},
	{"furnished", FurnishingFull},
	{"berperabot", FurnishingFull},
	{"lengkap", FurnishingFull},
}

// NormalizePropertyCondition maps free text onto {Bagus, Renovasi}.
// Unrecognized or empty text returns ok=false alongside the default.
func NormalizePropertyCondition(raw string) (string, bool) {
	return normalizeCondition(raw, propertyConditionSynonyms, ConditionGood)
}

// NormalizeFurnishing maps free text onto the three furnishing categories.
func NormalizeFurnishing(raw string) (string, bool) {
	return normalizeCondition(raw, furnishingSynonyms, FurnishingNone)
}

func normalizeCondition(raw string, synonyms []synonym, fallback string) (string, bool) {
	folded := strings.ToLower(strings.TrimSpace(raw))
	if folded == "" {
		return fallback, false
	}
	for _, s := range synonyms {
		if folded == s.key {
			return s.value, true
		}
	}
	for _, s := range synonyms {
		if strings.Contains(folded, s.key) || strings.Contains(s.key, folded) {
			return s.value, true
		}
	}
	return fallback, false
}
