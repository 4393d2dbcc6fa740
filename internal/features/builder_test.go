package features

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/smarthome_predictor/backend/internal/models"
	"github.com/smarthome_predictor/backend/internal/zone"
)

var testSelected = []string{
	"bedrooms", "bathrooms", "land_area", "building_area", "carport_count",
	"electrical_power", "floor_count", "zone_semarang_timur",
	"zone_semarang_lainnya", "power_menengah_1300va", "condition_bagus",
	"furnishing_tidak_berperabot", "building_land_ratio", "total_area",
	"land_area_log", "luxury_score",
}

func TestBuildVectorLengthMatchesSelected(t *testing.T) {
	in := models.PropertyInput{Location: "Tembalang", Bedrooms: "3", BuildingArea: "120"}
	vec, report, err := Build(in, zone.ZoneEast, testSelected)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(vec) != len(testSelected) {
		t.Fatalf("vector length %d, want %d", len(vec), len(testSelected))
	}
	if report.FeatureCount != len(testSelected) {
		t.Fatalf("feature count %d, want %d", report.FeatureCount, len(testSelected))
	}
}

func TestBuildMissingFieldsExact(t *testing.T) {
	in := models.PropertyInput{Location: "Tembalang", Bedrooms: "3", BuildingArea: "120"}
	_, report, err := Build(in, zone.ZoneEast, testSelected)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := []string{
		"bathrooms", "land_area", "carport_count", "electrical_power",
		"floor_count", "property_condition", "furnishing_condition",
	}
	if !reflect.DeepEqual(report.MissingFields, want) {
		t.Fatalf("missing fields %v, want %v", report.MissingFields, want)
	}
}

func TestBuildNoMissingFieldsWhenAllSupplied(t *testing.T) {
	in := models.PropertyInput{
		Location:            "Tembalang",
		Bedrooms:            "3",
		Bathrooms:           "2",
		LandArea:            "150 m²",
		BuildingArea:        "120 m²",
		CarportCount:        "1",
		ElectricalPower:     "1300 VA",
		FloorCount:          "1",
		PropertyCondition:   "Bagus",
		FurnishingCondition: "Furnished",
	}
	_, report, err := Build(in, zone.ZoneEast, testSelected)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(report.MissingFields) != 0 {
		t.Fatalf("expected no missing fields, got %v", report.MissingFields)
	}
}

func TestBuildUnparsableNumericImputed(t *testing.T) {
	in := models.PropertyInput{Location: "Tembalang", LandArea: "luas sekali"}
	vec, report, err := Build(in, zone.ZoneEast, testSelected)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	found := false
	for _, f := range report.MissingFields {
		if f == "land_area" {
			found = true
		}
	}
	if !found {
		t.Fatalf("unparsable land_area should be reported missing, got %v", report.MissingFields)
	}
	// land_area sits at index 2 of the test feature list
	if vec[2] != Defaults.LandArea {
		t.Fatalf("land_area imputed as %v, want %v", vec[2], Defaults.LandArea)
	}
}

func TestBuildZoneOneHot(t *testing.T) {
	in := models.PropertyInput{Location: "Tembalang"}
	vec, _, err := Build(in, zone.ZoneEast, testSelected)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if vec[7] != 1 { // zone_semarang_timur
		t.Fatalf("expected east zone flag set, got %v", vec[7])
	}
	if vec[8] != 0 { // zone_semarang_lainnya
		t.Fatalf("expected other zone flag unset, got %v", vec[8])
	}
}

func TestBuildUnknownSelectedFeature(t *testing.T) {
	in := models.PropertyInput{Location: "Tembalang"}
	_, _, err := Build(in, zone.ZoneEast, []string{"bedrooms", "no_such_feature"})
	var mismatch *FeatureMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected FeatureMismatchError, got %v", err)
	}
	if mismatch.Feature != "no_such_feature" {
		t.Fatalf("expected offending feature name, got %q", mismatch.Feature)
	}
}

func TestBuildCapsOutOfRangeValues(t *testing.T) {
	in := models.PropertyInput{
		Location:     "Tembalang",
		Bedrooms:     "25",
		LandArea:     "99999",
		BuildingArea: "5000",
	}
	vec, _, err := Build(in, zone.ZoneEast, testSelected)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if vec[0] != 10 {
		t.Fatalf("bedrooms capped to %v, want 10", vec[0])
	}
	if vec[2] != 2000 {
		t.Fatalf("land_area capped to %v, want 2000", vec[2])
	}
	if vec[3] != 1000 {
		t.Fatalf("building_area capped to %v, want 1000", vec[3])
	}
}

func TestBuildDerivedFeatures(t *testing.T) {
	in := models.PropertyInput{
		Location:     "Tembalang",
		Bedrooms:     "4",
		Bathrooms:    "2",
		LandArea:     "200",
		BuildingArea: "100",
	}
	vec, _, err := Build(in, zone.ZoneEast, testSelected)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if vec[12] != 0.5 { // building_land_ratio
		t.Fatalf("building_land_ratio %v, want 0.5", vec[12])
	}
	if vec[13] != 300 { // total_area
		t.Fatalf("total_area %v, want 300", vec[13])
	}
	if math.Abs(vec[14]-math.Log1p(200)) > 1e-12 {
		t.Fatalf("land_area_log %v, want %v", vec[14], math.Log1p(200))
	}
}

func TestDefaultPowerTiers(t *testing.T) {
	cases := []struct {
		area, bedrooms, want float64
	}{
		{250, 3, 2200},
		{120, 2, 1300},
		{60, 4, 2200},
		{80, 2, 900},
		{50, 1, 450},
	}
	for _, c := range cases {
		if got := DefaultPower(c.area, c.bedrooms); got != c.want {
			t.Fatalf("DefaultPower(%v, %v) = %v, want %v", c.area, c.bedrooms, got, c.want)
		}
	}
}

func TestPowerTierKey(t *testing.T) {
	if PowerTierKey(450) != "power_dasar_450va" {
		t.Fatalf("450 VA should be the basic tier")
	}
	if PowerTierKey(1300) != "power_menengah_1300va" {
		t.Fatalf("1300 VA should be the mid tier")
	}
	if PowerTierKey(7700) != "power_ultra_5500va_plus" {
		t.Fatalf("7700 VA should be the top tier")
	}
}
