package features

import (
	"fmt"
	"math"
	"strings"

	"github.com/smarthome_predictor/backend/internal/models"
	"github.com/smarthome_predictor/backend/internal/zone"
)

// Vector is the ordered numeric encoding consumed by the prediction models.
type Vector []float64

// Report describes the preprocessing applied while building a vector.
type Report struct {
	MissingFields []string
	FeatureCount  int
}

// FeatureMismatchError signals a builder/artifact version inconsistency:
// the artifact selects a feature this builder cannot produce, or the
// assembled vector length disagrees with the selected feature list.
type FeatureMismatchError struct {
	Feature string
	Got     int
	Want    int
}

func (e *FeatureMismatchError) Error() string {
	if e.Feature != "" {
		return fmt.Sprintf("feature mismatch: unknown selected feature %q", e.Feature)
	}
	return fmt.Sprintf("feature mismatch: built %d features, artifact selects %d", e.Got, e.Want)
}

// Defaults holds the imputation values used when an optional field is absent
// or unparsable. Fixed from the training data (mode/median).
var Defaults = struct {
	Bedrooms     float64
	Bathrooms    float64
	LandArea     float64
	BuildingArea float64
	Carport      float64
}{
	Bedrooms:     3,
	Bathrooms:    2,
	LandArea:     150,
	BuildingArea: 120,
	Carport:      1,
}

// Upper-range caps applied after imputation. Values beyond these are outside
// the training distribution and are clamped rather than rejected.
var caps = map[string]float64{
	"bedrooms":      10,
	"bathrooms":     10,
	"land_area":     2000,
	"building_area": 1000,
	"carport_count": 5,
	"floor_count":   4,
}

var powerTiers = []struct {
	Key   string
	Limit float64
}{
	{"power_dasar_450va", 450},
	{"power_standar_900va", 900},
	{"power_menengah_1300va", 1300},
	{"power_tinggi_2200va", 2200},
	{"power_premium_3500va", 3500},
	{"power_luxury_5500va", 5500},
	{"power_ultra_5500va_plus", math.Inf(1)},
}

// PowerTierKey classifies an electrical power rating (VA) into its tier key.
func PowerTierKey(power float64) string {
	for _, t := range powerTiers {
		if power <= t.Limit {
			return t.Key
		}
	}
	return powerTiers[len(powerTiers)-1].Key
}

// DefaultPower estimates an electrical power rating from building size and
// bedroom count when the caller did not supply one.
func DefaultPower(buildingArea, bedrooms float64) float64 {
	switch {
	case buildingArea >= 200 || bedrooms >= 4:
		return 2200
	case buildingArea >= 120 || bedrooms >= 3:
		return 1300
	case buildingArea >= 70:
		return 900
	default:
		return 450
	}
}

// DefaultFloors estimates the floor count from building size.
func DefaultFloors(buildingArea float64) float64 {
	if buildingArea >= 150 {
		return 2
	}
	return 1
}

func zoneKey(z zone.Zone) string {
	return "zone_" + strings.ReplaceAll(strings.ToLower(string(z)), " ", "_")
}

// Build cleans and imputes the raw input, encodes the resolved zone, and
// assembles the numeric vector in the exact order prescribed by the
// artifact's selected feature list.
func Build(in models.PropertyInput, z zone.Zone, selected []string) (Vector, Report, error) {
	report := Report{MissingFields: []string{}}

	numeric := func(raw models.FlexValue, field string, parse func(string) (float64, bool), def func() float64) float64 {
		if !raw.IsZero() {
			if v, ok := parse(string(raw)); ok && v > 0 {
				return v
			}
		}
		report.MissingFields = append(report.MissingFields, field)
		return def()
	}

	bedrooms := numeric(in.Bedrooms, "bedrooms", CleanCount, func() float64 { return Defaults.Bedrooms })
	bathrooms := numeric(in.Bathrooms, "bathrooms", CleanCount, func() float64 { return Defaults.Bathrooms })
	landArea := numeric(in.LandArea, "land_area", CleanNumeric, func() float64 { return Defaults.LandArea })
	buildingArea := numeric(in.BuildingArea, "building_area", CleanNumeric, func() float64 { return Defaults.BuildingArea })

	carport := Defaults.Carport
	if in.CarportCount.IsZero() {
		report.MissingFields = append(report.MissingFields, "carport_count")
	} else if v, ok := CleanCount(string(in.CarportCount)); ok {
		carport = v
	} else {
		report.MissingFields = append(report.MissingFields, "carport_count")
	}

	power := numeric(in.ElectricalPower, "electrical_power", CleanNumeric, func() float64 { return DefaultPower(buildingArea, bedrooms) })
	floors := numeric(in.FloorCount, "floor_count", CleanCount, func() float64 { return DefaultFloors(buildingArea) })

	condition, _ := NormalizePropertyCondition(in.PropertyCondition)
	if strings.TrimSpace(in.PropertyCondition) == "" {
		report.MissingFields = append(report.MissingFields, "property_condition")
	}
	furnishing, _ := NormalizeFurnishing(in.FurnishingCondition)
	if strings.TrimSpace(in.FurnishingCondition) == "" {
		report.MissingFields = append(report.MissingFields, "furnishing_condition")
	}

	bedrooms = math.Min(bedrooms, caps["bedrooms"])
	bathrooms = math.Min(bathrooms, caps["bathrooms"])
	landArea = math.Min(landArea, caps["land_area"])
	buildingArea = math.Min(buildingArea, caps["building_area"])
	carport = math.Min(carport, caps["carport_count"])
	floors = math.Min(floors, caps["floor_count"])

	values := map[string]float64{
		"bedrooms":         bedrooms,
		"bathrooms":        bathrooms,
		"land_area":        landArea,
		"building_area":    buildingArea,
		"carport_count":    carport,
		"electrical_power": power,
		"floor_count":      floors,
	}

	for _, known := range zone.All {
		values[zoneKey(known)] = 0
	}
	values[zoneKey(z)] = 1

	tier := PowerTierKey(power)
	for _, t := range powerTiers {
		values[t.Key] = 0
	}
	values[tier] = 1

	values["condition_bagus"] = 0
	values["condition_renovasi"] = 0
	if condition == ConditionRenovation {
		values["condition_renovasi"] = 1
	} else {
		values["condition_bagus"] = 1
	}

	values["furnishing_tidak_berperabot"] = 0
	values["furnishing_semi_furnished"] = 0
	values["furnishing_furnished"] = 0
	switch furnishing {
	case FurnishingSemi:
		values["furnishing_semi_furnished"] = 1
	case FurnishingFull:
		values["furnishing_furnished"] = 1
	default:
		values["furnishing_tidak_berperabot"] = 1
	}

	values["building_land_ratio"] = buildingArea / landArea
	values["total_area"] = buildingArea + landArea
	values["area_per_bedroom"] = buildingArea / bedrooms
	values["bathroom_ratio"] = bathrooms / bedrooms
	values["power_per_area"] = power / buildingArea
	values["total_rooms"] = bedrooms + bathrooms
	values["land_area_log"] = math.Log1p(landArea)
	values["building_area_log"] = math.Log1p(buildingArea)
	values["luxury_score"] = (power / 1000) * buildingArea * floors
	values["efficiency_score"] = buildingArea / landArea
	values["bedrooms_x_power"] = bedrooms * power

	vec := make(Vector, 0, len(selected))
	for _, name := range selected {
		v, ok := values[name]
		if !ok {
			return nil, report, &FeatureMismatchError{Feature: name, Want: len(selected)}
		}
		vec = append(vec, v)
	}
	if len(vec) != len(selected) {
		return nil, report, &FeatureMismatchError{Got: len(vec), Want: len(selected)}
	}

	report.FeatureCount = len(vec)
	return vec, report, nil
}
