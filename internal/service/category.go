package service

// Price tiers in ascending order. Bands are half-open: inclusive at the lower
// edge, exclusive at the upper, with Luxury unbounded.
const (
	CategoryEconomy     = "Economy"
	CategoryLowerMiddle = "Lower-Middle"
	CategoryMiddle      = "Middle"
	CategoryUpperMiddle = "Upper-Middle"
	CategoryPremium     = "Premium"
	CategoryLuxury      = "Luxury"
)

var categoryBands = []struct {
	UpperBound float64 // exclusive, rupiah
	Label      string
}{
	{500e6, CategoryEconomy},
	{1000e6, CategoryLowerMiddle},
	{2000e6, CategoryMiddle},
	{3500e6, CategoryUpperMiddle},
	{6000e6, CategoryPremium},
}

// Categorize maps a price estimate to its tier.
func Categorize(price float64) string {
	for _, band := range categoryBands {
		if price < band.UpperBound {
			return band.Label
		}
	}
	return CategoryLuxury
}
