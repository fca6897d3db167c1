package parameter

// Food
const (
	// FoodEatingThreshold is the squared world distance under which food is eaten
	FoodEatingThreshold = 1024.0

	// FoodDimNumerator scales food visibility, alpha = FoodDimNumerator / distance²
	FoodDimNumerator = 10000.0

	// FoodVariants is the number of food glyph variants
	FoodVariants = 49
)
