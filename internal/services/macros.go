package services

// Caloric density of the macronutrients, kcal per gram.
const (
	kcalPerFatGram     = 9
	kcalPerCarbGram    = 4
	kcalPerProteinGram = 4
)

// CaloriesFromMacros converts macro grams to kilocalories. Every calorie
// figure in this codebase is derived through here; stored per-record calorie
// values are never trusted when recomputing.
func CaloriesFromMacros(carbGrams int, fatGrams int, proteinGrams int) int {
	return fatGrams*kcalPerFatGram + carbGrams*kcalPerCarbGram + proteinGrams*kcalPerProteinGram
}
