package db_models

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealCombined  MealType = "combined"
)

// One row per (day, meal type) slot of the weekly menu.
type MenuItem struct {
	BaseModel
	DayOfWeek         int      `gorm:"uniqueIndex:idx_menu_day_meal;check:day_of_week BETWEEN 1 AND 7"`
	MealType          MealType `gorm:"size:20;uniqueIndex:idx_menu_day_meal"` // breakfast | lunch
	Dishes            string   `gorm:"type:text"`                            // e.g. "Omelette, porridge, tea"
	Price             string   `gorm:"type:decimal(10,2)"`
	AvailableQuantity uint     // remaining portions, physical counter
}

// ParseMealType validates a wire-format meal type string.
func ParseMealType(s string) (MealType, bool) {
	switch MealType(s) {
	case MealBreakfast, MealLunch, MealCombined:
		return MealType(s), true
	default:
		return "", false
	}
}
