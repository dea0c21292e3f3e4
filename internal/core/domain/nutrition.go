package domain

// FoodItem is an entry in the nutrition reference database.
type FoodItem struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	FoodTypeID int64   `json:"foodTypeId,omitempty"`
	FoodType   string  `json:"foodType,omitempty"`
	Calories   float64 `json:"calories"`
	ProteinG   float64 `json:"proteinG,omitempty"`
	CarbsG     float64 `json:"carbsG,omitempty"`
	FatG       float64 `json:"fatG,omitempty"`
	ServingG   float64 `json:"servingG,omitempty"`
	Status     string  `json:"status"`
}

// FoodType groups food items. Small closed list, served unpaginated.
type FoodType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Nutrient is a tracked nutrient with its measurement unit.
type Nutrient struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}
