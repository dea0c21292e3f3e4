package domain

// DietaryRestriction is a dietary constraint users can attach to their
// health profile.
type DietaryRestriction struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
}

// ExerciseType is an activity kind used by the workout tracker.
type ExerciseType struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	CaloriesPerHour float64 `json:"caloriesPerHour,omitempty"`
	Status          string  `json:"status"`
}

// MedicalSpecialty is a medical discipline hospitals advertise.
type MedicalSpecialty struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
}
