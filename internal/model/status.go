package model

// Sale status shared by dishes, set meals, categories and employees.
const (
	StatusDisable = 0
	StatusEnable  = 1
)

// ValidStatus reports whether s is one of the two sale states.
func ValidStatus(s int) bool { return s == StatusEnable || s == StatusDisable }
