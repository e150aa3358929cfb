package parser

import (
	"strings"

	"study-companion/internal/timetable"
)

// GuessCategory infers a block category from the task description using
// case-insensitive keyword containment. Checks run in the listed priority
// order and the first match wins — a task mentioning both "study" and "gym"
// is study. The ordering is an observable contract, not an implementation
// detail.
func GuessCategory(task string) string {
	lower := strings.ToLower(task)
	switch {
	case containsAny(lower, "study", "read"):
		return timetable.CategoryStudy
	case containsAny(lower, "class", "lecture", "lab"):
		return timetable.CategoryClass
	case containsAny(lower, "break", "rest"):
		return timetable.CategoryBreak
	case containsAny(lower, "lunch", "dinner", "breakfast"):
		return timetable.CategoryMeal
	case containsAny(lower, "exercise", "gym", "workout"):
		return timetable.CategoryExercise
	default:
		return timetable.CategoryTask
	}
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

var categoryIcons = map[string]string{
	timetable.CategoryStudy:    "📚",
	timetable.CategoryClass:    "🎓",
	timetable.CategoryBreak:    "☕",
	timetable.CategoryMeal:     "🍽️",
	timetable.CategoryExercise: "🏃",
	timetable.CategoryPersonal: "👤",
	timetable.CategoryTask:     "📌",
}

var categoryColors = map[string]string{
	timetable.CategoryStudy:    "#6200EE",
	timetable.CategoryClass:    "#1976D2",
	timetable.CategoryBreak:    "#00897B",
	timetable.CategoryMeal:     "#F57C00",
	timetable.CategoryExercise: "#C62828",
	timetable.CategoryPersonal: "#7B1FA2",
	timetable.CategoryTask:     "#455A64",
}

// CategoryIcon returns the display emoji for a category. Unknown categories
// fall back to the generic task pin.
func CategoryIcon(category string) string {
	if icon, ok := categoryIcons[strings.ToLower(category)]; ok {
		return icon
	}
	return categoryIcons[timetable.CategoryTask]
}

// CategoryColor returns the accent hex color for a category.
func CategoryColor(category string) string {
	if color, ok := categoryColors[strings.ToLower(category)]; ok {
		return color
	}
	return categoryColors[timetable.CategoryStudy]
}
