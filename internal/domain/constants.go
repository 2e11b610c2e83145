package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Slot grid defaults
const (
	DefaultSlotStartHour   = 9
	DefaultSlotEndHour     = 20
	DefaultSlotStepMinutes = 15
)

// Analytics defaults
const (
	DefaultFavoriteLimit       = 5
	DefaultRecommendationLimit = 3
)

// Business validation constants
const (
	MaxNotesLength       = 500
	MaxNameLength        = 100
	MaxServiceDuration   = 480 // 8 hours
	MaxServicesPerVisit  = 10
	MaxDescriptionLength = 300
)

// Cash categories
const (
	DefaultIncomeCategory  = "Послуги"
	DefaultExpenseCategory = "Інше"
)

// ExpenseCategories категории расходов, предлагаемые кассой
var ExpenseCategories = []string{
	"Зарплата",
	"Оренда",
	"Матеріали",
	"Реклама",
	DefaultExpenseCategory,
}
