package constants

// PredefinedCategories is the fixed, ordered set of categories available to
// every user. It is immutable; user-defined categories live alongside it.
var PredefinedCategories = []string{
	"Food",
	"Transport",
	"Education",
	"Entertainment",
	"Bills",
	"Others",
}

// FallbackCategory receives the transactions of a deleted custom category.
// It is predefined, so it is always available.
const FallbackCategory = "Others"

// Supported profile settings values
var (
	SupportedCurrencies = []string{"USD", "EUR", "GBP", "IDR", "JPY", "SGD", "AUD"}
	SupportedLanguages  = []string{"EN", "ID"}
)
