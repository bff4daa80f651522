package core

const (
	SettingsRowID   = 1
	DefaultCurrency = "USD"
	DefaultLanguage = "en"
)

type Currency struct {
	Code   string
	Name   string
	Symbol string
}

type Language struct {
	Code       string
	Name       string
	NativeName string
}

// The supported lists are fixed; settings updates are validated against them.
var SupportedCurrencies = []Currency{
	{Code: "USD", Name: "US Dollar", Symbol: "$"},
	{Code: "EUR", Name: "Euro", Symbol: "€"},
	{Code: "GBP", Name: "British Pound", Symbol: "£"},
	{Code: "BRL", Name: "Brazilian Real", Symbol: "R$"},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"},
	{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥"},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "$"},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "$"},
	{Code: "CHF", Name: "Swiss Franc", Symbol: "CHF"},
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹"},
}

var SupportedLanguages = []Language{
	{Code: "en", Name: "English", NativeName: "English"},
	{Code: "pt-BR", Name: "Portuguese (Brazil)", NativeName: "Português (Brasil)"},
}

func ValidCurrencyCode(code string) bool {
	for _, c := range SupportedCurrencies {
		if c.Code == code {
			return true
		}
	}
	return false
}

func ValidLanguageCode(code string) bool {
	for _, l := range SupportedLanguages {
		if l.Code == code {
			return true
		}
	}
	return false
}
