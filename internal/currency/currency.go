// Package currency holds the presentation tables for money and dates used by
// the settings surface and the export collaborators.
package currency

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency describes a supported display currency. Rate is the exchange rate
// relative to USD, the currency all amounts are stored in.
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Rate   string `json:"rate"`
}

// Currencies lists the supported display currencies.
var Currencies = []Currency{
	{Code: "USD", Name: "US Dollar", Symbol: "$", Rate: "1"},
	{Code: "EUR", Name: "Euro", Symbol: "€", Rate: "0.85"},
	{Code: "GBP", Name: "British Pound", Symbol: "£", Rate: "0.73"},
	{Code: "KES", Name: "Kenyan Shilling", Symbol: "KSh", Rate: "150"},
	{Code: "NGN", Name: "Nigerian Naira", Symbol: "₦", Rate: "460"},
	{Code: "ZAR", Name: "South African Rand", Symbol: "R", Rate: "18.5"},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$", Rate: "1.25"},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$", Rate: "1.35"},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥", Rate: "110"},
	{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥", Rate: "6.4"},
}

// DateFormat names a supported date layout.
type DateFormat struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// DateFormats lists the selectable date layouts.
var DateFormats = []DateFormat{
	{Code: "MM/DD/YYYY", Name: "MM/DD/YYYY (US Format)"},
	{Code: "DD/MM/YYYY", Name: "DD/MM/YYYY (European Format)"},
	{Code: "YYYY-MM-DD", Name: "YYYY-MM-DD (ISO Format)"},
	{Code: "DD-MM-YYYY", Name: "DD-MM-YYYY"},
	{Code: "MM-DD-YYYY", Name: "MM-DD-YYYY"},
}

// Timezone names a selectable timezone.
type Timezone struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Timezones lists the selectable timezones.
var Timezones = []Timezone{
	{Code: "America/New_York", Name: "Eastern Time (ET)"},
	{Code: "America/Chicago", Name: "Central Time (CT)"},
	{Code: "America/Denver", Name: "Mountain Time (MT)"},
	{Code: "America/Los_Angeles", Name: "Pacific Time (PT)"},
	{Code: "Europe/London", Name: "Greenwich Mean Time (GMT)"},
	{Code: "Europe/Paris", Name: "Central European Time (CET)"},
	{Code: "Africa/Nairobi", Name: "East Africa Time (EAT)"},
	{Code: "Africa/Lagos", Name: "West Africa Time (WAT)"},
	{Code: "Asia/Tokyo", Name: "Japan Standard Time (JST)"},
	{Code: "Asia/Shanghai", Name: "China Standard Time (CST)"},
}

var printer = message.NewPrinter(language.AmericanEnglish)

// Lookup returns the currency for code, falling back to USD when unknown.
func Lookup(code string) Currency {
	for _, c := range Currencies {
		if c.Code == code {
			return c
		}
	}
	return Currencies[0]
}

// Supported reports whether code names a known currency. Unlike Lookup it
// does not fall back, so callers can reject unknown codes.
func Supported(code string) bool {
	for _, c := range Currencies {
		if c.Code == code {
			return true
		}
	}
	return false
}

// Format converts a USD amount into the given currency and renders it with
// the currency symbol and grouped thousands, always two decimal places.
func Format(amount float64, code string) string {
	c := Lookup(code)
	rate, err := decimal.NewFromString(c.Rate)
	if err != nil {
		rate = decimal.New(1, 0)
	}
	converted := decimal.NewFromFloat(amount).Mul(rate).Round(2)
	f, _ := converted.Float64()
	return c.Symbol + printer.Sprintf("%.2f", f)
}

// FormatDate renders the date using the layout named in settings.
func FormatDate(t time.Time, format string) string {
	switch format {
	case "MM/DD/YYYY":
		return t.Format("01/02/2006")
	case "DD/MM/YYYY":
		return t.Format("02/01/2006")
	case "YYYY-MM-DD":
		return t.Format("2006-01-02")
	case "DD-MM-YYYY":
		return t.Format("02-01-2006")
	case "MM-DD-YYYY":
		return t.Format("01-02-2006")
	default:
		return t.Format("01/02/2006")
	}
}
