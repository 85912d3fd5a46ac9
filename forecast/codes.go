// Package forecast turns a raw provider bundle into the externally exposed
// forecast arrays: it resolves "now" against the hourly series, reconstructs
// UTC instants from local wall-clock strings, and maps WMO weather codes to
// display icons and bilingual descriptions.
package forecast

// CodeMapping is the display projection of a WMO weather code.
type CodeMapping struct {
	IconFamily    string
	DescriptionEn string
	DescriptionHe string
}

// wmoFamilies groups WMO weather codes into display families. Icon families
// follow the usual two-digit convention; the day/night suffix is applied in
// MapCode.
var wmoFamilies = map[int]CodeMapping{
	0: {IconFamily: "01", DescriptionEn: "Clear sky", DescriptionHe: "שמיים בהירים"},

	1: {IconFamily: "02", DescriptionEn: "Mainly clear", DescriptionHe: "בהיר בעיקר"},
	2: {IconFamily: "02", DescriptionEn: "Partly cloudy", DescriptionHe: "מעונן חלקית"},
	3: {IconFamily: "04", DescriptionEn: "Overcast", DescriptionHe: "מעונן"},

	45: {IconFamily: "50", DescriptionEn: "Fog", DescriptionHe: "ערפל"},
	48: {IconFamily: "50", DescriptionEn: "Depositing rime fog", DescriptionHe: "ערפל כפור"},

	51: {IconFamily: "09", DescriptionEn: "Drizzle", DescriptionHe: "טפטוף"},
	53: {IconFamily: "09", DescriptionEn: "Drizzle", DescriptionHe: "טפטוף"},
	55: {IconFamily: "09", DescriptionEn: "Drizzle", DescriptionHe: "טפטוף"},

	56: {IconFamily: "09", DescriptionEn: "Freezing drizzle", DescriptionHe: "טפטוף מקפיא"},
	57: {IconFamily: "09", DescriptionEn: "Freezing drizzle", DescriptionHe: "טפטוף מקפיא"},

	61: {IconFamily: "10", DescriptionEn: "Rain", DescriptionHe: "גשם"},
	63: {IconFamily: "10", DescriptionEn: "Rain", DescriptionHe: "גשם"},
	65: {IconFamily: "10", DescriptionEn: "Heavy rain", DescriptionHe: "גשם כבד"},

	66: {IconFamily: "10", DescriptionEn: "Freezing rain", DescriptionHe: "גשם מקפיא"},
	67: {IconFamily: "10", DescriptionEn: "Freezing rain", DescriptionHe: "גשם מקפיא"},

	71: {IconFamily: "13", DescriptionEn: "Snow", DescriptionHe: "שלג"},
	73: {IconFamily: "13", DescriptionEn: "Snow", DescriptionHe: "שלג"},
	75: {IconFamily: "13", DescriptionEn: "Heavy snow", DescriptionHe: "שלג כבד"},

	77: {IconFamily: "13", DescriptionEn: "Snow grains", DescriptionHe: "גרגרי שלג"},

	80: {IconFamily: "09", DescriptionEn: "Rain showers", DescriptionHe: "ממטרים"},
	81: {IconFamily: "09", DescriptionEn: "Rain showers", DescriptionHe: "ממטרים"},
	82: {IconFamily: "09", DescriptionEn: "Violent rain showers", DescriptionHe: "ממטרים עזים"},

	85: {IconFamily: "13", DescriptionEn: "Snow showers", DescriptionHe: "ממטרי שלג"},
	86: {IconFamily: "13", DescriptionEn: "Snow showers", DescriptionHe: "ממטרי שלג"},

	95: {IconFamily: "11", DescriptionEn: "Thunderstorm", DescriptionHe: "סופת רעמים"},

	96: {IconFamily: "11", DescriptionEn: "Thunderstorm with hail", DescriptionHe: "סופת רעמים עם ברד"},
	99: {IconFamily: "11", DescriptionEn: "Thunderstorm with hail", DescriptionHe: "סופת רעמים עם ברד"},
}

// unknownMapping is returned for codes outside the WMO table: clear-family icon
// with an explicit "Unknown" description in both languages.
var unknownMapping = CodeMapping{
	IconFamily:    "01",
	DescriptionEn: "Unknown",
	DescriptionHe: "לא ידוע",
}

// MapCode resolves a WMO weather code and a day/night flag to an icon token and
// bilingual descriptions. A nil isDay defaults to the daytime icon.
func MapCode(code int, isDay *bool) (icon string, descEn string, descHe string) {
	mapping, ok := wmoFamilies[code]
	if !ok {
		mapping = unknownMapping
	}

	suffix := "d"
	if isDay != nil && !*isDay {
		suffix = "n"
	}

	return mapping.IconFamily + suffix, mapping.DescriptionEn, mapping.DescriptionHe
}

// Description picks the display description for a language code ("en" or "he").
// Unrecognized languages fall back to English.
func Description(lang, descEn, descHe string) string {
	if lang == "he" {
		return descHe
	}
	return descEn
}
