package calc

import (
	"fmt"
	"strings"

	"github.com/anthropics/tutor-engine/internal/domain"
)

// conversionFactors maps "from_to" pairs to multiplication factors.
// Temperature pairs are absent here; they take the affine path in
// ConvertUnits.
var conversionFactors = map[string]float64{
	// Length
	"km_miles": 0.621371,
	"miles_km": 1.60934,
	"m_ft":     3.28084,
	"ft_m":     0.3048,
	"cm_inch":  0.393701,
	"inch_cm":  2.54,
	"m_yard":   1.09361,
	"yard_m":   0.9144,
	"km_m":     1000,
	"m_km":     0.001,
	"cm_m":     0.01,
	"m_cm":     100,
	"mm_inch":  0.0393701,
	"inch_mm":  25.4,

	// Weight/Mass
	"kg_lbs":   2.20462,
	"lbs_kg":   0.453592,
	"g_oz":     0.035274,
	"oz_g":     28.3495,
	"kg_g":     1000,
	"g_kg":     0.001,
	"tonne_kg": 1000,
	"kg_tonne": 0.001,

	// Volume
	"l_gal": 0.264172,
	"gal_l": 3.78541,
	"ml_l":  0.001,
	"l_ml":  1000,
	"l_oz":  33.814,
	"oz_l":  0.0295735,

	// Area
	"sqkm_sqmile":  0.386102,
	"sqmile_sqkm":  2.58999,
	"sqm_sqft":     10.7639,
	"sqft_sqm":     0.092903,
	"sqm_sqyard":   1.19599,
	"sqyard_sqm":   0.836127,
	"acre_hectare": 0.404686,
	"hectare_acre": 2.47105,

	// Time
	"hour_min": 60,
	"min_hour": 1.0 / 60,
	"min_sec":  60,
	"sec_min":  1.0 / 60,
	"day_hour": 24,
	"hour_day": 1.0 / 24,
	"week_day": 7,
	"day_week": 1.0 / 7,
	"year_day": 365,
	"day_year": 1.0 / 365,

	// Speed
	"kmh_mph": 0.621371,
	"mph_kmh": 1.60934,
	"ms_kmh":  3.6,
	"kmh_ms":  1.0 / 3.6,

	// Data
	"byte_kb": 0.001,
	"kb_byte": 1000,
	"mb_gb":   0.001,
	"gb_mb":   1000,
	"tb_gb":   1000,
	"gb_tb":   0.001,
}

// unitAliases folds spelled-out and variant unit names onto the canonical
// short names used in conversionFactors.
var unitAliases = map[string]string{
	"kilometer": "km", "kilometers": "km",
	"mile": "miles", "miles": "miles",
	"meter": "m", "meters": "m",
	"foot": "ft", "feet": "ft",
	"inch": "inch", "inches": "inch",
	"centimeter": "cm", "centimeters": "cm",
	"millimeter": "mm", "millimeters": "mm",
	"yard": "yard", "yards": "yard",
	"kilogram": "kg", "kilograms": "kg",
	"pound": "lbs", "pounds": "lbs", "lb": "lbs",
	"gram": "g", "grams": "g",
	"ounce": "oz", "ounces": "oz",
	"liter": "l", "liters": "l", "litre": "l", "litres": "l",
	"gallon": "gal", "gallons": "gal",
	"milliliter": "ml", "milliliters": "ml",
	"square_km": "sqkm", "sq_km": "sqkm", "km²": "sqkm",
	"square_mile": "sqmile", "sq_mile": "sqmile", "mi²": "sqmile",
	"square_meter": "sqm", "sq_m": "sqm", "m²": "sqm",
	"square_foot": "sqft", "sq_ft": "sqft", "ft²": "sqft",
	"acre": "acre", "acres": "acre",
	"hectare": "hectare", "hectares": "hectare",
	"hour": "hour", "hours": "hour",
	"minute": "min", "minutes": "min",
	"second": "sec", "seconds": "sec",
	"day": "day", "days": "day",
	"week": "week", "weeks": "week",
	"year": "year", "years": "year",
	"km/h": "kmh", "kmh": "kmh", "kph": "kmh",
	"mph": "mph",
	"m/s": "ms", "mps": "ms",
	"byte": "byte", "bytes": "byte",
	"kilobyte": "kb", "kilobytes": "kb",
	"megabyte": "mb", "megabytes": "mb",
	"gigabyte": "gb", "gigabytes": "gb",
	"terabyte": "tb", "terabytes": "tb",
}

func isCelsius(u string) bool    { return u == "celsius" || u == "c" || u == "°c" }
func isFahrenheit(u string) bool { return u == "fahrenheit" || u == "f" || u == "°f" }
func isKelvin(u string) bool     { return u == "kelvin" || u == "k" }

// ConvertUnits converts a value between units. Temperature pairs use their
// affine formulas and round to 2 decimals; everything else multiplies by
// the table factor (or divides by the reverse factor) and rounds to 6.
// Unknown pairs fail with the list of units reachable from the source.
func (m *Manager) ConvertUnits(value float64, fromUnit, toUnit string) domain.ConversionResult {
	from := strings.ToLower(strings.TrimSpace(fromUnit))
	to := strings.ToLower(strings.TrimSpace(toUnit))

	switch {
	case isCelsius(from) && isFahrenheit(to):
		return temperatureResult(value, "Celsius", "Fahrenheit", value*9/5+32, "°F = °C × 9/5 + 32")
	case isFahrenheit(from) && isCelsius(to):
		return temperatureResult(value, "Fahrenheit", "Celsius", (value-32)*5/9, "°C = (°F - 32) × 5/9")
	case isCelsius(from) && isKelvin(to):
		return temperatureResult(value, "Celsius", "Kelvin", value+273.15, "K = °C + 273.15")
	case isKelvin(from) && isCelsius(to):
		return temperatureResult(value, "Kelvin", "Celsius", value-273.15, "°C = K - 273.15")
	}

	fromNorm := from
	if canonical, ok := unitAliases[from]; ok {
		fromNorm = canonical
	}
	toNorm := to
	if canonical, ok := unitAliases[to]; ok {
		toNorm = canonical
	}

	if factor, ok := conversionFactors[fromNorm+"_"+toNorm]; ok {
		return domain.ConversionResult{
			Success:          true,
			Value:            value,
			FromUnit:         from,
			ToUnit:           to,
			Result:           roundTo(value*factor, 6),
			ConversionFactor: factor,
			Type:             "conversion",
		}
	}
	if factor, ok := conversionFactors[toNorm+"_"+fromNorm]; ok {
		return domain.ConversionResult{
			Success:          true,
			Value:            value,
			FromUnit:         from,
			ToUnit:           to,
			Result:           roundTo(value/factor, 6),
			ConversionFactor: 1 / factor,
			Type:             "conversion",
		}
	}

	var available []string
	for key := range conversionFactors {
		if strings.HasPrefix(key, fromNorm+"_") {
			available = append(available, strings.TrimPrefix(key, fromNorm+"_"))
		}
	}
	return domain.ConversionResult{
		Success:        false,
		Value:          value,
		FromUnit:       from,
		ToUnit:         to,
		Error:          fmt.Sprintf("Conversion from '%s' to '%s' not supported", from, to),
		AvailableUnits: available,
		Type:           "error",
	}
}

func temperatureResult(value float64, from, to string, result float64, formula string) domain.ConversionResult {
	return domain.ConversionResult{
		Success:  true,
		Value:    value,
		FromUnit: from,
		ToUnit:   to,
		Result:   roundTo(result, 2),
		Formula:  formula,
		Type:     "temperature",
	}
}

// AvailableConversions lists the supported conversions by category.
func (m *Manager) AvailableConversions() map[string][]string {
	return map[string][]string{
		"length":      {"km ↔ miles", "m ↔ ft", "cm ↔ inch", "m ↔ yard", "mm ↔ inch"},
		"weight":      {"kg ↔ lbs", "g ↔ oz", "kg ↔ g", "tonne ↔ kg"},
		"temperature": {"Celsius ↔ Fahrenheit", "Celsius ↔ Kelvin"},
		"volume":      {"L ↔ gal", "mL ↔ L", "L ↔ oz"},
		"area":        {"km² ↔ mi²", "m² ↔ ft²", "m² ↔ yd²", "acre ↔ hectare"},
		"time":        {"hour ↔ min", "min ↔ sec", "day ↔ hour", "week ↔ day", "year ↔ day"},
		"speed":       {"km/h ↔ mph", "m/s ↔ km/h"},
		"data":        {"byte ↔ KB", "MB ↔ GB", "GB ↔ TB"},
	}
}
