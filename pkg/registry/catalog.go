package registry

import (
	"github.com/quanta-dev/quanta/pkg/dimension"
	"github.com/quanta-dev/quanta/pkg/scale"
)

// The static unit catalog. Scale vectors are exact prime-power factors
// relative to the dimension's SI base unit; conversion factors are the
// empirical residue for units that cannot be expressed in the 2/3/5/π
// basis. All catalog data is defined here once and treated as
// immutable.

// Mass units. The storage base is the gram (10^-3 kg).
var (
	Gram = &Unit{
		Name:             "gram",
		Symbols:          []string{"g"},
		Scale:            scale.Base10(-3),
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Ounce = &Unit{
		Name:             "ounce",
		Symbols:          []string{"oz"},
		Scale:            scale.Base10(-2),
		ConversionFactor: 2.8349523125,
		System:           Imperial,
	}
	Pound = &Unit{
		Name:             "pound",
		Symbols:          []string{"lb"},
		Scale:            scale.Identity,
		ConversionFactor: 0.45359237,
		System:           Imperial,
	}
	Stone = &Unit{
		Name:             "stone",
		Symbols:          []string{"st"},
		Scale:            scale.Base10(1),
		ConversionFactor: 0.635029318,
		System:           Imperial,
	}
	Ton = &Unit{
		Name:             "ton",
		Symbols:          []string{"t"},
		Scale:            scale.Base10(3),
		ConversionFactor: 1.0160469088,
		System:           Imperial,
	}
	Grain = &Unit{
		Name:             "grain",
		Symbols:          []string{"gr"},
		Scale:            scale.Base10(-4),
		ConversionFactor: 0.6479891,
		System:           Imperial,
	}
	Carat = &Unit{
		Name:             "carat",
		Symbols:          []string{"ct"},
		Scale:            scale.Base10(-4).Mul(scale.Base2(1)),
		ConversionFactor: 1.0,
		System:           Metric,
	}
	TroyOunce = &Unit{
		Name:             "troy_ounce",
		Symbols:          []string{"ozt"},
		Scale:            scale.Base10(-2),
		ConversionFactor: 3.11034768,
		System:           Imperial,
	}
	TroyPound = &Unit{
		Name:             "troy_pound",
		Symbols:          []string{"lbt"},
		Scale:            scale.Identity,
		ConversionFactor: 0.3732417216,
		System:           Imperial,
	}
	Slug = &Unit{
		Name:             "slug",
		Symbols:          []string{"slg"},
		Scale:            scale.Base10(1),
		ConversionFactor: 1.4593902937206365,
		System:           Imperial,
	}
)

// Length units.
var (
	Meter = &Unit{
		Name:             "meter",
		Symbols:          []string{"m"},
		Scale:            scale.Identity,
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Inch = &Unit{
		Name:             "inch",
		Symbols:          []string{"in"},
		Scale:            scale.Base10(-2),
		ConversionFactor: 2.54,
		System:           Imperial,
	}
	Foot = &Unit{
		Name:             "foot",
		Symbols:          []string{"ft"},
		Scale:            scale.Base10(-1),
		ConversionFactor: 3.048,
		System:           Imperial,
	}
	Yard = &Unit{
		Name:             "yard",
		Symbols:          []string{"yd"},
		Scale:            scale.Identity,
		ConversionFactor: 0.9144,
		System:           Imperial,
	}
	Mile = &Unit{
		Name:             "mile",
		Symbols:          []string{"mi"},
		Scale:            scale.Base10(3),
		ConversionFactor: 1.609344,
		System:           Imperial,
	}
	Fathom = &Unit{
		Name:             "fathom",
		Symbols:          []string{"ftm"},
		Scale:            scale.Identity,
		ConversionFactor: 1.8288,
		System:           Imperial,
	}
	Furlong = &Unit{
		Name:             "furlong",
		Symbols:          []string{"fur"},
		Scale:            scale.Base10(2),
		ConversionFactor: 2.01168,
		System:           Imperial,
	}
	NauticalMile = &Unit{
		Name:             "nautical_mile",
		Symbols:          []string{"nmi"},
		Scale:            scale.Base10(3),
		ConversionFactor: 1.852,
		System:           Imperial,
	}
	AstronomicalUnit = &Unit{
		Name:             "astronomical_unit",
		Symbols:          []string{"AU"},
		Scale:            scale.Base10(11),
		ConversionFactor: 1.495978707,
		System:           Astronomical,
	}
	LightYear = &Unit{
		Name:             "light_year",
		Symbols:          []string{"ly"},
		Scale:            scale.Base10(16),
		ConversionFactor: 0.94607304725808,
		System:           Astronomical,
	}
	Parsec = &Unit{
		Name:             "parsec",
		Symbols:          []string{"pc"},
		Scale:            scale.Base10(16),
		ConversionFactor: 3.08567758128,
		System:           Astronomical,
	}
)

// Time units. Minutes, hours and days are exact sexagesimal multiples
// (6 = 2·3) and need no empirical factor.
var (
	Second = &Unit{
		Name:             "second",
		Symbols:          []string{"s"},
		Scale:            scale.Identity,
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Minute = &Unit{
		Name:             "minute",
		Symbols:          []string{"min"},
		Scale:            scale.Base10(1).Mul(scale.Base6(1)),
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Hour = &Unit{
		Name:             "hour",
		Symbols:          []string{"h", "hr"},
		Scale:            scale.Base10(2).Mul(scale.Base6(2)),
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Day = &Unit{
		Name:             "day",
		Symbols:          []string{"d"},
		Scale:            scale.Base10(2).Mul(scale.Base6(3)).Mul(scale.Base2(2)),
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Week = &Unit{
		Name:             "week",
		Symbols:          []string{"wk"},
		Scale:            scale.Base10(3).Mul(scale.Base6(3)).Mul(scale.Base2(2)),
		ConversionFactor: 0.7,
		System:           Metric,
	}
	// Month is the 30-day month.
	Month = &Unit{
		Name:             "month",
		Symbols:          []string{"mo"},
		Scale:            scale.Base10(3).Mul(scale.Base6(4)).Mul(scale.Base2(1)),
		ConversionFactor: 1.0,
		System:           Metric,
	}
	// Year is the solar year, not the calendar year.
	Year = &Unit{
		Name:             "year",
		Symbols:          []string{"yr"},
		Scale:            scale.Base10(7),
		ConversionFactor: 3.1556926,
		System:           Metric,
	}
)

// Current, temperature, amount, luminosity.
var (
	Ampere = &Unit{
		Name:             "ampere",
		Symbols:          []string{"A"},
		Scale:            scale.Identity,
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Kelvin = &Unit{
		Name:             "kelvin",
		Symbols:          []string{"K"},
		Scale:            scale.Identity,
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Celsius = &Unit{
		Name:             "celsius",
		Symbols:          []string{"degC", "C"},
		Scale:            scale.Identity,
		ConversionFactor: 1.0,
		AffineOffset:     273.15,
		System:           Metric,
	}
	// Rankine and Fahrenheit degrees are exactly 5/9 of a kelvin.
	// 0 °F is 459.67 °R exactly, so 32 °F lands on 273.15 K.
	Rankine = &Unit{
		Name:             "rankine",
		Symbols:          []string{"R"},
		Scale:            scale.Vector{0, -2, 1, 0},
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Fahrenheit = &Unit{
		Name:             "fahrenheit",
		Symbols:          []string{"degF"},
		Scale:            scale.Vector{0, -2, 1, 0},
		ConversionFactor: 1.0,
		AffineOffset:     459.67,
		System:           Imperial,
	}
	Mole = &Unit{
		Name:             "mole",
		Symbols:          []string{"mol"},
		Scale:            scale.Identity,
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Candela = &Unit{
		Name:             "candela",
		Symbols:          []string{"cd"},
		Scale:            scale.Identity,
		ConversionFactor: 1.0,
		System:           Metric,
	}
)

// Angle units. The degree is π/180 = 2^-2 · 3^-2 · 5^-1 · π, exact in
// the scale basis.
var (
	Radian = &Unit{
		Name:             "radian",
		Symbols:          []string{"rad"},
		Scale:            scale.Identity,
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Degree = &Unit{
		Name:             "degree",
		Symbols:          []string{"deg"},
		Scale:            scale.Vector{-2, -2, -1, 1},
		ConversionFactor: 1.0,
		System:           Metric,
	}
	// Gradian is π/200 = 2^-3 · 5^-2 · π.
	Gradian = &Unit{
		Name:             "gradian",
		Symbols:          []string{"grad"},
		Scale:            scale.Vector{-3, 0, -2, 1},
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Turn = &Unit{
		Name:             "turn",
		Symbols:          []string{"rot", "turn"},
		Scale:            scale.Vector{1, 0, 0, 1},
		ConversionFactor: 1.0,
		System:           Metric,
	}
	// Arcminute is π/10800, arcsecond π/648000.
	Arcminute = &Unit{
		Name:             "arcminute",
		Symbols:          []string{"arcmin"},
		Scale:            scale.Vector{-4, -3, -2, 1},
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Arcsecond = &Unit{
		Name:             "arcsecond",
		Symbols:          []string{"arcsec"},
		Scale:            scale.Vector{-6, -4, -3, 1},
		ConversionFactor: 1.0,
		System:           Metric,
	}
)

// Named derived units.
var (
	Hertz = &Unit{
		Name:             "hertz",
		Symbols:          []string{"Hz"},
		Scale:            scale.Identity,
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Newton = &Unit{
		Name:             "newton",
		Symbols:          []string{"N"},
		Scale:            scale.Identity,
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Joule = &Unit{
		Name:             "joule",
		Symbols:          []string{"J"},
		Scale:            scale.Identity,
		ConversionFactor: 1.0,
		System:           Metric,
	}
	NewtonMeter = &Unit{
		Name:             "newton_meter",
		Symbols:          []string{"Nm"},
		Scale:            scale.Identity,
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Electronvolt = &Unit{
		Name:             "electron_volt",
		Symbols:          []string{"eV"},
		Scale:            scale.Base10(-19),
		ConversionFactor: 1.602176634,
		System:           Metric,
	}
	Erg = &Unit{
		Name:             "erg",
		Symbols:          []string{"erg"},
		Scale:            scale.Base10(-7),
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Calorie = &Unit{
		Name:             "calorie",
		Symbols:          []string{"cal"},
		Scale:            scale.Base10(1),
		ConversionFactor: 0.4184,
		System:           Metric,
	}
	FootPound = &Unit{
		Name:             "foot_pound",
		Symbols:          []string{"ft_lb"},
		Scale:            scale.Base10(1),
		ConversionFactor: 1.3558179483314004,
		System:           Imperial,
	}
	KilowattHour = &Unit{
		Name:             "kilowatt_hour",
		Symbols:          []string{"kWh"},
		Scale:            scale.Base10(5).Mul(scale.Base6(2)),
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Therm = &Unit{
		Name:             "therm",
		Symbols:          []string{"thm"},
		Scale:            scale.Base10(8),
		ConversionFactor: 1.05505585262,
		System:           Imperial,
	}
	Watt = &Unit{
		Name:             "watt",
		Symbols:          []string{"W"},
		Scale:            scale.Identity,
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Horsepower = &Unit{
		Name:             "horsepower",
		Symbols:          []string{"hp"},
		Scale:            scale.Base10(3),
		ConversionFactor: 0.7456998715822702,
		System:           Imperial,
	}
	Pascal = &Unit{
		Name:             "pascal",
		Symbols:          []string{"Pa"},
		Scale:            scale.Identity,
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Torr = &Unit{
		Name:             "torr",
		Symbols:          []string{"Torr"},
		Scale:            scale.Base10(2),
		ConversionFactor: 1.3332236842105263,
		System:           Metric,
	}
	Psi = &Unit{
		Name:             "psi",
		Symbols:          []string{"psi"},
		Scale:            scale.Base10(4),
		ConversionFactor: 0.6894757293168361,
		System:           Imperial,
	}
	Bar = &Unit{
		Name:             "bar",
		Symbols:          []string{"bar"},
		Scale:            scale.Base10(5),
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Atmosphere = &Unit{
		Name:             "atmosphere",
		Symbols:          []string{"atm"},
		Scale:            scale.Base10(5),
		ConversionFactor: 1.01325,
		System:           Metric,
	}
	Coulomb = &Unit{
		Name:             "coulomb",
		Symbols:          []string{"C"},
		Scale:            scale.Identity,
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Volt = &Unit{
		Name:             "volt",
		Symbols:          []string{"V"},
		Scale:            scale.Identity,
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Farad = &Unit{
		Name:             "farad",
		Symbols:          []string{"F"},
		Scale:            scale.Identity,
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Ohm = &Unit{
		Name:             "ohm",
		Symbols:          []string{"Ω", "ohm"},
		Scale:            scale.Identity,
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Siemens = &Unit{
		Name:             "siemens",
		Symbols:          []string{"S"},
		Scale:            scale.Identity,
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Henry = &Unit{
		Name:             "henry",
		Symbols:          []string{"H"},
		Scale:            scale.Identity,
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Tesla = &Unit{
		Name:             "tesla",
		Symbols:          []string{"T"},
		Scale:            scale.Identity,
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Gauss = &Unit{
		Name:             "gauss",
		Symbols:          []string{"G"},
		Scale:            scale.Base10(-4),
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Weber = &Unit{
		Name:             "weber",
		Symbols:          []string{"Wb"},
		Scale:            scale.Identity,
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Lux = &Unit{
		Name:             "lux",
		Symbols:          []string{"lx"},
		Scale:            scale.Identity,
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Lumen = &Unit{
		Name:             "lumen",
		Symbols:          []string{"lm"},
		Scale:            scale.Identity,
		ConversionFactor: 1.0,
		System:           Metric,
	}
	Stokes = &Unit{
		Name:             "stokes",
		Symbols:          []string{"St"},
		Scale:            scale.Base10(-4),
		ConversionFactor: 1.0,
		System:           Metric,
	}
)

// Area and volume units.
var (
	// SquareMeter is the canonical area unit. It has no symbol of its
	// own: "m2"/"m^2" already parse as meter squared.
	SquareMeter = &Unit{
		Name:             "square_meter",
		Symbols:          []string{},
		Scale:            scale.Identity,
		ConversionFactor: 1.0,
		System:           Metric,
	}
	// Acre is 4046.8564224 m², stored at the 10^4 m² neighbor.
	Acre = &Unit{
		Name:             "acre",
		Symbols:          []string{"acre"},
		Scale:            scale.Base10(4),
		ConversionFactor: 0.40468564224,
		System:           Imperial,
	}
	Hectare = &Unit{
		Name:             "hectare",
		Symbols:          []string{"hect"},
		Scale:            scale.Base10(4),
		ConversionFactor: 1.0,
		System:           Metric,
	}

	Liter = &Unit{
		Name:             "liter",
		Symbols:          []string{"L", "l"},
		Scale:            scale.Base10(-3),
		ConversionFactor: 1.0,
		System:           Metric,
	}
	GallonUS = &Unit{
		Name:             "gallon",
		Symbols:          []string{"gal", "gallon"},
		Scale:            scale.Base10(-2),
		ConversionFactor: 0.3785411784,
		System:           Imperial,
	}
	GallonUK = &Unit{
		Name:             "uk_gallon",
		Symbols:          []string{"uk_gal"},
		Scale:            scale.Base10(-2),
		ConversionFactor: 0.454609,
		System:           Imperial,
	}
	QuartUS = &Unit{
		Name:             "quart",
		Symbols:          []string{"qrt"},
		Scale:            scale.Base10(-3),
		ConversionFactor: 0.946352946,
		System:           Imperial,
	}
	QuartUK = &Unit{
		Name:             "uk_quart",
		Symbols:          []string{"uk_qrt"},
		Scale:            scale.Base10(-3),
		ConversionFactor: 1.1365225,
		System:           Imperial,
	}
	PintUS = &Unit{
		Name:             "pint",
		Symbols:          []string{"pnt"},
		Scale:            scale.Base10(-3),
		ConversionFactor: 0.473176473,
		System:           Imperial,
	}
	PintUK = &Unit{
		Name:             "uk_pint",
		Symbols:          []string{"uk_pnt"},
		Scale:            scale.Base10(-3),
		ConversionFactor: 0.56826125,
		System:           Imperial,
	}
	CupUS = &Unit{
		Name:             "cup",
		Symbols:          []string{"cup"},
		Scale:            scale.Base10(-4),
		ConversionFactor: 2.365882365,
		System:           Imperial,
	}
	CupUK = &Unit{
		Name:             "uk_cup",
		Symbols:          []string{"uk_cup"},
		Scale:            scale.Base10(-4),
		ConversionFactor: 2.84130625,
		System:           Imperial,
	}
	FluidOunceUS = &Unit{
		Name:             "fluid_ounce",
		Symbols:          []string{"fl_oz"},
		Scale:            scale.Base10(-5),
		ConversionFactor: 2.95735295625,
		System:           Imperial,
	}
	FluidOunceUK = &Unit{
		Name:             "uk_fluid_ounce",
		Symbols:          []string{"uk_fl_oz"},
		Scale:            scale.Base10(-5),
		ConversionFactor: 2.84130625,
		System:           Imperial,
	}
	TablespoonUS = &Unit{
		Name:             "tablespoon",
		Symbols:          []string{"tbsp"},
		Scale:            scale.Base10(-5),
		ConversionFactor: 1.478676478125,
		System:           Imperial,
	}
	TablespoonUK = &Unit{
		Name:             "uk_tablespoon",
		Symbols:          []string{"uk_tbsp"},
		Scale:            scale.Base10(-5),
		ConversionFactor: 1.77581640625,
		System:           Imperial,
	}
	TeaspoonUS = &Unit{
		Name:             "teaspoon",
		Symbols:          []string{"tsp"},
		Scale:            scale.Base10(-5),
		ConversionFactor: 0.492892159375,
		System:           Imperial,
	}
	TeaspoonUK = &Unit{
		Name:             "uk_teaspoon",
		Symbols:          []string{"uk_tsp"},
		Scale:            scale.Base10(-5),
		ConversionFactor: 0.59193880208333,
		System:           Imperial,
	}
	Bushel = &Unit{
		Name:             "bushel",
		Symbols:          []string{"bu"},
		Scale:            scale.Base10(-1),
		ConversionFactor: 0.3523907016688,
		System:           Imperial,
	}

	Dimensionless = &Unit{
		Name:             "dimensionless",
		Symbols:          []string{},
		Scale:            scale.Identity,
		ConversionFactor: 1.0,
		System:           Metric,
	}
)

// dimVec is a readability shorthand for catalog dimension vectors, in
// axis order mass, length, time, current, temperature, amount,
// luminosity, angle.
func dimVec(m, l, t, i, th, n, j, a int) dimension.Vector {
	return dimension.Vector{m, l, t, i, th, n, j, a}
}

// Dimensions lists every dimension in the catalog, basis axes first.
// Lookup iteration follows this order, so symbol collisions between
// dimensions (celsius "C" vs coulomb "C") resolve to the earlier entry.
var Dimensions = []*Dimension{
	{
		Name:      "Mass",
		Symbol:    "M",
		Exponents: dimVec(1, 0, 0, 0, 0, 0, 0, 0),
		Units: []*Unit{
			Gram, Ounce, Pound, Stone, Ton,
			Grain, Carat, TroyOunce, TroyPound, Slug,
		},
	},
	{
		Name:      "Length",
		Symbol:    "L",
		Exponents: dimVec(0, 1, 0, 0, 0, 0, 0, 0),
		Units: []*Unit{
			Meter, Inch, Foot, Yard, Mile,
			Fathom, Furlong, NauticalMile,
			AstronomicalUnit, LightYear, Parsec,
		},
	},
	{
		Name:      "Time",
		Symbol:    "T",
		Exponents: dimVec(0, 0, 1, 0, 0, 0, 0, 0),
		Units:     []*Unit{Second, Minute, Hour, Day, Week, Month, Year},
	},
	{
		Name:      "Current",
		Symbol:    "I",
		Exponents: dimVec(0, 0, 0, 1, 0, 0, 0, 0),
		Units:     []*Unit{Ampere},
	},
	{
		Name:      "Temperature",
		Symbol:    "θ",
		Exponents: dimVec(0, 0, 0, 0, 1, 0, 0, 0),
		Units:     []*Unit{Kelvin, Celsius, Rankine, Fahrenheit},
	},
	{
		Name:      "Amount",
		Symbol:    "N",
		Exponents: dimVec(0, 0, 0, 0, 0, 1, 0, 0),
		Units:     []*Unit{Mole},
	},
	{
		Name:      "Luminosity",
		Symbol:    "Cd",
		Exponents: dimVec(0, 0, 0, 0, 0, 0, 1, 0),
		Units:     []*Unit{Candela},
	},
	{
		Name:      "Angle",
		Symbol:    "A",
		Exponents: dimVec(0, 0, 0, 0, 0, 0, 0, 1),
		Units:     []*Unit{Radian, Degree, Gradian, Turn, Arcminute, Arcsecond},
	},
	{
		Name:      "Area",
		Symbol:    "L²",
		Exponents: dimVec(0, 2, 0, 0, 0, 0, 0, 0),
		Units:     []*Unit{SquareMeter, Acre, Hectare},
	},
	{
		Name:      "Volume",
		Symbol:    "L³",
		Exponents: dimVec(0, 3, 0, 0, 0, 0, 0, 0),
		Units: []*Unit{
			Liter,
			GallonUS, QuartUS, PintUS, CupUS,
			FluidOunceUS, TablespoonUS, TeaspoonUS,
			GallonUK, QuartUK, PintUK, CupUK,
			FluidOunceUK, TablespoonUK, TeaspoonUK,
			Bushel,
		},
	},
	{
		Name:      "Frequency",
		Symbol:    "T⁻¹",
		Exponents: dimVec(0, 0, -1, 0, 0, 0, 0, 0),
		Units:     []*Unit{Hertz},
	},
	{
		Name:      "Force",
		Symbol:    "MLT⁻²",
		Exponents: dimVec(1, 1, -2, 0, 0, 0, 0, 0),
		Units:     []*Unit{Newton},
	},
	{
		Name:      "Energy",
		Symbol:    "ML²T⁻²",
		Exponents: dimVec(1, 2, -2, 0, 0, 0, 0, 0),
		Units: []*Unit{
			Joule, NewtonMeter, Electronvolt, Erg,
			Calorie, FootPound, KilowattHour, Therm,
		},
	},
	{
		Name:      "Power",
		Symbol:    "ML²T⁻³",
		Exponents: dimVec(1, 2, -3, 0, 0, 0, 0, 0),
		Units:     []*Unit{Watt, Horsepower},
	},
	{
		Name:      "Pressure",
		Symbol:    "ML⁻¹T⁻²",
		Exponents: dimVec(1, -1, -2, 0, 0, 0, 0, 0),
		Units:     []*Unit{Pascal, Torr, Psi, Bar, Atmosphere},
	},
	{
		Name:      "Electric Charge",
		Symbol:    "TI",
		Exponents: dimVec(0, 0, 1, 1, 0, 0, 0, 0),
		Units:     []*Unit{Coulomb},
	},
	{
		Name:      "Electric Potential",
		Symbol:    "ML²T⁻³I⁻¹",
		Exponents: dimVec(1, 2, -3, -1, 0, 0, 0, 0),
		Units:     []*Unit{Volt},
	},
	{
		Name:      "Capacitance",
		Symbol:    "M⁻¹L⁻²T⁴I²",
		Exponents: dimVec(-1, -2, 4, 2, 0, 0, 0, 0),
		Units:     []*Unit{Farad},
	},
	{
		Name:      "Electric Resistance",
		Symbol:    "ML²T⁻³I⁻²",
		Exponents: dimVec(1, 2, -3, -2, 0, 0, 0, 0),
		Units:     []*Unit{Ohm},
	},
	{
		Name:      "Electric Conductance",
		Symbol:    "M⁻¹L⁻²T³I²",
		Exponents: dimVec(-1, -2, 3, 2, 0, 0, 0, 0),
		Units:     []*Unit{Siemens},
	},
	{
		Name:      "Inductance",
		Symbol:    "ML²T⁻²I⁻²",
		Exponents: dimVec(1, 2, -2, -2, 0, 0, 0, 0),
		Units:     []*Unit{Henry},
	},
	{
		Name:      "Magnetic Field",
		Symbol:    "MT⁻²I⁻¹",
		Exponents: dimVec(1, 0, -2, -1, 0, 0, 0, 0),
		Units:     []*Unit{Tesla, Gauss},
	},
	{
		Name:      "Magnetic Flux",
		Symbol:    "ML²T⁻²I⁻¹",
		Exponents: dimVec(1, 2, -2, -1, 0, 0, 0, 0),
		Units:     []*Unit{Weber},
	},
	{
		Name:      "Illuminance",
		Symbol:    "L⁻²Cd",
		Exponents: dimVec(0, -2, 0, 0, 0, 0, 1, 0),
		Units:     []*Unit{Lux, Lumen},
	},
	{
		Name:      "Volume Mass Density",
		Symbol:    "ML⁻³",
		Exponents: dimVec(1, -3, 0, 0, 0, 0, 0, 0),
		Units:     []*Unit{},
	},
	{
		Name:      "Linear Mass Density",
		Symbol:    "ML⁻¹",
		Exponents: dimVec(1, -1, 0, 0, 0, 0, 0, 0),
		Units:     []*Unit{},
	},
	{
		Name:      "Dynamic Viscosity",
		Symbol:    "ML⁻¹T⁻¹",
		Exponents: dimVec(1, -1, -1, 0, 0, 0, 0, 0),
		Units:     []*Unit{},
	},
	{
		Name:      "Kinematic Viscosity",
		Symbol:    "L²T⁻¹",
		Exponents: dimVec(0, 2, -1, 0, 0, 0, 0, 0),
		Units:     []*Unit{Stokes},
	},
	{
		Name:      "dimensionless",
		Symbol:    "1",
		Exponents: dimension.Zero,
		Units:     []*Unit{Dimensionless},
	},
}
