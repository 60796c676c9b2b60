package picounits

// Predefined fundamental units, one per base quantity.
var (
	Time       = mustUnit(NewUnit(Dim(BaseTime)))
	Length     = mustUnit(NewUnit(Dim(BaseLength)))
	Mass       = mustUnit(NewUnit(Dim(BaseMass)))
	Current    = mustUnit(NewUnit(Dim(BaseCurrent)))
	Thermal    = mustUnit(NewUnit(Dim(BaseThermal)))
	Amount     = mustUnit(NewUnit(Dim(BaseAmount)))
	Luminosity = mustUnit(NewUnit(Dim(BaseLuminosity)))
)

// Predefined derived units, composed from the fundamentals through the
// unit algebra.
var (
	Frequency    = mustUnit(Dimensionless().Div(Time))
	Velocity     = mustUnit(Length.Div(Time))
	Acceleration = mustUnit(Velocity.Div(Time))
	Area         = mustUnit(Length.Mul(Length))
	Volume       = mustUnit(Area.Mul(Length))
	Density      = mustUnit(Mass.Div(Volume))
	Force        = mustUnit(Mass.Mul(Acceleration))
	Pressure     = mustUnit(Force.Div(Area))
	Energy       = mustUnit(Force.Mul(Length))
	Power        = mustUnit(Energy.Div(Time))
	Charge       = mustUnit(Current.Mul(Time))
	Voltage      = mustUnit(Power.Div(Current))
	Impedance    = mustUnit(Voltage.Div(Current))
	Conductance  = mustUnit(Current.Div(Voltage))
	Capacitance  = mustUnit(Charge.Div(Voltage))
	Inductance   = mustUnit(Voltage.Mul(mustUnit(Time.Div(Current))))
	MagneticFlux = mustUnit(Voltage.Mul(Time))
	FluxDensity  = mustUnit(MagneticFlux.Div(Area))
)

// unitNames resolves the symbolic spellings accepted by ParseUnit and
// the document loader. Base symbols come first; common derived aliases
// follow.
var unitNames = map[string]Unit{
	"1": Dimensionless(),

	"s":   Time,
	"m":   Length,
	"kg":  Mass,
	"A":   Current,
	"K":   Thermal,
	"mol": Amount,
	"cd":  Luminosity,

	"Hz":  Frequency,
	"N":   Force,
	"Pa":  Pressure,
	"J":   Energy,
	"W":   Power,
	"C":   Charge,
	"V":   Voltage,
	"Ohm": Impedance,
	"S":   Conductance,
	"F":   Capacitance,
	"H":   Inductance,
	"Wb":  MagneticFlux,
	"T":   FluxDensity,
}

// UnitFromSymbol resolves a named unit symbol such as "m", "N" or "V".
// The second return is false when the symbol is unknown.
func UnitFromSymbol(symbol string) (Unit, bool) {
	u, ok := unitNames[symbol]
	return u, ok
}
