package numring

// Direction is the angular direction in which slots advance.
type Direction int

const (
	// Clockwise advances slots by +2π/count. In screen coordinates (Y down)
	// this is visually clockwise.
	Clockwise Direction = iota
	// Counterclockwise advances slots by -2π/count.
	Counterclockwise
)

// String returns the form value of the direction.
func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case Counterclockwise:
		return "counterclockwise"
	default:
		return "unknown"
	}
}

// sign returns +1 for Clockwise and -1 otherwise.
func (d Direction) sign() float64 {
	if d == Clockwise {
		return 1
	}
	return -1
}

// Parity restricts which label values are drawn.
type Parity int

const (
	// ParityAll draws every label.
	ParityAll Parity = iota
	// ParityEven draws only even values.
	ParityEven
	// ParityOdd draws only odd values.
	ParityOdd
)

// String returns the form value of the parity filter.
func (p Parity) String() string {
	switch p {
	case ParityAll:
		return "all"
	case ParityEven:
		return "even"
	case ParityOdd:
		return "odd"
	default:
		return "unknown"
	}
}

// Allows reports whether value passes the filter.
// Negative odd values are odd (-3 % 2 == -1).
func (p Parity) Allows(value int) bool {
	switch p {
	case ParityEven:
		return value%2 == 0
	case ParityOdd:
		return value%2 != 0
	default:
		return true
	}
}

// GenerationConfig is the canonical, validated set of parameters for one
// render. Build it with Resolve.
type GenerationConfig struct {
	StartNumber     int
	Direction       Direction
	RotationDegrees int
	Count           int
	RadiusOffset    int
	FontSizePx      int
	FontColor       RGBA
	CenterOffsetX   int
	CenterOffsetY   int
	Parity          Parity
}

// RawInputs holds the unparsed value of every control, exactly as a form
// or parameter sheet supplies them.
type RawInputs struct {
	StartNumber   string `yaml:"startNumber"`
	Direction     string `yaml:"direction"`
	Rotation      string `yaml:"rotation"`
	Count         string `yaml:"numCount"`
	RadiusOffset  string `yaml:"radiusOffset"`
	FontSize      string `yaml:"fontSize"`
	FontColor     string `yaml:"fontColor"`
	OffsetX       string `yaml:"offsetX"`
	OffsetY       string `yaml:"offsetY"`
	EvenOddFilter string `yaml:"evenOddFilter"`
}

// DefaultInputs returns the initial state of the controls: a twelve-slot
// ring starting at 1, clockwise, in black 24px text.
func DefaultInputs() RawInputs {
	return RawInputs{
		StartNumber:   "1",
		Direction:     "clockwise",
		Rotation:      "0",
		Count:         "12",
		RadiusOffset:  "0",
		FontSize:      "24",
		FontColor:     "#000000",
		OffsetX:       "0",
		OffsetY:       "0",
		EvenOddFilter: "all",
	}
}

// Merge returns r with every non-empty field of o applied on top.
func (r RawInputs) Merge(o RawInputs) RawInputs {
	pick := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	pick(&r.StartNumber, o.StartNumber)
	pick(&r.Direction, o.Direction)
	pick(&r.Rotation, o.Rotation)
	pick(&r.Count, o.Count)
	pick(&r.RadiusOffset, o.RadiusOffset)
	pick(&r.FontSize, o.FontSize)
	pick(&r.FontColor, o.FontColor)
	pick(&r.OffsetX, o.OffsetX)
	pick(&r.OffsetY, o.OffsetY)
	pick(&r.EvenOddFilter, o.EvenOddFilter)
	return r
}
