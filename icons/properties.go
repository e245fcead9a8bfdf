package icons

// Default presentation values applied to unset Properties fields.
const (
	DefaultSize           = "24"
	DefaultFill           = "none"
	DefaultColor          = "currentColor"
	DefaultStrokeWidth    = "2"
	DefaultStrokeLinecap  = "round"
	DefaultStrokeLinejoin = "round"
)

// ViewBox is the coordinate system shared by every icon.
const ViewBox = "0 0 24 24"

// Properties customizes the presentation of a rendered icon.
//
// Values are passed through to the svg attributes verbatim. An empty field
// means unset and takes its default, so the zero value renders the stock
// Lucide look.
type Properties struct {
	Class          string
	Size           string
	Fill           string
	Color          string
	StrokeWidth    string
	StrokeLinecap  string
	StrokeLinejoin string
}

// DefaultProperties returns the properties used when nothing is customized.
func DefaultProperties() Properties {
	return Properties{
		Size:           DefaultSize,
		Fill:           DefaultFill,
		Color:          DefaultColor,
		StrokeWidth:    DefaultStrokeWidth,
		StrokeLinecap:  DefaultStrokeLinecap,
		StrokeLinejoin: DefaultStrokeLinejoin,
	}
}

// Resolve returns a copy of p with every unset field replaced by its default.
func (p Properties) Resolve() Properties {
	p.Size = orDefault(p.Size, DefaultSize)
	p.Fill = orDefault(p.Fill, DefaultFill)
	p.Color = orDefault(p.Color, DefaultColor)
	p.StrokeWidth = orDefault(p.StrokeWidth, DefaultStrokeWidth)
	p.StrokeLinecap = orDefault(p.StrokeLinecap, DefaultStrokeLinecap)
	p.StrokeLinejoin = orDefault(p.StrokeLinejoin, DefaultStrokeLinejoin)
	return p
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
