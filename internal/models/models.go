package models

// Color is an 8-bit RGB triplet, uploaded as normalised unsigned bytes.
type Color struct {
	R uint8 `toml:"r"`
	G uint8 `toml:"g"`
	B uint8 `toml:"b"`
}

var White = Color{R: 255, G: 255, B: 255}

type HandSpec struct {
	Name   string
	ScaleX float32
	ScaleY float32
	Color  Color
}

var (
	SecondHand = HandSpec{Name: "second", ScaleX: 0.25, ScaleY: 1.0, Color: White}
	MinuteHand = HandSpec{Name: "minute", ScaleX: 0.65, ScaleY: 0.75, Color: White}
	HourHand   = HandSpec{Name: "hour", ScaleX: 0.50, ScaleY: 0.50, Color: White}
)

// Hands returns the hand specs in draw order: second, minute, hour.
func Hands() [3]HandSpec {
	return [3]HandSpec{SecondHand, MinuteHand, HourHand}
}
