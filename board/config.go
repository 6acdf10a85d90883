package board

import "github.com/SvenDH/go-card-board/geom"

// Config holds the board's fixed dimensions and tuning. It is passed into
// New and never changes for the lifetime of a GameState.
type Config struct {
	CardWidth  float64 `mapstructure:"card_width"`
	CardHeight float64 `mapstructure:"card_height"`
	// Distance between card centers in a zone.
	HandSpacing  float64 `mapstructure:"hand_spacing"`
	FieldSpacing float64 `mapstructure:"field_spacing"`

	FieldCapacity int `mapstructure:"field_capacity"`

	// BounceFactor is the return-to-rest rate per millisecond.
	BounceFactor float64 `mapstructure:"bounce_factor"`
	// MaxFrameDelta caps the per-tick delta in milliseconds. Zero disables the cap.
	MaxFrameDelta float64 `mapstructure:"max_frame_delta"`

	// A drop whose height divided by the screen height falls in
	// [FieldBandMin, FieldBandMax) lands on the player's field.
	FieldBandMin float64 `mapstructure:"field_band_min"`
	FieldBandMax float64 `mapstructure:"field_band_max"`
}

func DefaultConfig() Config {
	return Config{
		CardWidth:     150,
		CardHeight:    200,
		HandSpacing:   100,
		FieldSpacing:  175,
		FieldCapacity: 7,
		BounceFactor:  0.005,
		MaxFrameDelta: 100,
		FieldBandMin:  0.5,
		FieldBandMax:  0.75,
	}
}

func (c Config) CardSize() geom.Point {
	return geom.Pt(c.CardWidth, c.CardHeight)
}
