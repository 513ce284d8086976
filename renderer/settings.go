package renderer

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// Settings controls the canvas and the look of a rendered map.
type Settings struct {
	Width             float64    `json:"width" yaml:"width" validate:"gte=0,lte=100000"`
	Height            float64    `json:"height" yaml:"height" validate:"gte=0,lte=100000"`
	Padding           float64    `json:"padding" yaml:"padding" validate:"gte=0"`
	StopRadius        float64    `json:"stop_radius" yaml:"stopRadius" validate:"gte=0,lte=100000"`
	LineWidth         float64    `json:"line_width" yaml:"lineWidth" validate:"gte=0,lte=100000"`
	BusLabelFontSize  int        `json:"bus_label_font_size" yaml:"busLabelFontSize" validate:"gte=0,lte=100000"`
	BusLabelOffset    [2]float64 `json:"bus_label_offset" yaml:"busLabelOffset" validate:"dive,gte=-100000,lte=100000"`
	StopLabelFontSize int        `json:"stop_label_font_size" yaml:"stopLabelFontSize" validate:"gte=0,lte=100000"`
	StopLabelOffset   [2]float64 `json:"stop_label_offset" yaml:"stopLabelOffset" validate:"dive,gte=-100000,lte=100000"`
	UnderlayerColor   Color      `json:"underlayer_color" yaml:"underlayerColor"`
	UnderlayerWidth   float64    `json:"underlayer_width" yaml:"underlayerWidth" validate:"gte=0,lte=100000"`
	ColorPalette      []Color    `json:"color_palette" yaml:"colorPalette" validate:"min=1"`
}

// DefaultSettings returns a 1200x1200 canvas with a three color palette.
func DefaultSettings() Settings {
	return Settings{
		Width:             1200,
		Height:            1200,
		Padding:           50,
		StopRadius:        5,
		LineWidth:         14,
		BusLabelFontSize:  20,
		BusLabelOffset:    [2]float64{7, 15},
		StopLabelFontSize: 20,
		StopLabelOffset:   [2]float64{7, -3},
		UnderlayerColor:   RGBA(255, 255, 255, 0.85),
		UnderlayerWidth:   3,
		ColorPalette:      []Color{Named("green"), RGB(255, 160, 0), Named("red")},
	}
}

var validate = validator.New()

// Validate checks ranges and that the padding fits inside the canvas.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return err
	}
	if 2*s.Padding > math.Min(s.Width, s.Height) {
		return fmt.Errorf("padding %v does not fit a %vx%v canvas", s.Padding, s.Width, s.Height)
	}
	return nil
}
