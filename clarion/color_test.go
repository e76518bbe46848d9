package clarion

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestNewColor(t *testing.T) {
	c, err := NewColor(4259584)
	assert.Nil(t, err)
	assert.Equal(t, int32(4259584), c.Packed())

	for _, val := range [...]int32{MinColor, MaxColor} {
		_, err := NewColor(val)
		assert.Nil(t, err)
	}
	for _, val := range [...]int32{-1, MaxColor + 1, math.MaxInt32, math.MinInt32} {
		_, err := NewColor(val)
		assert.Equal(t, ErrOutOfRange, err)
	}
}

func TestDecodeColor(t *testing.T) {
	// red sits in the least significant byte, blue in the most
	assert.Equal(t, RGBColor{Red: 255}, DecodeColor(255))
	assert.Equal(t, RGBColor{Blue: 255}, DecodeColor(16711680))
	assert.Equal(t, RGBColor{Green: 255, Blue: 64}, DecodeColor(4259584))
	assert.Equal(t, RGBColor{Red: 255, Green: 255, Blue: 255}, DecodeColor(MaxColor))
	assert.Equal(t, RGBColor{}, DecodeColor(0))
}

func TestEncodeColor(t *testing.T) {
	assert.Equal(t, int32(255), EncodeColor(RGBColor{Red: 255}))
	assert.Equal(t, int32(16711680), EncodeColor(RGBColor{Blue: 255}))
	assert.Equal(t, int32(4259584), EncodeColor(RGBColor{Green: 255, Blue: 64}))
	assert.Equal(t, int32(4227327), EncodeColor(RGBColor{Red: 255, Green: 128, Blue: 64}))
}

func TestColorRoundTrip(t *testing.T) {
	testVals := [...]int32{0, 255, 65280, 4259584, 16711680, MaxColor}
	for _, val := range testVals {
		assert.Equal(t, val, EncodeColor(DecodeColor(val)))
	}
}

func TestColorRGB(t *testing.T) {
	c := ColorOf(RGBColor{Red: 0, Green: 255, Blue: 64})
	assert.Equal(t, int32(4259584), c.Packed())
	assert.Equal(t, RGBColor{Green: 255, Blue: 64}, c.RGB())
}

func TestRGBColorColorful(t *testing.T) {
	assert.Equal(t, "#ff0000", RGBColor{Red: 255}.Hex())
	assert.Equal(t, "#0000ff", ColorOf(RGBColor{Blue: 255}).String())

	back := RGBColorOf(colorful.Color{R: 1, G: 0.5, B: 0})
	assert.Equal(t, uint8(255), back.Red)
	assert.Equal(t, uint8(128), back.Green)
	assert.Equal(t, uint8(0), back.Blue)
}
