package light

import (
	"math"
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	direction        [3]float32
	color            [3]float32
	intensity        float32
	ambientColor     [3]float32
	ambientIntensity float32
	enabled          bool
}

// Light defines the interface for the scene's studio lighting: a single
// directional key light plus an ambient fill term. The light contributes to
// the final pixel color during the lit forward pass; its values are packed
// into the per-frame uniform each frame via Uniform().
type Light interface {
	// Direction returns the normalized direction the light shines along.
	//
	// Returns:
	//   - [3]float32: normalized direction as (x, y, z)
	Direction() [3]float32

	// Color returns the RGB color of the directional light.
	//
	// Returns:
	//   - [3]float32: color as (r, g, b)
	Color() [3]float32

	// Intensity returns the scalar intensity multiplier for the directional light.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// AmbientColor returns the RGB color of the ambient fill term.
	//
	// Returns:
	//   - [3]float32: ambient color as (r, g, b)
	AmbientColor() [3]float32

	// AmbientIntensity returns the scalar multiplier for the ambient fill term.
	//
	// Returns:
	//   - float32: the ambient intensity value
	AmbientIntensity() float32

	// Enabled returns whether the directional light is active for rendering.
	// When disabled only the ambient term contributes.
	//
	// Returns:
	//   - bool: true if the light is enabled
	Enabled() bool

	// SetDirection sets the direction of the light and normalizes it.
	//
	// Parameters:
	//   - x, y, z: direction components (will be normalized)
	SetDirection(x, y, z float32)

	// SetColor sets the RGB color of the directional light.
	//
	// Parameters:
	//   - r, g, b: color components
	SetColor(r, g, b float32)

	// SetIntensity sets the scalar intensity multiplier.
	//
	// Parameters:
	//   - intensity: the intensity value
	SetIntensity(intensity float32)

	// SetAmbient sets the ambient fill color and intensity.
	//
	// Parameters:
	//   - r, g, b: ambient color components
	//   - intensity: ambient intensity multiplier
	SetAmbient(r, g, b, intensity float32)

	// SetEnabled enables or disables the directional light.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// Uniform packs the light state into the GPU uniform representation.
	// When the light is disabled the directional intensity is zeroed so the
	// shader falls back to the ambient term alone.
	//
	// Returns:
	//   - *GPULightUniform: the light uniform ready for upload
	Uniform() *GPULightUniform
}

var _ Light = &lightImpl{}

// NewLight creates a new directional studio light with sensible defaults and
// any provided options applied. The default light shines down and slightly
// forward, matching an overhead studio key light.
//
// Parameters:
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(opts ...LightBuilderOption) Light {
	l := &lightImpl{
		direction:        normalize3(-0.4, -1, -0.6),
		color:            [3]float32{1, 1, 1},
		intensity:        1.0,
		ambientColor:     [3]float32{1, 1, 1},
		ambientIntensity: 0.25,
		enabled:          true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Direction() [3]float32 {
	return l.direction
}

func (l *lightImpl) Color() [3]float32 {
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) AmbientColor() [3]float32 {
	return l.ambientColor
}

func (l *lightImpl) AmbientIntensity() float32 {
	return l.ambientIntensity
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}

func (l *lightImpl) SetDirection(x, y, z float32) {
	l.direction = normalize3(x, y, z)
}

func (l *lightImpl) SetColor(r, g, b float32) {
	l.color = [3]float32{r, g, b}
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.intensity = intensity
}

func (l *lightImpl) SetAmbient(r, g, b, intensity float32) {
	l.ambientColor = [3]float32{r, g, b}
	l.ambientIntensity = intensity
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}

func (l *lightImpl) Uniform() *GPULightUniform {
	uniform := &GPULightUniform{
		Direction: l.direction,
		Color:     l.color,
		Intensity: l.intensity,
		Ambient: [3]float32{
			l.ambientColor[0] * l.ambientIntensity,
			l.ambientColor[1] * l.ambientIntensity,
			l.ambientColor[2] * l.ambientIntensity,
		},
	}
	if !l.enabled {
		uniform.Intensity = 0
	}
	return uniform
}

// normalize3 returns the unit vector for (x, y, z), or the zero vector if the
// input has zero length.
func normalize3(x, y, z float32) [3]float32 {
	length := float32(math.Sqrt(float64(x*x + y*y + z*z)))
	if length == 0 {
		return [3]float32{}
	}
	return [3]float32{x / length, y / length, z / length}
}
