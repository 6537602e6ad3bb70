package light

import (
	"math"
	"testing"
)

func TestNewLightDefaults(t *testing.T) {
	l := NewLight()

	if !l.Enabled() {
		t.Error("expected the default light to be enabled")
	}
	if l.Intensity() != 1 {
		t.Errorf("expected default intensity 1, got %f", l.Intensity())
	}
	if l.AmbientIntensity() <= 0 {
		t.Errorf("expected a positive ambient fill, got %f", l.AmbientIntensity())
	}
}

func TestSetDirectionNormalizes(t *testing.T) {
	l := NewLight()
	l.SetDirection(0, -2, 0)

	dir := l.Direction()
	if dir != [3]float32{0, -1, 0} {
		t.Errorf("expected normalized direction (0, -1, 0), got %v", dir)
	}
}

func TestDefaultDirectionIsUnitLength(t *testing.T) {
	l := NewLight()
	dir := l.Direction()
	length := math.Sqrt(float64(dir[0]*dir[0] + dir[1]*dir[1] + dir[2]*dir[2]))
	if math.Abs(length-1) > 1e-6 {
		t.Errorf("expected unit-length default direction, got length %f", length)
	}
}

func TestUniformPremultipliesAmbient(t *testing.T) {
	l := NewLight(WithAmbient(1, 0.5, 0.25, 0.4))

	uniform := l.Uniform()
	want := [3]float32{0.4, 0.2, 0.1}
	for i := range want {
		if math.Abs(float64(uniform.Ambient[i]-want[i])) > 1e-6 {
			t.Errorf("ambient[%d]: expected %f, got %f", i, want[i], uniform.Ambient[i])
		}
	}
}

func TestUniformZeroesIntensityWhenDisabled(t *testing.T) {
	l := NewLight(WithIntensity(2))
	l.SetEnabled(false)

	if got := l.Uniform().Intensity; got != 0 {
		t.Errorf("expected zero intensity for a disabled light, got %f", got)
	}
}

func TestGPULightUniformMarshalSize(t *testing.T) {
	uniform := &GPULightUniform{}
	if uniform.Size() != 48 {
		t.Errorf("expected 48-byte light uniform, got %d", uniform.Size())
	}
	if len(uniform.Marshal()) != 48 {
		t.Errorf("expected 48-byte marshal buffer, got %d", len(uniform.Marshal()))
	}
}
