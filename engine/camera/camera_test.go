package camera

import (
	"math"
	"testing"
)

func approxEq(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}

func TestOrbitControllerPositionFromSphericalCoords(t *testing.T) {
	cc := NewOrbitController(
		WithTarget(0, 1, 0),
		WithRadius(5),
		WithAzimuth(0),
		WithElevation(0),
	)

	// Azimuth 0, elevation 0 puts the camera on the +Z axis at target height.
	x, y, z := cc.Position()
	if !approxEq(x, 0, 1e-5) || !approxEq(y, 1, 1e-5) || !approxEq(z, 5, 1e-5) {
		t.Errorf("expected position (0, 1, 5), got (%f, %f, %f)", x, y, z)
	}
}

func TestOrbitControllerAzimuthQuarterTurn(t *testing.T) {
	cc := NewOrbitController(
		WithRadius(4),
		WithAzimuth(float32(math.Pi/2)),
		WithElevation(0),
	)

	x, y, z := cc.Position()
	if !approxEq(x, 4, 1e-5) || !approxEq(y, 0, 1e-5) || !approxEq(z, 0, 1e-5) {
		t.Errorf("expected position (4, 0, 0), got (%f, %f, %f)", x, y, z)
	}
}

func TestOrbitControllerZoomClampsToBounds(t *testing.T) {
	cc := NewOrbitController(
		WithRadius(5),
		WithRadiusBounds(2, 10),
		WithZoomSpeed(1),
	)

	cc.Zoom(100)
	if cc.Radius() != 2 {
		t.Errorf("expected radius clamped to 2, got %f", cc.Radius())
	}

	cc.Zoom(-100)
	if cc.Radius() != 10 {
		t.Errorf("expected radius clamped to 10, got %f", cc.Radius())
	}
}

func TestOrbitControllerElevationClampsToBounds(t *testing.T) {
	cc := NewOrbitController(WithElevationBounds(-0.5, 0.5))

	cc.SetElevation(2)
	if cc.Elevation() != 0.5 {
		t.Errorf("expected elevation clamped to 0.5, got %f", cc.Elevation())
	}

	for range 100 {
		cc.OrbitDown()
	}
	if cc.Elevation() != -0.5 {
		t.Errorf("expected elevation clamped to -0.5, got %f", cc.Elevation())
	}
}

func TestOrbitControllerDragAdjustsAngles(t *testing.T) {
	cc := NewOrbitController(
		WithAzimuth(0),
		WithElevation(0),
		WithMouseSensitivity(0.01),
	)

	cc.Drag(10, -20)
	if !approxEq(cc.Azimuth(), 0.1, 1e-5) {
		t.Errorf("expected azimuth 0.1, got %f", cc.Azimuth())
	}
	if !approxEq(cc.Elevation(), 0.2, 1e-5) {
		t.Errorf("expected elevation 0.2, got %f", cc.Elevation())
	}
}

func TestCameraUniformContainsControllerPosition(t *testing.T) {
	cc := NewOrbitController(
		WithTarget(0, 0, 0),
		WithRadius(3),
		WithAzimuth(0),
		WithElevation(0),
	)
	c := NewCamera(WithController(cc))

	uniform := c.Uniform()
	if !approxEq(uniform.CameraPosition[0], 0, 1e-5) ||
		!approxEq(uniform.CameraPosition[1], 0, 1e-5) ||
		!approxEq(uniform.CameraPosition[2], 3, 1e-5) {
		t.Errorf("expected camera position (0, 0, 3), got %v", uniform.CameraPosition)
	}
}

func TestCameraUpdateRecomputesMatricesFromController(t *testing.T) {
	cc := NewOrbitController(WithRadius(5), WithAzimuth(0), WithElevation(0))
	c := NewCamera(WithController(cc))

	before := c.ViewProjectionMatrix()
	cc.SetAzimuth(float32(math.Pi / 2))
	c.Update()
	after := c.ViewProjectionMatrix()

	if before == after {
		t.Error("expected view-projection matrix to change after orbiting")
	}
}

func TestGPUCameraUniformMarshalSize(t *testing.T) {
	uniform := &GPUCameraUniform{}
	if uniform.Size() != 80 {
		t.Errorf("expected 80-byte camera uniform, got %d", uniform.Size())
	}
	if len(uniform.Marshal()) != 80 {
		t.Errorf("expected 80-byte marshal buffer, got %d", len(uniform.Marshal()))
	}
}
