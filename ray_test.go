package rigid

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRay_Transformed(t *testing.T) {
	tests := []struct {
		name          string
		ray           Ray
		transform     Transform
		wantOrigin    mgl64.Vec3
		wantDirection mgl64.Vec3
	}{
		{
			name:          "identity leaves the ray unchanged",
			ray:           Ray{Origin: mgl64.Vec3{1, 2, 3}, Direction: mgl64.Vec3{0, 0, -1}},
			transform:     Identity(),
			wantOrigin:    mgl64.Vec3{1, 2, 3},
			wantDirection: mgl64.Vec3{0, 0, -1},
		},
		{
			name:          "translation shifts the origin only",
			ray:           Ray{Origin: mgl64.Vec3{0, 0, 0}, Direction: mgl64.Vec3{0, 0, -1}},
			transform:     New(mgl64.Vec3{5, 1, -2}, mgl64.QuatIdent()),
			wantOrigin:    mgl64.Vec3{5, 1, -2},
			wantDirection: mgl64.Vec3{0, 0, -1},
		},
		{
			name:          "rotation turns origin and direction",
			ray:           Ray{Origin: mgl64.Vec3{1, 0, 0}, Direction: mgl64.Vec3{1, 0, 0}},
			transform:     New(mgl64.Vec3{0, 0, 0}, mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})),
			wantOrigin:    mgl64.Vec3{0, 1, 0},
			wantDirection: mgl64.Vec3{0, 1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.ray.Transformed(tt.transform)

			if !vec3AlmostEqual(got.Origin, tt.wantOrigin, 1e-10) {
				t.Errorf("Origin = %v, want %v", got.Origin, tt.wantOrigin)
			}
			if !vec3AlmostEqual(got.Direction, tt.wantDirection, 1e-10) {
				t.Errorf("Direction = %v, want %v", got.Direction, tt.wantDirection)
			}
		})
	}
}

func TestRay_Transformed_PreservesDirectionLength(t *testing.T) {
	ray := Ray{Origin: mgl64.Vec3{1, -2, 0.5}, Direction: mgl64.Vec3{3, 4, 0}}
	transform := New(mgl64.Vec3{-7, 2, 9}, mgl64.QuatRotate(1.3, mgl64.Vec3{1, 1, -2}.Normalize()))

	got := ray.Transformed(transform)

	if !almostEqual(got.Direction.Len(), ray.Direction.Len(), 1e-10) {
		t.Errorf("Direction.Len() = %v, want %v", got.Direction.Len(), ray.Direction.Len())
	}
}
