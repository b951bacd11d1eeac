package main

import (
	"fmt"
	"math"

	"github.com/akmonengine/rigid"
	"github.com/go-gl/mathgl/mgl64"
)

// SetupSpaces creates a floor-level reference space and a tracked viewer pose
func SetupSpaces() (rigid.Space, rigid.Transform) {
	// Floor space sits 1.5m below the tracking origin
	floor := rigid.NewSpace(rigid.New(mgl64.Vec3{0, -1.5, 0}, mgl64.QuatIdent()))

	// Headset reported at 1.7m, turned 90° to the left
	viewer := rigid.New(
		mgl64.Vec3{0, 1.7, 0},
		mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0}),
	)

	return floor, viewer
}

func main() {
	floor, viewer := SetupSpaces()

	pose := floor.PoseIn(viewer)
	fmt.Printf("viewer position in floor space: %v\n", pose.Position())
	fmt.Printf("viewer orientation in floor space: %v\n", pose.Orientation())

	// The inverse of the pose maps floor-space points into viewer space,
	// which is exactly a view matrix.
	view := pose.Inverse().Matrix()
	fmt.Printf("view matrix:\n")
	for row := 0; row < 4; row++ {
		fmt.Printf("  % .3f % .3f % .3f % .3f\n",
			view.At(row, 0), view.At(row, 1), view.At(row, 2), view.At(row, 3))
	}

	// A controller ray in local space, carried into floor space
	ray := rigid.Ray{Origin: mgl64.Vec3{0, 0, 0}, Direction: mgl64.Vec3{0, 0, -1}}
	controller := rigid.New(
		mgl64.Vec3{0.3, 1.2, -0.1},
		mgl64.QuatRotate(-math.Pi/6, mgl64.Vec3{1, 0, 0}),
	)
	pointed := ray.Transformed(floor.PoseIn(controller))
	fmt.Printf("controller ray: origin=%v direction=%v\n", pointed.Origin, pointed.Direction)

	// Bulk-transform the play-area polygon into floor space
	playArea := []mgl64.Vec3{{-2, 0, -2}, {2, 0, -2}, {2, 0, 2}, {-2, 0, 2}}
	floor.Origin().Inverse().TransformPoints(2, playArea)
	fmt.Printf("play area corners in floor space: %v\n", playArea)

	bounds := rigid.Bounds{Min: mgl64.Vec3{-2, 0, -2}, Max: mgl64.Vec3{2, 2.5, 2}}
	fmt.Printf("viewer inside the tracked bounds: %v\n", bounds.ContainsPoint(pose.Position()))
}
