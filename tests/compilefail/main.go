//go:build compilefail

// This program must NOT compile. It is built by the mage TestCompileFail
// target, which treats a successful build as a failure: every statement
// below mixes frames or units in a way the type checker has to reject.
package main

import (
	"fmt"

	"github.com/mesh-intelligence/framekit/pkg/spatial"
)

func main() {
	// A transform declared Body->World cannot accept a Sensor point.
	sensorPoint := spatial.NewPoint[spatial.Sensor](1, 0, -2)
	bodyToWorld := spatial.Identity[spatial.Body, spatial.World]()
	fmt.Println(bodyToWorld.Apply(sensorPoint))

	// The output of a transform is in the destination frame and cannot be
	// fed back as a source-frame point.
	bodyPoint := spatial.NewPoint[spatial.Body](0, 0, 0)
	worldPoint := bodyToWorld.Apply(bodyPoint)
	fmt.Println(bodyToWorld.Apply(worldPoint))

	// Quantities of different units cannot be added.
	distance := spatial.NewQuantity[spatial.Meters](10)
	angle := spatial.NewQuantity[spatial.Radians](0.5)
	fmt.Println(distance.Add(angle))

	// A vector is not a point, even within one frame.
	bodyVector := spatial.NewVector[spatial.Body](1, 0, 0)
	fmt.Println(bodyToWorld.Apply(bodyVector))
}
