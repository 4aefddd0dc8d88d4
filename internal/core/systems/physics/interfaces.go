package physics

// Lightweight 2D physics for the world driver: circle colliders and a contact
// tracker that reports when pairs of bodies start and stop overlapping.

// Vector2 represents a 2D vector.
type Vector2 interface {
	X() float64
	Y() float64
}

// Transform provides a 2D position.
type Transform interface {
	Position2() (x, y float64)
}
