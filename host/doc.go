// Package host holds the engine-side state the overlay reads every frame:
// wall and running time, the fixed-timestep accumulator and the primary window.
// Each is kept as an ECS singleton and advanced by a system in this package or
// a backend such as ebitenhost.
package host
