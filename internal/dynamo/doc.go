// Package dynamo provides the shared primitives of the gravity simulator.
//
// The package defines the small vocabulary every other package speaks:
//
//   - [Vec2]: 2D vector used for positions, velocities and forces
//   - [Bounds]: the viewport rectangle particles are culled against
//   - [StepStats]: outcome of a single world step
//   - [Observer] and [Metric]: hooks notified after every executed step
//
// # Thread Safety
//
// Values in this package are plain data and safe to copy. Observers are
// invoked from whichever goroutine drives the world's Step, after the world
// has released its lock.
package dynamo
