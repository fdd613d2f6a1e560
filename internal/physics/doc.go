// Package physics provides the particle and source models and the force
// laws that act between them.
//
//   - [Source]: fixed square pulling particles toward its center
//   - [Particle]: moving point mass with a bounded [Trail]
//   - [GravityPull]: inverse-linear attraction with a distance floor
//   - [RepulsionPush]: soft, cut-off repulsion between particles
//
// The force functions are pure and shared by the world integrator and the
// field sampler, so both always agree on the same law.
package physics
