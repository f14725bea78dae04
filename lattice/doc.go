// Package lattice implements the incremental motion-primitive graph search
// core of a kinodynamic motion planner: a persistent explicit graph over
// discretized vehicle states, weighted A* relaxation, and the Lifelong
// Planning A* (LPA*) incremental variant that lets edge-cost changes be
// applied to the stored graph without wholesale re-expansion.
//
// The package owns none of the dynamics, collision checking, or heuristic
// arithmetic; those are supplied by an Environment implementation. lattice
// only builds and searches the lattice of Waypoints those primitives reach.
package lattice
