// Package viz provides the interactive terminal front end for a gravity
// world.
//
// The view is drawn on a Braille [Canvas] (2x4 dots per cell) with a
// side panel built with lipgloss. A bubbletea [Model] steps the world
// every frame.
//
// # Input
//
//	Left click   - spawn a particle at the pointer
//	Right click  - spawn a gravity source at the pointer
//	Space        - pause/resume
//	S            - single step while paused
//	C            - clear the world
//	F / R        - toggle field arrows / particle repulsion
//	P            - flip the last source between attractive and repulsive
//	Tab, Up/Down - select and adjust a parameter
//	+ / -        - particle size for new spawns
//	T            - cycle themes
//	?            - help overlay
package viz
