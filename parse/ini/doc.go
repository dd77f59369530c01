// Package ini reads and writes the whitespace separated parameter files used
// by simulation codes such as Idefix and Pluto:
//
//	[Grid]
//	X1-grid 1 0.0 1024 u 1.0
//
//	[TimeIntegrator]
//	CFL     0.9
//	tstop   1e2
//
// Each line holds a key followed by one or more values. Unquoted values are
// cast to bool, int or float when they parse as one; quoting forces a string.
//
// Loads and Dumps round-trip: Loads(Dumps(d)) is equal to d for every
// Document that can be built. Format aligns keys on a common column and
// leaves value tokens untouched, and reports when its input was already
// formatted.
package ini
