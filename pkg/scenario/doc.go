// Package scenario describes, parses and runs drag regression scenarios.
//
// A scenario is a committed arrangement, the three indices of one drag
// update, and the expected arrangement and drop index. Scenarios come in
// two formats.
//
// # Visual format
//
// Each row of the grid is written on its own line, so the file reads like
// the screen:
//
//	### regular down onto leading compact
//	| R0^ |
//	| C1- | C2 |
//	=====
//	| C1 | C2 |
//	| R0- |
//	-----
//
// In the input block ^ marks the lifted item and - the proposed drop
// target. In the expected block - marks the adjusted drop index; without
// it the proposed index is expected. The current index defaults to the
// lifted index and can be overridden with an @current=N line before the
// input rows. A !skip line, optionally followed by a reason, marks the
// scenario as pending. Lines starting with // are comments.
//
// # TOML format
//
//	[[scenario]]
//	name = "regular down onto leading compact"
//	input = "R0 C1 C2"
//	dragging = 0
//	current = 0
//	proposed = 1
//	want = "C1 C2 R0"
//	want_drop = 2
//
// A skip key holding a reason marks the scenario as pending.
//
// # Running
//
// [Run] resolves a single scenario and [RunAll] a suite. [Builtin] returns
// the bundled regression suite.
package scenario
