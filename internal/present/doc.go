// Package present implements the timed reveal schedule for generated
// content: given an ordered batch of display units and a fixed per-unit
// delay, it schedules each unit's reveal at index*delay from batch start
// and returns a cancelable handle. Scheduling is fire-and-forget; a new
// generation cancels the previous handle so stale reveals become no-ops.
package present
