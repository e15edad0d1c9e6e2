// SPDX-License-Identifier: MIT

// Package player replays any recorded Run with play, pause, step, seek and
// reset, auto-advancing on a timer while playing.
//
// A Controller works on the algorithm-agnostic step.Sequence view, so one
// controller serves every generator family. It owns exactly one cursor:
//
//	State     Meaning
//	idle      loaded, never started (or reset)
//	paused    loaded, cursor anywhere but the terminal step
//	playing   auto-advancing one step per delay
//	finished  cursor on the terminal step
//
// The cursor is always a valid index into the loaded sequence. Seek clamps
// to [0, Len()-1]. Step and seek are rejected while playing; pause first.
// With no sequence loaded every operation is a no-op.
//
// Timing: while playing exactly one timer is pending. Its delay is
// BaseDelay / speed, speed clamped to [MinSpeed, MaxSpeed]. Each fire
// applies a single advance under the controller lock and only then
// schedules the next. Pause, Reset, Load and Close stop the timer and bump
// a generation counter, so a timer that already fired but has not yet taken
// the lock does nothing. Play after Pause always waits a fresh full delay.
//
// Every Load is tagged with a fresh LoadID (a UUID). Subscribers receive a
// Frame after every change, in lock order, and can drop frames whose LoadID
// is not the one they are rendering.
//
// Time comes from a Clock. RealClock wraps time.AfterFunc; ManualClock lets
// tests move time explicitly.
package player
