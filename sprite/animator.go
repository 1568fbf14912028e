package sprite

import "fmt"

// CycleMode is the policy applied when an animator reaches its last frame.
type CycleMode int

const (
	// Loop wraps back to frame 0 and keeps playing.
	Loop CycleMode = iota
	// OneShot clamps on the last frame and reports completion exactly once.
	OneShot
	// HoldLast clamps on the last frame without ever reporting completion.
	HoldLast
)

func (m CycleMode) String() string {
	switch m {
	case Loop:
		return "loop"
	case OneShot:
		return "one-shot"
	case HoldLast:
		return "hold-last"
	default:
		return fmt.Sprintf("cycle-mode(%d)", int(m))
	}
}

// Animator tracks per-entity animation state over a fixed frame count.
// Each instance is owned by exactly one entity and advanced once per tick.
type Animator struct {
	frameCount    int
	ticksPerFrame int
	mode          CycleMode

	frame        int
	elapsed      int
	finished     bool
	justFinished bool
}

// NewAnimator creates an animator over frameCount frames that steps one
// frame every ticksPerFrame ticks. Non-positive arguments degrade to 1.
func NewAnimator(frameCount, ticksPerFrame int, mode CycleMode) *Animator {
	if frameCount < 1 {
		frameCount = 1
	}
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}
	return &Animator{
		frameCount:    frameCount,
		ticksPerFrame: ticksPerFrame,
		mode:          mode,
	}
}

// Advance moves the animation forward by deltaTicks. Leftover ticks smaller
// than a frame step accumulate for the next call, so no time is dropped.
// A zero delta never changes the current frame; a negative delta is a
// programming error.
func (a *Animator) Advance(deltaTicks int) error {
	if deltaTicks < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTick, deltaTicks)
	}
	a.justFinished = false
	if deltaTicks == 0 {
		return nil
	}

	a.elapsed += deltaTicks
	steps := a.elapsed / a.ticksPerFrame
	a.elapsed %= a.ticksPerFrame
	if steps == 0 {
		return nil
	}

	switch a.mode {
	case Loop:
		a.frame = (a.frame + steps) % a.frameCount
	case OneShot, HoldLast:
		a.frame += steps
		if a.frame >= a.frameCount-1 {
			a.frame = a.frameCount - 1
			if a.mode == OneShot && !a.finished {
				a.finished = true
				a.justFinished = true
			}
		}
	}
	return nil
}

// Frame returns the current frame index in [0, frameCount).
func (a *Animator) Frame() int {
	return a.frame
}

// SetFrame jumps to a frame, clamped into range. Completion state is
// untouched; use Reset to replay a one-shot.
func (a *Animator) SetFrame(i int) {
	if i < 0 {
		i = 0
	}
	if i >= a.frameCount {
		i = a.frameCount - 1
	}
	a.frame = i
	a.elapsed = 0
}

// FrameCount returns the configured frame count.
func (a *Animator) FrameCount() int {
	return a.frameCount
}

// Mode returns the cycle policy.
func (a *Animator) Mode() CycleMode {
	return a.mode
}

// Finished reports whether a one-shot animation has reached its last frame.
func (a *Animator) Finished() bool {
	return a.finished
}

// JustFinished reports completion only on the Advance call that reached the
// last frame of a one-shot, and never again afterwards.
func (a *Animator) JustFinished() bool {
	return a.justFinished
}

// Reset rewinds to frame 0 and clears completion state.
func (a *Animator) Reset() {
	a.frame = 0
	a.elapsed = 0
	a.finished = false
	a.justFinished = false
}
