// Package gain provides automatic gain control for feeding quiet or hot
// input into level-sensitive analysis.
//
// AutoGain tracks a target RMS level with a one-pole smoother on the gain
// itself. Gain is clamped to [MinGain, MaxGain] so silence is never
// amplified without bound.
package gain
