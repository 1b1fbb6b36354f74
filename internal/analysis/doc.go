// Package analysis summarises recorded joystick sessions.
//
//   - [Summarize]: sample count, peak and mean deflection, time at rest
//   - [Spectrum]: power spectrum of one axis, resampled to a uniform rate
//   - [PathToASCII]: the coordinate path drawn in the axis plane
//
// # Jitter
//
// A hand holding the stick still produces small oscillations; the dominant
// non-zero frequency of the spectrum is a rough tremor estimate:
//
//	freq, power := analysis.DominantFrequency(samples, analysis.AxisX, 60)
package analysis
