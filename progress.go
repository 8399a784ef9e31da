package sealfile

// ProgressReporter receives best-effort progress updates from Encrypt and
// Decrypt. Percentages are monotonically non-decreasing integers that reach
// 100 on successful completion. Reporting never affects correctness; a nil
// reporter disables it.
type ProgressReporter interface {
	Report(percent int)
}

// ProgressFunc adapts a plain function to the ProgressReporter interface.
type ProgressFunc func(percent int)

// Report calls f(percent).
func (f ProgressFunc) Report(percent int) {
	f(percent)
}

// Milestones reported during a single encrypt or decrypt call. Key
// derivation dominates the cost at the fixed iteration count, so it owns
// most of the range.
const (
	progressStart       = 0
	progressKeyDerived  = 60
	progressTransformed = 90
	progressDone        = 100
)

func report(r ProgressReporter, percent int) {
	if r != nil {
		r.Report(percent)
	}
}
