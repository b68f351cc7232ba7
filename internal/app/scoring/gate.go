package scoring

// IsEligible reports whether a credit score meets a posting's requirement.
// The boundary is inclusive: a score equal to the requirement qualifies.
func IsEligible(score, required int) bool {
	return score >= required
}

// CanApply reports whether an application may proceed: the score must meet
// the requirement and the user must not have applied already.
func CanApply(score, required int, alreadyApplied bool) bool {
	return IsEligible(score, required) && !alreadyApplied
}
