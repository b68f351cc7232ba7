// Package scoring talks to the external credit scoring service and applies
// the eligibility gate that job applications are checked against.
package scoring

// DeriveStudentID maps an auth identity id onto the numeric student id the
// scoring service keys on. The id's leading run of alphanumeric characters
// is decoded as base 36 with the modulus folded into each step, so the
// result is exact for ids of any length. An id with no leading alphanumeric
// run derives to 0. Every caller must go through this one implementation;
// the mapping has to agree across the whole service.
func DeriveStudentID(authID string) int {
	d := 0
	for _, r := range authID {
		v, ok := digitValue(r)
		if !ok {
			break
		}
		d = (d*36 + v) % 10000
	}
	return d
}

func digitValue(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10, true
	default:
		return 0, false
	}
}
