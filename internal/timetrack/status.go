package timetrack

// Status classifies a total against its target.
type Status string

const (
	StatusOvertime Status = "overtime"
	StatusMet      Status = "met"
	StatusUnder    Status = "under"
	StatusWayUnder Status = "way-under"
)

// Classify compares total minutes to target minutes. Thresholds are 115% for
// overtime and 91.7% for under; anything lower is way-under. A zero target is
// always met.
func Classify(total, target int) Status {
	if target <= 0 {
		return StatusMet
	}
	switch {
	case total*100 >= target*115:
		return StatusOvertime
	case total >= target:
		return StatusMet
	case total*1000 >= target*917:
		return StatusUnder
	}
	return StatusWayUnder
}
