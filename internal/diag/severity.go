package diag

// Severity ranks a diagnostic. Ordering matters: bag queries compare
// against these values, so keep them ascending.
type Severity uint8

const (
	// SevInfo marks purely informational output, timings included.
	SevInfo Severity = iota
	// SevWarning marks problems decoration recovered from.
	SevWarning
	// SevError marks problems that made part of the input unusable.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
