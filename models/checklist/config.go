package checklist

type ValidationMode int

const (
	// ValidationLenient lets a checklist with warnings be published.
	ValidationLenient ValidationMode = iota
	// ValidationStrict makes warnings block publication. The validator itself
	// always keeps errors and warnings separate: the mode is enforced by the
	// publication usecase, never inside the validator.
	ValidationStrict
	UnknownValidationMode
)

func (m ValidationMode) String() string {
	switch m {
	case ValidationLenient:
		return "lenient"
	case ValidationStrict:
		return "strict"
	}
	return "unknown"
}

func ValidationModeFrom(s string) ValidationMode {
	switch s {
	case "", "lenient":
		return ValidationLenient
	case "strict":
		return ValidationStrict
	}
	return UnknownValidationMode
}

// Config is an evidence checklist as authored in the builder. The same
// structure, published, is the calculation schema evaluated against submitted
// responses: threshold/comparator metadata lives directly on the items.
type Config struct {
	Items          []Item
	ValidationMode ValidationMode
}
