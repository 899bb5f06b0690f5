package parser

// dispositionKind tags a Disposition.
type dispositionKind int

const (
	dispositionContinue dispositionKind = iota
	dispositionCancel
	dispositionError
)

// Disposition is returned by every callback to steer the parser.
// The zero value means continue.
type Disposition struct {
	kind dispositionKind
	err  error
}

var (
	// Continue lets the parser proceed to the next event.
	Continue = Disposition{kind: dispositionContinue}
	// Cancel stops the parse without reporting an error.
	Cancel = Disposition{kind: dispositionCancel}
)

// Fail stops the parse and reports err. A nil err is treated as Cancel.
func Fail(err error) Disposition {
	if err == nil {
		return Cancel
	}
	return Disposition{kind: dispositionError, err: err}
}

// IsContinue reports whether the parser should keep going.
func (d Disposition) IsContinue() bool {
	return d.kind == dispositionContinue
}

// IsCancel reports whether the parse was stopped without an error.
func (d Disposition) IsCancel() bool {
	return d.kind == dispositionCancel
}

// Err returns the error carried by a failing disposition, or nil.
func (d Disposition) Err() error {
	if d.kind != dispositionError {
		return nil
	}
	return d.err
}

// String returns "continue", "cancel" or "error: <message>".
func (d Disposition) String() string {
	switch d.kind {
	case dispositionCancel:
		return "cancel"
	case dispositionError:
		return "error: " + d.err.Error()
	default:
		return "continue"
	}
}
