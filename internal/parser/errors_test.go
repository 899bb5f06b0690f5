package parser

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindIllegalDelimiter, "illegalDelimiter"},
		{KindIllegalRecordTerminator, "illegalRecordTerminator"},
		{KindMalformedQuotedField, "malformedQuotedField"},
		{KindUnexpectedCharacterAfterQuotedField, "unexpectedCharacterAfterQuotedField"},
		{KindCallback, "callbackError"},
		{Kind(99), "Kind(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError(t *testing.T) {
	t.Run("illegal delimiter", func(t *testing.T) {
		err := newError(KindIllegalDelimiter, Progress{})
		err.Delimiter = ';'

		want := `csv: illegal delimiter ';'`
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})

	t.Run("positioned", func(t *testing.T) {
		err := newError(KindMalformedQuotedField, Progress{Line: 3, Column: 7, Record: 2, Field: 1})

		want := "csv: parse error on line 3, column 7 (record 2, field 1): unterminated quoted field"
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
		if !errors.Is(err, ErrMalformedQuotedField) {
			t.Error("Unwrap() should return the sentinel")
		}
	})

	t.Run("callback", func(t *testing.T) {
		underlying := errors.New("test error")
		err := callbackError(underlying, Progress{Line: 1, Column: 1})

		if !errors.Is(err, underlying) {
			t.Error("callback error should wrap the underlying error")
		}
		var perr *Error
		if !errors.As(err, &perr) || perr.Kind != KindCallback {
			t.Errorf("callbackError() = %#v, want KindCallback", err)
		}

		same := newError(KindMalformedQuotedField, Progress{})
		if got := callbackError(same, Progress{Line: 9}); got != same {
			t.Error("an *Error should pass through unchanged")
		}
	})
}

func TestDisposition(t *testing.T) {
	boom := errors.New("boom")

	if !Continue.IsContinue() || Continue.IsCancel() || Continue.Err() != nil {
		t.Error("Continue misreports its kind")
	}
	if (Disposition{}) != Continue {
		t.Error("zero Disposition should equal Continue")
	}
	if !Cancel.IsCancel() || Cancel.IsContinue() || Cancel.Err() != nil {
		t.Error("Cancel misreports its kind")
	}

	d := Fail(boom)
	if d.IsContinue() || d.IsCancel() || d.Err() != boom {
		t.Error("Fail misreports its kind")
	}
	if d != Fail(boom) {
		t.Error("dispositions with the same error should be equal")
	}
	if Fail(nil) != Cancel {
		t.Error("Fail(nil) should cancel")
	}

	for d, want := range map[Disposition]string{
		Continue:   "continue",
		Cancel:     "cancel",
		Fail(boom): "error: boom",
	} {
		if got := d.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestProgress_Position(t *testing.T) {
	p := Progress{Characters: 4, Bytes: 6, Line: 2, Column: 3}
	pos := p.Position()

	if want := ast.NewPosition(6, 2, 3); !reflect.DeepEqual(pos, want) {
		t.Errorf("Position() = %v, want %v", pos, want)
	}
	if p.String() != "line 2, column 3 (record 0, field 0)" {
		t.Errorf("String() = %q", p.String())
	}
}
