package csv_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shapestone/shape-csvstream/pkg/csv"
)

// TestParseReader_Large tests streaming a document with many records.
func TestParseReader_Large(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("id,name,value\n")
	for i := 0; i < 10000; i++ {
		fmt.Fprintf(&sb, "%d,\"name %d\",%d.5\n", i, i, i)
	}

	records, fields := 0, 0
	var last csv.Progress
	cfg := csv.DefaultConfiguration()
	cfg.OnEndRecord = func(csv.Progress) csv.Disposition {
		records++
		return csv.Continue
	}
	cfg.OnReadField = func(string, csv.Progress) csv.Disposition {
		fields++
		return csv.Continue
	}
	cfg.OnEndDocument = func(p csv.Progress, _ error) { last = p }

	if err := csv.ParseReader(strings.NewReader(sb.String()), cfg); err != nil {
		t.Fatalf("ParseReader() = %v", err)
	}
	if records != 10001 {
		t.Errorf("records = %d, want 10001", records)
	}
	if fields != 30003 {
		t.Errorf("fields = %d, want 30003", fields)
	}
	if last.Bytes != sb.Len() {
		t.Errorf("Bytes = %d, want %d", last.Bytes, sb.Len())
	}
	if last.Line != 10002 {
		t.Errorf("Line = %d, want 10002", last.Line)
	}
}

// TestParseReader_CancelEarly tests that cancelling stops reading the input.
func TestParseReader_CancelEarly(t *testing.T) {
	data := strings.Repeat("a,b,c\n", 1000)
	cfg := csv.DefaultConfiguration()
	cfg.OnEndRecord = func(p csv.Progress) csv.Disposition {
		if p.Record == 2 {
			return csv.Cancel
		}
		return csv.Continue
	}
	var end csv.Progress
	cfg.OnEndDocument = func(p csv.Progress, err error) {
		if err != nil {
			t.Errorf("OnEndDocument error = %v, want nil", err)
		}
		end = p
	}

	if err := csv.ParseReader(strings.NewReader(data), cfg); err != nil {
		t.Fatalf("ParseReader() = %v, want nil", err)
	}
	if end.Characters != 17 {
		t.Errorf("stopped after %d characters, want 17", end.Characters)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"simple", "a,b,c", nil},
		{"quoted", "\"a\nb\",c", nil},
		{"unterminated", "a,\"b", csv.ErrMalformedQuotedField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			cfg := csv.DefaultConfiguration()
			cfg.OnReadField = func(string, csv.Progress) csv.Disposition {
				called = true
				return csv.Continue
			}

			err := csv.Validate(tt.input, cfg)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
			if called {
				t.Error("Validate() should not invoke callbacks")
			}

			err = csv.ValidateReader(strings.NewReader(tt.input), cfg)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateReader() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_SanitizeIsStrict(t *testing.T) {
	cfg := csv.DefaultConfiguration()
	if err := csv.Validate("\"a\"b", cfg); err != nil {
		t.Errorf("lenient Validate() = %v, want nil", err)
	}
	cfg.SanitizeFields = true
	if err := csv.Validate("\"a\"b", cfg); !errors.Is(err, csv.ErrUnexpectedCharacterAfterQuotedField) {
		t.Errorf("strict Validate() = %v, want ErrUnexpectedCharacterAfterQuotedField", err)
	}
}

func TestFormat(t *testing.T) {
	if csv.Format() != "CSV" {
		t.Errorf("Format() = %q, want %q", csv.Format(), "CSV")
	}
}
