package parser

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Progress is a snapshot of how far a parse has advanced.
// Snapshots are attached to every event and every error.
type Progress struct {
	// Characters is the number of runes consumed.
	Characters int
	// Bytes is the UTF-8 width of the runes consumed.
	Bytes int
	// Line is the current line (1-indexed).
	Line int
	// Column is the current column in runes (1-indexed).
	Column int
	// Record is the index of the current record (0-indexed).
	Record int
	// Field is the index of the current field within its record (0-indexed).
	Field int
}

// String returns a compact description used in error messages.
func (p Progress) String() string {
	return fmt.Sprintf("line %d, column %d (record %d, field %d)", p.Line, p.Column, p.Record, p.Field)
}

// Position converts the snapshot into a Shape AST position.
func (p Progress) Position() ast.Position {
	return ast.NewPosition(p.Bytes, p.Line, p.Column)
}
