package tangram

import "fmt"

// SizeError reports an encoding whose length is not Size.
type SizeError struct {
	// Len is the actual symbol count.
	Len int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("tangram size incorrect: %d symbols, want %d", e.Len, Size)
}

// SymbolError reports a symbol outside the color and arrow alphabets.
type SymbolError struct {
	// Index is the zero-based position of the offending symbol.
	Index int
	// Symbol is the offending symbol.
	Symbol byte
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("invalid tangram symbol %q, index %d", string(e.Symbol), e.Index)
}

// ColorCountError reports an encoding with the wrong number of color cells.
type ColorCountError struct {
	Count int
}

func (e *ColorCountError) Error() string {
	return fmt.Sprintf("incorrect color count %d, want %d", e.Count, ColorCount)
}

// ArrowCountError reports an encoding with the wrong number of arrow cells.
type ArrowCountError struct {
	Count int
}

func (e *ArrowCountError) Error() string {
	return fmt.Sprintf("incorrect arrow count %d, want %d", e.Count, ArrowCount)
}

// PairError reports the first position at which two paired encodings
// disagree: a color facing a non-color, or an arrow facing anything other
// than its exact opposite.
type PairError struct {
	// Index is the zero-based position of the first mismatch.
	Index int
	// Source and Target are the symbols at Index in each encoding.
	Source byte
	Target byte
}

func (e *PairError) Error() string {
	if IsArrow(e.Source) && IsArrow(e.Target) {
		return fmt.Sprintf("non-matching arrows, index %d: %s %s",
			e.Index, string(e.Source), string(e.Target))
	}
	return fmt.Sprintf("arrow color mismatch, index %d: %s %s",
		e.Index, string(e.Source), string(e.Target))
}
