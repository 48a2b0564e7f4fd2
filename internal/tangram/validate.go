package tangram

// Validate checks a single encoding's shape: exact length, known symbols,
// and the 4-color/2-arrow cell split. It is pure and returns the first
// violation as a typed error.
func Validate(e Encoding) error {
	if len(e) != Size {
		return &SizeError{Len: len(e)}
	}

	var colors, arrows int

	for i := 0; i < len(e); i++ {
		switch c := e[i]; {
		case IsColor(c):
			colors++
		case IsArrow(c):
			arrows++
		default:
			return &SymbolError{Index: i, Symbol: c}
		}
	}

	if colors != ColorCount {
		return &ColorCountError{Count: colors}
	}

	if arrows != ArrowCount {
		return &ArrowCountError{Count: arrows}
	}

	return nil
}

// ValidatePair checks two encodings position by position: wherever src
// holds a color, dst must hold a color (any color); wherever src holds an
// arrow, dst must hold that arrow's exact opposite. It stops at the first
// mismatch and assumes both encodings already passed Validate.
func ValidatePair(src, dst Encoding) error {
	for i := 0; i < len(src) && i < len(dst); i++ {
		s, d := src[i], dst[i]

		if IsColor(s) {
			if !IsColor(d) {
				return &PairError{Index: i, Source: s, Target: d}
			}

			continue
		}

		if opp, _ := Opposite(s); d != opp {
			return &PairError{Index: i, Source: s, Target: d}
		}
	}

	return nil
}
