package sequence

// Successor returns the token that follows s in the fallback sequence. The
// trailing character run picks the rule:
//
//   - trailing digits increment as a decimal number inside the run, keeping
//     leading zeros and growing a column on overflow: "1" -> "2",
//     "09" -> "10", "99" -> "100", "tmp9" -> "tmp10"
//   - trailing letters advance as a base-26 odometer, preserving the case of
//     each position and prepending a case-matched column on overflow:
//     "z" -> "aa", "az" -> "ba", "Zz" -> "AAa"
//   - anything else, including the empty token, starts a digit run: "" -> "1",
//     "v2-" -> "v2-1"
func Successor(s string) string {
	if s == "" {
		return "1"
	}
	b := []byte(s)
	switch last := b[len(b)-1]; {
	case isDigit(last):
		return incrementDigits(b)
	case isLetter(last):
		return incrementLetters(b)
	default:
		return s + "1"
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func incrementDigits(b []byte) string {
	start := len(b)
	for start > 0 && isDigit(b[start-1]) {
		start--
	}
	for i := len(b) - 1; i >= start; i-- {
		if b[i] < '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}
	return grow(b, start, '1')
}

func incrementLetters(b []byte) string {
	start := len(b)
	for start > 0 && isLetter(b[start-1]) {
		start--
	}
	for i := len(b) - 1; i >= start; i-- {
		switch b[i] {
		case 'z':
			b[i] = 'a'
		case 'Z':
			b[i] = 'A'
		default:
			b[i]++
			return string(b)
		}
	}
	// Every position wrapped. The wrap kept each position's case, so the run's
	// first character carries the case for the new column.
	pad := byte('a')
	if b[start] >= 'A' && b[start] <= 'Z' {
		pad = 'A'
	}
	return grow(b, start, pad)
}

// grow inserts c at position i, widening the trailing run by one column.
func grow(b []byte, i int, c byte) string {
	out := make([]byte, 0, len(b)+1)
	out = append(out, b[:i]...)
	out = append(out, c)
	out = append(out, b[i:]...)
	return string(out)
}
