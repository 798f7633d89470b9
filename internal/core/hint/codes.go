// Package hint assigns short letter codes to visible elements and narrows
// them as the user types, resolving to a single target.
package hint

// alphabet for hint codes
const alphabet = "abcdefghijklmnopqrstuvwxyz"

// half splits the alphabet: the lower half yields single-letter codes and the
// upper half yields the first letter of two-letter codes, so no single-letter
// code is ever a prefix of a two-letter one.
const half = len(alphabet) / 2

// MaxCodes is the number of distinct codes CodeFor can produce
const MaxCodes = half + half*len(alphabet)

// CodeFor returns the hint code for the given ordinal index.
// Indices outside [0, MaxCodes) return an empty string.
func CodeFor(index int) string {
	if index < 0 || index >= MaxCodes {
		return ""
	}

	if index < half {
		return alphabet[index : index+1]
	}

	// na nb nc ... for the first two-letter block
	index -= half
	return string([]byte{
		alphabet[half+index/len(alphabet)],
		alphabet[index%len(alphabet)],
	})
}

// Codes returns the first count hint codes in assignment order
func Codes(count int) []string {
	if count <= 0 {
		return []string{}
	}
	if count > MaxCodes {
		count = MaxCodes
	}

	codes := make([]string, count)
	for i := range codes {
		codes[i] = CodeFor(i)
	}
	return codes
}

// IsHintChar reports whether r can appear in a hint code
func IsHintChar(r rune) bool {
	return r >= 'a' && r <= 'z'
}
