package domain

// ConstantTimeEqual reports whether a and b are equal without leaking the
// position of the first differing byte through timing. Inputs of different
// lengths return false immediately; only content comparison is protected.
// Every secret comparison in this package (IDs, tokens, passwords) goes
// through here instead of ==.
func ConstantTimeEqual(a, b string) bool {
	ab := []byte(a)
	bb := []byte(b)
	if len(ab) != len(bb) {
		return false
	}

	var acc byte
	for i := range ab {
		acc |= ab[i] ^ bb[i]
	}
	return acc == 0
}
