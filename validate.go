package symdel

// validateASCII checks that every byte of every string in ss is a 7-bit
// ASCII byte (<= 0x7F). It returns the first violation found, identifying
// the offending string's index and the offending byte's position within
// that string, per spec.md's input-validation contract.
func validateASCII(ss []string) error {
	for i, s := range ss {
		for j := 0; j < len(s); j++ {
			if s[j] > 0x7F {
				return &EncodingError{StringIndex: i, BytePos: j, Byte: s[j]}
			}
		}
	}
	return nil
}

// validateK checks that a requested bound is non-negative.
func validateK(k int) error {
	if k < 0 {
		return &ConfigurationError{KCall: k, Msg: "k must be non-negative"}
	}
	return nil
}

// validateKCall checks that a per-call bound does not exceed a cached
// handle's maximum bound.
func validateKCall(kCall, kMax int) error {
	if err := validateK(kCall); err != nil {
		return err
	}
	if kCall > kMax {
		return &ConfigurationError{KCall: kCall, KMax: kMax}
	}
	return nil
}
