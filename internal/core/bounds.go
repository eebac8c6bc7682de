package core

import "github.com/scigolib/idx/internal/utils"

// RequiredSize computes the total buffer length the header declares: the
// header itself plus element count times element width. Every multiplication
// and addition is overflow-checked; any overflow fails with ErrOverflow so a
// wrapped size can never make a too-small buffer look well-formed.
func RequiredSize(h *Header) (uint64, error) {
	width, err := h.Type.Width()
	if err != nil {
		return 0, err
	}

	count, err := h.ElementCount()
	if err != nil {
		return 0, err
	}

	payload, err := utils.SafeMultiply(count, width)
	if err != nil {
		return 0, ErrOverflow
	}

	total, err := utils.SafeAdd(h.Length(), payload)
	if err != nil {
		return 0, ErrOverflow
	}

	return total, nil
}

// ValidateBuffer runs the full structural check on buf: header extraction,
// type resolution, overflow-checked bounds computation and the final exact
// length comparison. It is a pure function of buf and terminates at the
// first failure.
func ValidateBuffer(buf []byte) error {
	h, err := ParseHeader(buf)
	if err != nil {
		return err
	}

	required, err := RequiredSize(h)
	if err != nil {
		return err
	}

	actual := uint64(len(buf))
	switch {
	case actual < required:
		return ErrTruncated
	case actual > required:
		return &OverAllocatedError{Declared: required, Actual: actual}
	}

	return nil
}
