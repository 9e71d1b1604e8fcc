package reader

type implReader struct {
	normalize bool
}

// New creates a Reader. With normalize set, text is converted to Unicode NFC
// before it is split so differently composed chunks still overlap.
func New(normalize bool) Reader {
	return &implReader{normalize: normalize}
}
