package wav

import "errors"

var (
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrNotPCM              = errors.New("not a PCM WAV file")
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")
)
