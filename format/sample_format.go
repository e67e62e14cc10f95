// SPDX-License-Identifier: EPL-2.0

package format

// SampleFormat describes the memory layout of a single linear PCM sample:
// container width, meaningful bit depth, signedness, integer vs. float,
// and byte order.
type SampleFormat int

const (
	Unknown SampleFormat = iota
	S8
	U8
	S16LE
	S16BE
	U16LE
	U16BE
	S24LE
	S24BE
	S32LE
	S32BE
	F32LE
	F32BE
	F64LE
	F64BE
)

type sampleFormatInfo struct {
	name      string
	width     int // container width in bits
	depth     int // meaningful bits
	signed    bool
	isFloat   bool
	bigEndian bool
}

var sampleFormatInfos = [...]sampleFormatInfo{
	Unknown: {name: "unknown"},
	S8:      {name: "s8", width: 8, depth: 8, signed: true},
	U8:      {name: "u8", width: 8, depth: 8},
	S16LE:   {name: "s16le", width: 16, depth: 16, signed: true},
	S16BE:   {name: "s16be", width: 16, depth: 16, signed: true, bigEndian: true},
	U16LE:   {name: "u16le", width: 16, depth: 16},
	U16BE:   {name: "u16be", width: 16, depth: 16, bigEndian: true},
	S24LE:   {name: "s24le", width: 24, depth: 24, signed: true},
	S24BE:   {name: "s24be", width: 24, depth: 24, signed: true, bigEndian: true},
	S32LE:   {name: "s32le", width: 32, depth: 32, signed: true},
	S32BE:   {name: "s32be", width: 32, depth: 32, signed: true, bigEndian: true},
	F32LE:   {name: "f32le", width: 32, depth: 32, signed: true, isFloat: true},
	F32BE:   {name: "f32be", width: 32, depth: 32, signed: true, isFloat: true, bigEndian: true},
	F64LE:   {name: "f64le", width: 64, depth: 64, signed: true, isFloat: true},
	F64BE:   {name: "f64be", width: 64, depth: 64, signed: true, isFloat: true, bigEndian: true},
}

func (f SampleFormat) info() *sampleFormatInfo {
	if f < 0 || int(f) >= len(sampleFormatInfos) {
		return &sampleFormatInfos[Unknown]
	}
	return &sampleFormatInfos[f]
}

// Valid reports whether f is one of the known sample formats.
func (f SampleFormat) Valid() bool {
	return f > Unknown && int(f) < len(sampleFormatInfos)
}

// Width returns the container width of one sample in bits, or 0 for an
// unknown format.
func (f SampleFormat) Width() int { return f.info().width }

// Depth returns the number of meaningful bits in one sample.
func (f SampleFormat) Depth() int { return f.info().depth }

// Bytes returns the container width of one sample in bytes.
func (f SampleFormat) Bytes() int { return (f.info().width + 7) / 8 }

// Signed reports whether samples are signed values.
func (f SampleFormat) Signed() bool { return f.info().signed }

// Float reports whether samples are floating point values.
func (f SampleFormat) Float() bool { return f.info().isFloat }

// BigEndian reports whether samples are stored most significant byte first.
func (f SampleFormat) BigEndian() bool { return f.info().bigEndian }

func (f SampleFormat) String() string { return f.info().name }

// ParseSampleFormat maps a format name such as "s16le" back to its
// SampleFormat. Unrecognized names yield Unknown.
func ParseSampleFormat(name string) SampleFormat {
	for f := SampleFormat(0); f < SampleFormat(len(sampleFormatInfos)); f++ {
		if f != Unknown && sampleFormatInfos[f].name == name {
			return f
		}
	}
	return Unknown
}
