// SPDX-License-Identifier: EPL-2.0

package parse

import (
	"encoding/binary"

	"github.com/ik5/audparse/format"
)

// s16leFrames packs interleaved S16LE sample values, one slice element per
// sample, into the byte stream a producer would push.
func s16leFrames(samples ...int16) []byte {
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(s))
	}
	return data
}

// s16leValues unpacks a byte stream back into sample values.
func s16leValues(data []byte) []int16 {
	samples := make([]int16, len(data)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(data[i*2:]))
	}
	return samples
}

// swappedStereo is the channel layout with left and right exchanged.
func swappedStereo() []format.ChannelPosition {
	return []format.ChannelPosition{format.FrontRight, format.FrontLeft}
}
