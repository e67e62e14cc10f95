// SPDX-License-Identifier: EPL-2.0

package parse

import "github.com/ik5/audparse/format"

// processFrames applies the channel reordering transform to the first
// valid bytes of in and returns the transformed copy. It returns nil when
// the bytes may be used as-is (non-PCM data or an already canonical
// layout), letting the caller skip the copy.
//
// valid must be a multiple of cfg.BPF; the caller guarantees any trailing
// partial frame has been excluded already.
func processFrames(cfg *Config, in []byte, valid int) []byte {
	if cfg.Encoding != format.PCM || !cfg.NeedsReorder {
		return nil
	}

	sampleBytes := cfg.SampleFormat.Bytes()
	bpf := cfg.BPF
	out := make([]byte, valid)

	for off := 0; off+bpf <= valid; off += bpf {
		frameIn := in[off : off+bpf]
		frameOut := out[off : off+bpf]
		for i, j := range cfg.reorderMap {
			copy(frameOut[j*sampleBytes:(j+1)*sampleBytes],
				frameIn[i*sampleBytes:(i+1)*sampleBytes])
		}
	}

	return out
}
