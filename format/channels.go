// SPDX-License-Identifier: EPL-2.0

package format

import (
	"math/bits"
	"sort"
)

// ChannelPosition names the speaker a channel is meant for. The maskable
// positions are declared in canonical order: a channel list is canonical
// when its positioned entries appear in increasing ChannelPosition order,
// which is also the order of their channel-mask bits.
type ChannelPosition int

const (
	// PositionNone marks a channel that carries no placement information.
	// A layout is either fully unpositioned or fully positioned; mixing is
	// invalid.
	PositionNone ChannelPosition = -2
	// PositionMono is the single channel of a mono layout. It has no mask
	// bit and is only valid alone.
	PositionMono ChannelPosition = -1
)

// Maskable speaker positions. The constant value of each position is its
// channel-mask bit index.
const (
	FrontLeft ChannelPosition = iota
	FrontRight
	FrontCenter
	LFE1
	RearLeft
	RearRight
	FrontLeftOfCenter
	FrontRightOfCenter
	RearCenter
	LFE2
	SideLeft
	SideRight
	TopFrontLeft
	TopFrontRight
	TopFrontCenter
	TopCenter
	TopRearLeft
	TopRearRight
	TopSideLeft
	TopSideRight
	TopRearCenter
	BottomFrontCenter
	BottomFrontLeft
	BottomFrontRight

	numMaskablePositions int = iota
)

// MaxChannels is the largest channel count a layout may describe.
const MaxChannels = 64

var positionNames = [numMaskablePositions]string{
	"front-left", "front-right", "front-center", "lfe1",
	"rear-left", "rear-right", "front-left-of-center", "front-right-of-center",
	"rear-center", "lfe2", "side-left", "side-right",
	"top-front-left", "top-front-right", "top-front-center", "top-center",
	"top-rear-left", "top-rear-right", "top-side-left", "top-side-right",
	"top-rear-center", "bottom-front-center", "bottom-front-left", "bottom-front-right",
}

func (p ChannelPosition) String() string {
	switch {
	case p == PositionNone:
		return "none"
	case p == PositionMono:
		return "mono"
	case p >= 0 && int(p) < numMaskablePositions:
		return positionNames[p]
	default:
		return "invalid"
	}
}

func (p ChannelPosition) maskable() bool {
	return p >= 0 && int(p) < numMaskablePositions
}

func maskOf(positions ...ChannelPosition) uint64 {
	var mask uint64
	for _, p := range positions {
		mask |= uint64(1) << uint(p)
	}
	return mask
}

var fallbackMasks = [...]uint64{
	2: maskOf(FrontLeft, FrontRight),
	3: maskOf(FrontLeft, FrontRight, LFE1),
	4: maskOf(FrontLeft, FrontRight, RearLeft, RearRight),
	5: maskOf(FrontLeft, FrontRight, FrontCenter, RearLeft, RearRight),
	6: maskOf(FrontLeft, FrontRight, FrontCenter, LFE1, RearLeft, RearRight),
	7: maskOf(FrontLeft, FrontRight, FrontCenter, LFE1, RearLeft, RearRight, RearCenter),
	8: maskOf(FrontLeft, FrontRight, FrontCenter, LFE1, RearLeft, RearRight, SideLeft, SideRight),
}

// FallbackMask returns the default channel mask assumed for streams that
// carry a channel count but no layout. Mono (1 channel) and counts above 8
// return 0: mono is expressed as PositionMono and larger layouts as
// unpositioned channels, neither of which has mask bits.
func FallbackMask(channels int) uint64 {
	if channels >= 2 && channels < len(fallbackMasks) {
		return fallbackMasks[channels]
	}
	return 0
}

// PositionsFromMask derives a canonical-order channel layout from mask.
// A zero mask yields PositionMono for a single channel and a fully
// unpositioned layout otherwise. A non-zero mask must have exactly one bit
// per channel.
func PositionsFromMask(channels int, mask uint64) ([]ChannelPosition, error) {
	if channels < 1 || channels > MaxChannels {
		return nil, ErrInvalidChannelCount
	}

	positions := make([]ChannelPosition, channels)

	if mask == 0 {
		if channels == 1 {
			positions[0] = PositionMono
		} else {
			for i := range positions {
				positions[i] = PositionNone
			}
		}
		return positions, nil
	}

	if bits.OnesCount64(mask) != channels {
		return nil, ErrInvalidLayout
	}

	ch := 0
	for bit := 0; bit < numMaskablePositions && ch < channels; bit++ {
		if mask&(uint64(1)<<uint(bit)) != 0 {
			positions[ch] = ChannelPosition(bit)
			ch++
		}
	}
	if ch != channels {
		// Mask bits beyond the known position set.
		return nil, ErrInvalidLayout
	}

	return positions, nil
}

// PositionsToMask converts a channel layout to its channel mask. Mono and
// fully unpositioned layouts map to mask 0. Layouts that mix positioned and
// unpositioned channels, repeat a position, or contain unknown codes cannot
// be expressed as a mask.
func PositionsToMask(positions []ChannelPosition) (uint64, error) {
	if err := CheckPositions(positions); err != nil {
		return 0, err
	}
	if positions[0] == PositionMono || positions[0] == PositionNone {
		return 0, nil
	}

	var mask uint64
	for _, p := range positions {
		mask |= uint64(1) << uint(p)
	}
	return mask, nil
}

// CheckPositions validates a channel layout: the count must be within
// bounds, unpositioned entries must not be mixed with positioned ones,
// PositionMono is only valid as the sole channel, and no positioned entry
// may repeat or be unknown.
func CheckPositions(positions []ChannelPosition) error {
	if len(positions) < 1 || len(positions) > MaxChannels {
		return ErrInvalidChannelCount
	}

	var seen uint64
	none := 0
	for _, p := range positions {
		switch {
		case p == PositionNone:
			none++
		case p == PositionMono:
			if len(positions) != 1 {
				return ErrInvalidLayout
			}
		case p.maskable():
			bit := uint64(1) << uint(p)
			if seen&bit != 0 {
				return ErrInvalidLayout
			}
			seen |= bit
		default:
			return ErrInvalidLayout
		}
	}
	if none > 0 && none != len(positions) {
		return ErrInvalidLayout
	}
	return nil
}

// InCanonicalOrder reports whether positions form a valid layout whose
// positioned entries appear in canonical (mask bit) order. Mono and fully
// unpositioned layouts count as canonical.
func InCanonicalOrder(positions []ChannelPosition) bool {
	if CheckPositions(positions) != nil {
		return false
	}
	if positions[0] == PositionNone || positions[0] == PositionMono {
		return true
	}
	for i := 1; i < len(positions); i++ {
		if positions[i] <= positions[i-1] {
			return false
		}
	}
	return true
}

// CanonicalOrder returns the canonical-order permutation of positions.
// The input is left untouched.
func CanonicalOrder(positions []ChannelPosition) ([]ChannelPosition, error) {
	if err := CheckPositions(positions); err != nil {
		return nil, err
	}

	ordered := make([]ChannelPosition, len(positions))
	copy(ordered, positions)
	if positions[0] == PositionNone || positions[0] == PositionMono {
		return ordered, nil
	}

	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })
	return ordered, nil
}
