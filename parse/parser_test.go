// SPDX-License-Identifier: EPL-2.0

package parse

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/ik5/audparse/format"
	"github.com/ik5/audparse/internal/audiotest"
)

func TestParser_Defaults(t *testing.T) {
	t.Parallel()

	p := NewParser()

	if got := p.ActiveConfig(); got != ConfigExplicit {
		t.Errorf("ActiveConfig() = %v, want explicit", got)
	}
	if !p.IsReady(ConfigExplicit) {
		t.Error("IsReady(explicit) = false from start")
	}
	if p.IsReady(ConfigNegotiated) {
		t.Error("IsReady(negotiated) = true before any capability")
	}

	// Default S16LE stereo geometry.
	if got := p.FrameSize(ConfigExplicit); got != 4 {
		t.Errorf("FrameSize(explicit) = %d, want 4", got)
	}
	if got := p.Alignment(ConfigExplicit); got != 2 {
		t.Errorf("Alignment(explicit) = %d, want 2", got)
	}
	if got := p.SampleRate(); got != DefaultSampleRate {
		t.Errorf("SampleRate() = %d, want %d", got, DefaultSampleRate)
	}
}

func TestParser_ExplicitScenario(t *testing.T) {
	t.Parallel()

	// S16LE stereo at 48 kHz straight from the setter surface.
	p := NewParser()
	if err := p.SetSampleRate(48000); err != nil {
		t.Fatalf("SetSampleRate() error = %v", err)
	}

	if got := p.FrameSize(ConfigExplicit); got != 4 {
		t.Errorf("FrameSize() = %d, want 4", got)
	}
	if got := p.ActiveConfig(); got != ConfigExplicit {
		t.Errorf("ActiveConfig() = %v, want explicit", got)
	}
	if !p.IsReady(ConfigExplicit) {
		t.Error("IsReady(explicit) = false")
	}

	capability, err := p.OutputCapability()
	if err != nil {
		t.Fatalf("OutputCapability() error = %v", err)
	}
	if capability.MediaType != format.MediaRaw || capability.Rate != 48000 {
		t.Errorf("OutputCapability() = %+v, want audio/x-raw at 48000", capability)
	}
}

func TestParser_PushKeepsPartialFrame(t *testing.T) {
	t.Parallel()

	// With S16LE stereo, 411 bytes hold 102 frames (408 bytes) and leave
	// 3 bytes for the next push.
	p := NewParser()
	src := audiotest.NewRampSource(44100, 2, 256)
	data := src.Bytes()

	frame, ok, err := p.Push(data[:411])
	if err != nil {
		t.Fatalf("Push() error = %v", err)
	}
	if !ok {
		t.Fatal("Push() ok = false, want a frame")
	}
	if frame.NumFrames != 102 {
		t.Errorf("NumFrames = %d, want 102", frame.NumFrames)
	}
	if len(frame.Data) != 408 {
		t.Errorf("len(Data) = %d, want 408", len(frame.Data))
	}
	if p.Pending() != 3 {
		t.Errorf("Pending() = %d, want 3", p.Pending())
	}

	// The remainder is prepended to the next chunk.
	frame2, ok, err := p.Push(data[411:420])
	if err != nil {
		t.Fatalf("second Push() error = %v", err)
	}
	if !ok {
		t.Fatal("second Push() ok = false")
	}
	if frame2.Offset != 102 {
		t.Errorf("Offset = %d, want 102", frame2.Offset)
	}
	if frame2.NumFrames != 3 {
		t.Errorf("NumFrames = %d, want 3", frame2.NumFrames)
	}
	if !bytes.Equal(frame2.Data, data[408:420]) {
		t.Error("second frame does not continue the stream byte-exactly")
	}
}

func TestParser_PushTooLittleData(t *testing.T) {
	t.Parallel()

	p := NewParser()

	// Three bytes cannot hold one S16LE stereo frame.
	_, ok, err := p.Push([]byte{1, 2, 3})
	if err != nil {
		t.Fatalf("Push() error = %v", err)
	}
	if ok {
		t.Error("Push() ok = true with less than one frame buffered")
	}
	if p.Pending() != 3 {
		t.Errorf("Pending() = %d, want 3", p.Pending())
	}

	// One more byte completes the frame.
	frame, ok, err := p.Push([]byte{4})
	if err != nil {
		t.Fatalf("Push() error = %v", err)
	}
	if !ok || frame.NumFrames != 1 {
		t.Fatalf("Push() = %+v, %v, want one frame", frame, ok)
	}
	if !bytes.Equal(frame.Data, []byte{1, 2, 3, 4}) {
		t.Errorf("Data = %v, want [1 2 3 4]", frame.Data)
	}
}

func TestParser_PushTimestamps(t *testing.T) {
	t.Parallel()

	p := NewParser()
	if err := p.SetSampleRate(8000); err != nil {
		t.Fatalf("SetSampleRate() error = %v", err)
	}

	// 16 frames at 8 kHz = 2 ms.
	frame, ok, err := p.Push(make([]byte, 16*4))
	if err != nil || !ok {
		t.Fatalf("Push() = %v, %v", ok, err)
	}
	if frame.Timestamp != 0 {
		t.Errorf("Timestamp = %v, want 0", frame.Timestamp)
	}
	if frame.Duration != 2*time.Millisecond {
		t.Errorf("Duration = %v, want 2ms", frame.Duration)
	}

	frame, ok, err = p.Push(make([]byte, 8*4))
	if err != nil || !ok {
		t.Fatalf("second Push() = %v, %v", ok, err)
	}
	if frame.Timestamp != 2*time.Millisecond {
		t.Errorf("second Timestamp = %v, want 2ms", frame.Timestamp)
	}
	if frame.Offset != 16 {
		t.Errorf("second Offset = %d, want 16", frame.Offset)
	}
}

func TestParser_PushWithReordering(t *testing.T) {
	t.Parallel()

	p := NewParser()
	if err := p.SetChannelPositions(swappedStereo()); err != nil {
		t.Fatalf("SetChannelPositions() error = %v", err)
	}

	frame, ok, err := p.Push(s16leFrames(100, -100, 200, -200))
	if err != nil || !ok {
		t.Fatalf("Push() = %v, %v", ok, err)
	}

	want := s16leFrames(-100, 100, -200, 200)
	if !bytes.Equal(frame.Data, want) {
		t.Errorf("Data = %v, want %v", s16leValues(frame.Data), s16leValues(want))
	}

	// Downstream sees the canonical layout.
	capability, err := p.OutputCapability()
	if err != nil {
		t.Fatalf("OutputCapability() error = %v", err)
	}
	if capability.Positions[0] != format.FrontLeft || capability.Positions[1] != format.FrontRight {
		t.Errorf("published layout = %v, want canonical", capability.Positions)
	}
}

func TestParser_NegotiatedScenario(t *testing.T) {
	t.Parallel()

	// A-law at 8 kHz mono without a channel mask: fallback applies and the
	// negotiated configuration takes over.
	p := NewParser()
	if err := p.SetCapability(format.ALawCapability(8000, 1, 0)); err != nil {
		t.Fatalf("SetCapability() error = %v", err)
	}

	if got := p.ActiveConfig(); got != ConfigNegotiated {
		t.Errorf("ActiveConfig() = %v, want negotiated", got)
	}
	if got := p.FrameSize(ConfigNegotiated); got != 1 {
		t.Errorf("FrameSize(negotiated) = %d, want 1", got)
	}
	if got := p.Alignment(ConfigNegotiated); got != 1 {
		t.Errorf("Alignment(negotiated) = %d, want 1", got)
	}

	// Every byte is a frame now.
	frame, ok, err := p.Push([]byte{0x55, 0xD5, 0x2A})
	if err != nil || !ok {
		t.Fatalf("Push() = %v, %v", ok, err)
	}
	if frame.NumFrames != 3 {
		t.Errorf("NumFrames = %d, want 3", frame.NumFrames)
	}
}

func TestParser_FailedNegotiationKeepsConfigUnready(t *testing.T) {
	t.Parallel()

	p := NewParser()

	err := p.SetCapability(format.Capability{MediaType: "audio/x-flac", Rate: 44100, Channels: 2})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("SetCapability() error = %v, want ErrUnsupportedFormat", err)
	}
	if p.IsReady(ConfigNegotiated) {
		t.Error("IsReady(negotiated) = true after failed negotiation")
	}
	if got := p.ActiveConfig(); got != ConfigExplicit {
		t.Errorf("ActiveConfig() = %v, want explicit after failure", got)
	}

	// A failure also un-readies a previously negotiated configuration.
	if err := p.SetCapability(format.MuLawCapability(8000, 1, 0)); err != nil {
		t.Fatalf("SetCapability(mulaw) error = %v", err)
	}
	if err := p.SetCapability(format.ALawCapability(0, 1, 0)); err == nil {
		t.Fatal("SetCapability(bad alaw) error = nil, want error")
	}
	if p.IsReady(ConfigNegotiated) {
		t.Error("IsReady(negotiated) = true after failed renegotiation")
	}
}

func TestParser_ResetUnreadiesNegotiated(t *testing.T) {
	t.Parallel()

	p := NewParser()
	if err := p.SetCapability(format.MuLawCapability(8000, 2, 0)); err != nil {
		t.Fatalf("SetCapability() error = %v", err)
	}
	if got := p.ActiveConfig(); got != ConfigNegotiated {
		t.Fatalf("ActiveConfig() = %v, want negotiated", got)
	}

	// Leave a partial frame pending, then restart the stream.
	if _, _, err := p.Push([]byte{0x01}); err != nil {
		t.Fatalf("Push() error = %v", err)
	}
	p.Reset()

	if p.IsReady(ConfigNegotiated) {
		t.Error("IsReady(negotiated) = true after Reset")
	}
	if got := p.ActiveConfig(); got != ConfigExplicit {
		t.Errorf("ActiveConfig() = %v, want explicit after Reset", got)
	}
	if p.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0 after Reset", p.Pending())
	}
}

func TestParser_SetChannelPositionsResizesCount(t *testing.T) {
	t.Parallel()

	p := NewParser()

	// A three-position list on a two-channel configuration updates the
	// channel count to the list length.
	err := p.SetChannelPositions([]format.ChannelPosition{
		format.FrontLeft, format.FrontRight, format.FrontCenter,
	})
	if err != nil {
		t.Fatalf("SetChannelPositions() error = %v", err)
	}
	if got := p.NumChannels(); got != 3 {
		t.Errorf("NumChannels() = %d, want 3", got)
	}
	if got := p.FrameSize(ConfigExplicit); got != 6 {
		t.Errorf("FrameSize() = %d, want 6", got)
	}
}

func TestParser_SetChannelPositionsRejectsInvalid(t *testing.T) {
	t.Parallel()

	p := NewParser()

	if err := p.SetChannelPositions([]format.ChannelPosition{}); !errors.Is(err, format.ErrInvalidChannelCount) {
		t.Errorf("empty list error = %v, want ErrInvalidChannelCount", err)
	}

	err := p.SetChannelPositions([]format.ChannelPosition{format.FrontLeft, format.FrontLeft})
	if !errors.Is(err, format.ErrInvalidLayout) {
		t.Errorf("duplicate list error = %v, want ErrInvalidLayout", err)
	}

	// The previous valid layout survives a rejected one.
	positions := p.ChannelPositions()
	if positions[0] != format.FrontLeft || positions[1] != format.FrontRight {
		t.Errorf("ChannelPositions() = %v, want default stereo", positions)
	}

	// A nil list restores the defaults after an explicit layout was set.
	if err := p.SetChannelPositions(swappedStereo()); err != nil {
		t.Fatalf("SetChannelPositions(swapped) error = %v", err)
	}
	if err := p.SetChannelPositions(nil); err != nil {
		t.Fatalf("SetChannelPositions(nil) error = %v", err)
	}
	positions = p.ChannelPositions()
	if positions[0] != format.FrontLeft || positions[1] != format.FrontRight {
		t.Errorf("ChannelPositions() after nil = %v, want default stereo", positions)
	}
}

func TestParser_NeedsReconfigure(t *testing.T) {
	t.Parallel()

	p := NewParser()

	// Mutating the active explicit configuration marks the published
	// capability stale; publishing clears the mark.
	p.SetSampleFormat(format.S32LE)
	if !p.NeedsReconfigure() {
		t.Error("NeedsReconfigure() = false after explicit change")
	}
	if _, err := p.OutputCapability(); err != nil {
		t.Fatalf("OutputCapability() error = %v", err)
	}
	if p.NeedsReconfigure() {
		t.Error("NeedsReconfigure() = true after publishing")
	}

	// While the negotiated configuration is active, explicit changes do
	// not touch the published format.
	if err := p.SetCapability(format.ALawCapability(8000, 1, 0)); err != nil {
		t.Fatalf("SetCapability() error = %v", err)
	}
	if _, err := p.OutputCapability(); err != nil {
		t.Fatalf("OutputCapability() error = %v", err)
	}
	p.SetSampleFormat(format.S16LE)
	if p.NeedsReconfigure() {
		t.Error("NeedsReconfigure() = true for inactive explicit change")
	}
}

func TestParser_PushNotReadyGeometry(t *testing.T) {
	t.Parallel()

	p := NewParser()
	p.SetSampleFormat(format.Unknown) // BPF drops to 0

	if _, _, err := p.Push([]byte{1, 2, 3, 4}); !errors.Is(err, ErrConfigNotReady) {
		t.Errorf("Push() error = %v, want ErrConfigNotReady", err)
	}
}

func TestParser_UnitsPerSecond(t *testing.T) {
	t.Parallel()

	p := NewParser()
	if err := p.SetSampleRate(48000); err != nil {
		t.Fatalf("SetSampleRate() error = %v", err)
	}

	num, den, err := p.UnitsPerSecond(UnitBytes, ConfigExplicit)
	if err != nil {
		t.Fatalf("UnitsPerSecond(bytes) error = %v", err)
	}
	if num != 48000*4 || den != 1 {
		t.Errorf("UnitsPerSecond(bytes) = %d/%d, want %d/1", num, den, 48000*4)
	}

	num, den, err = p.UnitsPerSecond(UnitFrames, ConfigExplicit)
	if err != nil {
		t.Fatalf("UnitsPerSecond(frames) error = %v", err)
	}
	if num != 48000 || den != 1 {
		t.Errorf("UnitsPerSecond(frames) = %d/%d, want 48000/1", num, den)
	}

	if _, _, err := p.UnitsPerSecond(Unit(42), ConfigExplicit); !errors.Is(err, ErrUnsupportedUnit) {
		t.Errorf("UnitsPerSecond(42) error = %v, want ErrUnsupportedUnit", err)
	}

	units := p.SupportedUnits()
	if len(units) != 2 || units[0] != UnitBytes || units[1] != UnitFrames {
		t.Errorf("SupportedUnits() = %v, want [bytes frames]", units)
	}
}
