// SPDX-License-Identifier: EPL-2.0

package parse

import (
	"fmt"
	"sync"
	"time"

	"github.com/ik5/audparse/format"
)

// ConfigID names one of the two configurations a Parser holds.
type ConfigID int

const (
	// ConfigExplicit is the configuration filled through the setter
	// surface. It is complete from construction and acts as the fallback.
	ConfigExplicit ConfigID = iota
	// ConfigNegotiated is the configuration derived from an upstream
	// capability. It is authoritative while it is ready.
	ConfigNegotiated
)

func (id ConfigID) String() string {
	switch id {
	case ConfigExplicit:
		return "explicit"
	case ConfigNegotiated:
		return "negotiated"
	default:
		return "invalid"
	}
}

// Unit is a stream position unit for duration/position arithmetic.
type Unit int

const (
	// UnitBytes counts stream bytes.
	UnitBytes Unit = iota
	// UnitFrames counts whole frames (one sample per channel).
	UnitFrames
)

// Frame is a run of whole frames cut from the byte stream.
type Frame struct {
	// Data holds NumFrames * bpf bytes, channel layout already canonical.
	Data []byte
	// Offset is the index of the first frame since the stream started.
	Offset int64
	// NumFrames is the number of whole frames in Data.
	NumFrames int
	// Timestamp is the stream time of the first frame.
	Timestamp time.Duration
	// Duration covers all frames in Data.
	Duration time.Duration
}

// Parser turns an arbitrarily chunked raw audio byte stream into aligned
// frames. It owns an explicit configuration, mutated through the setter
// surface, and a negotiated one, filled from upstream capabilities; the
// negotiated configuration is authoritative whenever it is ready.
//
// All methods serialize on an internal mutex, so a Parser may be shared,
// but the byte stream itself must come from a single producer for the
// frame accounting to make sense. Independent Parser instances are fully
// independent.
type Parser struct {
	mtx sync.Mutex

	explicit   Config
	negotiated Config

	pending     []byte
	frameCount  int64
	reconfigure bool
}

// NewParser returns a Parser whose explicit configuration carries the
// package defaults and is immediately ready; the negotiated configuration
// stays unready until a capability is set.
func NewParser() *Parser {
	p := &Parser{
		explicit:   newDefaultConfig(),
		negotiated: newDefaultConfig(),
	}
	p.explicit.Ready = true
	p.explicit.UpdateBPF()
	return p
}

// config returns the configuration named by id. The active pointer is
// never exposed; selection is recomputed on every call.
func (p *Parser) config(id ConfigID) *Config {
	if id == ConfigNegotiated {
		return &p.negotiated
	}
	return &p.explicit
}

func (p *Parser) active() *Config {
	if p.negotiated.Ready {
		return &p.negotiated
	}
	return &p.explicit
}

// ActiveConfig reports which configuration is authoritative right now:
// the negotiated one while it is ready, the explicit one otherwise.
func (p *Parser) ActiveConfig() ConfigID {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.negotiated.Ready {
		return ConfigNegotiated
	}
	return ConfigExplicit
}

// IsReady reports whether the named configuration has complete geometry.
func (p *Parser) IsReady(id ConfigID) bool {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.config(id).Ready
}

// FrameSize returns the bytes-per-frame value of the named configuration.
func (p *Parser) FrameSize(id ConfigID) int {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.config(id).BPF
}

// Alignment returns the byte alignment frame starts must respect for the
// named configuration.
func (p *Parser) Alignment(id ConfigID) int {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.config(id).Alignment()
}

// MinFrameSize returns the smallest byte count that holds one whole frame
// of the active configuration.
func (p *Parser) MinFrameSize() int {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.active().BPF
}

// SetCapability converts an upstream capability and installs it as the
// negotiated configuration, making it the active one. On failure the
// negotiated configuration is left unready and the error is returned.
func (p *Parser) SetCapability(capability format.Capability) error {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	cfg, err := ConfigFromCapability(capability)
	if err != nil {
		p.negotiated.Ready = false
		return fmt.Errorf("negotiating capability: %w", err)
	}

	p.negotiated = cfg
	p.reconfigure = true
	return nil
}

// OutputCapability returns the capability the active configuration
// advertises downstream and clears the reconfigure flag. The layout in the
// result is always canonical, and PCM always uses the aligned raw media
// type.
func (p *Parser) OutputCapability() (format.Capability, error) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	capability, err := CapabilityFromConfig(*p.active())
	if err != nil {
		return format.Capability{}, err
	}
	p.reconfigure = false
	return capability, nil
}

// NeedsReconfigure reports whether the active format changed since the
// last OutputCapability call, meaning a previously published capability is
// stale.
func (p *Parser) NeedsReconfigure() bool {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.reconfigure
}

// Reset handles a stream restart: buffered bytes and frame accounting are
// dropped and the negotiated configuration becomes unready, so the
// explicit configuration takes over until a new capability arrives.
func (p *Parser) Reset() {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	p.negotiated.Ready = false
	p.pending = p.pending[:0]
	p.frameCount = 0
	p.reconfigure = true
}

// Push appends data to the pending byte stream and cuts off as many whole
// frames as are buffered. The returned Frame holds the largest multiple of
// the active frame size; any trailing partial frame stays buffered and is
// prepended to the next Push. ok is false while no whole frame is
// available.
func (p *Parser) Push(data []byte) (frame Frame, ok bool, err error) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	p.pending = append(p.pending, data...)

	cfg := p.active()
	if cfg.BPF == 0 {
		return Frame{}, false, ErrConfigNotReady
	}

	valid := len(p.pending) / cfg.BPF * cfg.BPF
	if valid == 0 {
		return Frame{}, false, nil
	}

	out := processFrames(cfg, p.pending, valid)
	if out == nil {
		// Passthrough: the pending buffer is reused, so hand out a copy.
		out = make([]byte, valid)
		copy(out, p.pending[:valid])
	}

	n := valid / cfg.BPF
	frame = Frame{
		Data:      out,
		Offset:    p.frameCount,
		NumFrames: n,
		Timestamp: framesToDuration(p.frameCount, cfg.SampleRate),
		Duration:  framesToDuration(int64(n), cfg.SampleRate),
	}
	p.frameCount += int64(n)

	rest := copy(p.pending, p.pending[valid:])
	p.pending = p.pending[:rest]

	return frame, true, nil
}

// Pending returns the number of buffered bytes not yet forming a whole
// frame.
func (p *Parser) Pending() int {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return len(p.pending)
}

// Process applies the frame transform of the named configuration to the
// first valid bytes of in. It returns (nil, false) when the bytes may be
// used as-is. valid must be a multiple of the configuration's frame size.
func (p *Parser) Process(id ConfigID, in []byte, valid int) ([]byte, bool) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	out := processFrames(p.config(id), in, valid)
	return out, out != nil
}

// SupportedUnits lists the position units UnitsPerSecond understands.
func (p *Parser) SupportedUnits() []Unit {
	return []Unit{UnitBytes, UnitFrames}
}

// UnitsPerSecond returns how many units of stream position pass per second
// of stream time for the named configuration, as a fraction.
func (p *Parser) UnitsPerSecond(unit Unit, id ConfigID) (num, den int, err error) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	cfg := p.config(id)
	switch unit {
	case UnitBytes:
		return cfg.SampleRate * cfg.BPF, 1, nil
	case UnitFrames:
		return cfg.SampleRate, 1, nil
	default:
		return 0, 0, fmt.Errorf("unit %d: %w", unit, ErrUnsupportedUnit)
	}
}

func framesToDuration(frames int64, rate int) time.Duration {
	return time.Duration(frames * int64(time.Second) / int64(rate))
}
