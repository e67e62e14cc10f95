// SPDX-License-Identifier: EPL-2.0

package parse

import (
	"fmt"

	"github.com/ik5/audparse/format"
)

// The setter surface mutates only the explicit configuration. Every setter
// follows the same pattern: no-op when the value does not change, update
// the derived frame geometry where the value affects it, and mark the
// published output capability stale when the explicit configuration is the
// active one.

func (p *Parser) markExplicitChanged() {
	if !p.negotiated.Ready {
		p.reconfigure = true
	}
}

// SetEncoding selects the sample coding of the explicit configuration.
func (p *Parser) SetEncoding(enc format.Encoding) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if enc == p.explicit.Encoding {
		return
	}
	p.explicit.Encoding = enc
	p.explicit.UpdateBPF()
	p.markExplicitChanged()
}

// SetSampleFormat selects the PCM sample layout of the explicit
// configuration. It is ignored by the frame geometry unless the encoding
// is PCM.
func (p *Parser) SetSampleFormat(sf format.SampleFormat) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if sf == p.explicit.SampleFormat {
		return
	}
	p.explicit.SampleFormat = sf
	p.explicit.UpdateBPF()
	p.markExplicitChanged()
}

// SetSampleRate sets the sample rate of the explicit configuration.
func (p *Parser) SetSampleRate(rate int) error {
	if rate < 1 {
		return fmt.Errorf("sample rate %d: %w", rate, ErrInvalidRate)
	}

	p.mtx.Lock()
	defer p.mtx.Unlock()

	if rate == p.explicit.SampleRate {
		return nil
	}
	p.explicit.SampleRate = rate
	p.markExplicitChanged()
	return nil
}

// SetNumChannels sets the channel count of the explicit configuration and
// restores the default layout for that count.
func (p *Parser) SetNumChannels(count int) error {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if count == p.explicit.NumChannels {
		return nil
	}
	if err := p.explicit.SetChannels(count, 0, true); err != nil {
		return err
	}
	p.explicit.UpdateBPF()
	p.markExplicitChanged()
	return nil
}

// SetInterleaved sets the sample layout flag of the explicit configuration.
func (p *Parser) SetInterleaved(interleaved bool) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if interleaved == p.explicit.Interleaved {
		return
	}
	p.explicit.Interleaved = interleaved
	p.markExplicitChanged()
}

// SetChannelPositions sets an explicit channel layout. A nil list restores
// the default layout for the current channel count; an empty list is
// rejected. When the list length differs from the current channel count,
// the count follows the list. Layouts that are not in canonical order are
// accepted and enable per-frame channel reordering; invalid layouts leave
// the previous one in place.
func (p *Parser) SetChannelPositions(positions []format.ChannelPosition) error {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if positions == nil {
		if err := p.explicit.SetChannels(p.explicit.NumChannels, 0, true); err != nil {
			return err
		}
		p.explicit.UpdateBPF()
		p.markExplicitChanged()
		return nil
	}

	if len(positions) == 0 {
		return fmt.Errorf("empty channel position list: %w", format.ErrInvalidChannelCount)
	}

	// Work on a copy so an invalid layout cannot clobber a valid one.
	cfg := p.explicit
	if err := cfg.SetChannels(len(positions), 0, false); err != nil {
		return err
	}
	copy(cfg.Positions, positions)
	if err := cfg.UpdateReorderFlag(); err != nil {
		return err
	}
	cfg.UpdateBPF()

	p.explicit = cfg
	p.markExplicitChanged()
	return nil
}

// Encoding returns the sample coding of the explicit configuration.
func (p *Parser) Encoding() format.Encoding {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.explicit.Encoding
}

// SampleFormat returns the PCM sample layout of the explicit configuration.
func (p *Parser) SampleFormat() format.SampleFormat {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.explicit.SampleFormat
}

// SampleRate returns the sample rate of the explicit configuration.
func (p *Parser) SampleRate() int {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.explicit.SampleRate
}

// NumChannels returns the channel count of the explicit configuration.
func (p *Parser) NumChannels() int {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.explicit.NumChannels
}

// Interleaved returns the sample layout flag of the explicit configuration.
func (p *Parser) Interleaved() bool {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.explicit.Interleaved
}

// ChannelPositions returns a copy of the explicit configuration's layout.
func (p *Parser) ChannelPositions() []format.ChannelPosition {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	positions := make([]format.ChannelPosition, len(p.explicit.Positions))
	copy(positions, p.explicit.Positions)
	return positions
}
