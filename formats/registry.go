// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"io"
	"sync"

	"github.com/ik5/audparse/format"
)

// Stream is an upstream producer: a raw audio byte stream together with
// the capability description it negotiated. The bytes read match the
// capability exactly (encoding, sample format, rate, channel count).
type Stream interface {
	io.Reader
	// Capability describes the raw bytes this stream yields.
	Capability() format.Capability
}

// Opener constructs a Stream from an input reader.
type Opener func(r io.Reader) (Stream, error)

// Registry maps container/codec keys (e.g., "wav", "mp3", "ogg") to
// openers.
type Registry struct {
	openers map[string]Opener

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		openers: make(map[string]Opener),
		mtx:     &sync.Mutex{},
	}
}

func (r *Registry) Register(key string, o Opener) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.openers[key] = o
}

func (r *Registry) Get(key string) (Opener, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	o, ok := r.openers[key]
	return o, ok
}

// Open looks up key and opens r with the registered opener. The boolean
// reports whether the key was known.
func (r *Registry) Open(key string, src io.Reader) (Stream, bool, error) {
	o, ok := r.Get(key)
	if !ok {
		return nil, false, nil
	}
	s, err := o(src)
	return s, true, err
}
