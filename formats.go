// SPDX-License-Identifier: EPL-2.0

package namhost

import (
	"fmt"
	"os"

	"github.com/ik5/namhost/audio"
	"github.com/ik5/namhost/formats/aiff"
	"github.com/ik5/namhost/formats/mp3"
	"github.com/ik5/namhost/formats/vorbis"
	"github.com/ik5/namhost/formats/wav"
)

// NewRegistry returns a registry with every bundled decoder registered
// under its usual file extensions.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})

	return r
}

// fileSource closes the file along with the decoded stream.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s fileSource) Close() error {
	err := s.Source.Close()
	if cerr := s.f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Open decodes the file at path with the decoder registered for its
// extension. Closing the returned source closes the file.
func Open(r *audio.Registry, path string) (audio.Source, error) {
	dec, err := r.Lookup(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return fileSource{Source: src, f: f}, nil
}
