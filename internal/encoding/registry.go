package encoding

import (
	"sync"

	"github.com/denismitr/lemonade/internal/encoding/cbor"
	"github.com/denismitr/lemonade/internal/encoding/codec"
	"github.com/denismitr/lemonade/internal/encoding/json"
	"github.com/pkg/errors"
)

var (
	// ErrCodecNotFound is returned when there is no codec registered for a format.
	ErrCodecNotFound = errors.New("codec not found for this format")

	// ErrCodecFormatAlreadyRegistered is returned when a codec is already registered for a format.
	ErrCodecFormatAlreadyRegistered = errors.New("codec already registered for this format")
)

const (
	JSON = "json"
	CBOR = "cbor"
)

var supportedCodecFormats = map[string]func(args ...interface{}) codec.Codec{
	JSON: json.New,
	CBOR: cbor.New,
}

// Registry lazily instantiates codecs by format name.
type Registry struct {
	codecs map[string]codec.Codec
	mu     sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]codec.Codec)}
}

func (r *Registry) getCodecLazily(format string) (codec.Codec, error) {
	r.mu.RLock()
	c, ok := r.codecs[format]
	r.mu.RUnlock()
	if ok {
		return c, nil
	}

	newCodecFn, ok := supportedCodecFormats[format]
	if !ok {
		return nil, errors.Wrapf(ErrCodecNotFound, "format %q", format)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.codecs[format]; ok {
		return c, nil
	}

	c = newCodecFn()
	r.codecs[format] = c
	return c, nil
}

func (r *Registry) Decode(format string, b []byte) (map[string]interface{}, error) {
	decoder, err := r.getCodecLazily(format)
	if err != nil {
		return nil, err
	}
	return decoder.Decode(b)
}

func (r *Registry) Encode(format string, v map[string]interface{}) ([]byte, error) {
	encoder, err := r.getCodecLazily(format)
	if err != nil {
		return nil, err
	}
	return encoder.Encode(v)
}

// RegisterCodec registers a Codec for a format.
// Registering a Codec for an already existing format is not supported.
func (r *Registry) RegisterCodec(format string, c codec.Codec) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.codecs[format]; ok {
		return errors.Wrapf(ErrCodecFormatAlreadyRegistered, "format %q", format)
	}

	if _, ok := supportedCodecFormats[format]; ok {
		return errors.Wrapf(ErrCodecFormatAlreadyRegistered, "format %q", format)
	}

	r.codecs[format] = c
	return nil
}
