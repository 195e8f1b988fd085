package flightsource

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ijalalfrz/flight-movement-importer/internal/app/dto"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// TrimBOM drops a leading UTF-8 byte order mark, as written by Excel and
// Notepad in front of text exports.
func TrimBOM(content []byte) []byte {
	return bytes.TrimPrefix(content, utf8BOM)
}

// Decoder turns the content of one import file into raw records.
type Decoder interface {
	Decode(content []byte) ([]dto.RawRecord, error)
}

// DecoderFunc adapts a function to Decoder.
type DecoderFunc func(content []byte) ([]dto.RawRecord, error)

func (f DecoderFunc) Decode(content []byte) ([]dto.RawRecord, error) {
	return f(content)
}

// DecoderFactory dispatches files to decoders by extension.
type DecoderFactory struct {
	Decoder map[string]Decoder
}

func NewDecoderFactory() *DecoderFactory {
	return &DecoderFactory{
		Decoder: make(map[string]Decoder),
	}
}

// AddDecoder registers decoder for ext, e.g. ".json". Extensions are matched
// case-insensitively.
func (f *DecoderFactory) AddDecoder(ext string, decoder Decoder) {
	f.Decoder[strings.ToLower(ext)] = decoder
}

func (f *DecoderFactory) GetDecoder(fileName string) (Decoder, error) {
	ext := strings.ToLower(filepath.Ext(fileName))

	decoder, ok := f.Decoder[ext]
	if !ok {
		return nil, ErrUnsupportedFormat.WithCause(fmt.Errorf("extension %q, use %s",
			ext, strings.Join(f.Extensions(), " or ")))
	}

	return decoder, nil
}

// Supports reports whether fileName has a registered extension.
func (f *DecoderFactory) Supports(fileName string) bool {
	_, ok := f.Decoder[strings.ToLower(filepath.Ext(fileName))]
	return ok
}

// Extensions lists registered extensions in sorted order.
func (f *DecoderFactory) Extensions() []string {
	exts := make([]string, 0, len(f.Decoder))
	for ext := range f.Decoder {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	return exts
}

// Decode picks the decoder for fileName and decodes content.
func (f *DecoderFactory) Decode(fileName string, content []byte) ([]dto.RawRecord, error) {
	decoder, err := f.GetDecoder(fileName)
	if err != nil {
		return nil, err
	}

	return decoder.Decode(content)
}
