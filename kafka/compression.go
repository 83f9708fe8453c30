package kafka

import (
	// Go Internal Packages
	"errors"
	"fmt"
	"strings"

	// External Packages
	"github.com/twmb/franz-go/pkg/kgo"
)

// Compression specifies the batch compression codec.
type Compression string

const (
	CompressionSnappy Compression = "snappy"
	CompressionGzip   Compression = "gzip"
	CompressionLz4    Compression = "lz4"
	CompressionZstd   Compression = "zstd"
	CompressionNone   Compression = "none"
)

var compressionTypes = map[Compression]kgo.CompressionCodec{
	CompressionSnappy: kgo.SnappyCompression(),
	CompressionGzip:   kgo.GzipCompression(),
	CompressionLz4:    kgo.Lz4Compression(),
	CompressionZstd:   kgo.ZstdCompression(),
	CompressionNone:   kgo.NoCompression(),
}

var compressionList = []string{
	string(CompressionSnappy),
	string(CompressionGzip),
	string(CompressionLz4),
	string(CompressionZstd),
	string(CompressionNone),
}

// ValidateCompression accepts the known codecs or empty (meaning none).
func ValidateCompression(codec Compression) error {
	if codec == "" {
		return nil
	}
	if _, ok := compressionTypes[codec]; ok {
		return nil
	}

	list := "'" + strings.Join(compressionList, "', '") + "'"
	return errors.Join(ErrValidation,
		fmt.Errorf("compression codec '%s' is invalid: must be %s or empty", codec, list))
}

func (c Compression) codec() kgo.CompressionCodec {
	if codec, ok := compressionTypes[c]; ok {
		return codec
	}
	return kgo.NoCompression()
}
