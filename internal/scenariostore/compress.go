package scenariostore

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// compressedMarker tags stored payloads that went through gzip so reads
// can detect and transparently reverse it.
const compressedMarker = "gz:"

// DefaultCompressionThreshold is the serialized size above which payloads
// are compressed before storage.
const DefaultCompressionThreshold = 1024

// encodePayload compresses the payload when it exceeds the threshold.
// The transform is strictly lossless: decodePayload(encodePayload(x)) == x.
func encodePayload(payload string, threshold int) string {
	if threshold <= 0 {
		threshold = DefaultCompressionThreshold
	}
	if len(payload) <= threshold {
		return payload
	}
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(payload)); err != nil {
		return payload // store uncompressed rather than fail
	}
	if err := zw.Close(); err != nil {
		return payload
	}
	return compressedMarker + base64.StdEncoding.EncodeToString(buf.Bytes())
}

// decodePayload reverses encodePayload, passing unmarked payloads through
// untouched.
func decodePayload(stored string) (string, error) {
	if len(stored) < len(compressedMarker) || stored[:len(compressedMarker)] != compressedMarker {
		return stored, nil
	}
	raw, err := base64.StdEncoding.DecodeString(stored[len(compressedMarker):])
	if err != nil {
		return "", fmt.Errorf("decode compressed payload: %w", err)
	}
	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("open gzip payload: %w", err)
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return "", fmt.Errorf("inflate payload: %w", err)
	}
	return string(out), nil
}
