//go:build unit || e2e

package testutil

// PNGBytes is enough of a PNG for content sniffing to recognise it.
func PNGBytes() []byte {
	return append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)
}
