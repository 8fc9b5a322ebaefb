package source

import (
	"crypto/sha256"
	"os"
	"path/filepath"
)

// HashBytes computes the content digest of an in-memory buffer.
func HashBytes(content []byte) Digest {
	return sha256.Sum256(content)
}

// HashFile computes the content digest of a file on disk.
func HashFile(path string) (Digest, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return Digest{}, err
	}
	return HashBytes(content), nil
}

// BuildLineIndex returns the byte offsets of every '\n' in content.
func BuildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, len(content)/32)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

// ToLineCol converts a byte offset into a 1-based line/column pair using a
// line index produced by BuildLineIndex. A '\n' belongs to the line it
// terminates.
func ToLineCol(lineIdx []uint32, off uint32) LineCol {
	// бинпоиск: число переводов строки строго до off
	lo, hi := 0, len(lineIdx)
	for lo < hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	var startOff uint32
	if lo > 0 {
		startOff = lineIdx[lo-1] + 1
	}
	return LineCol{Line: uint32(lo + 1), Col: off - startOff + 1}
}

// NormalizePath brings a path to a canonical slash-separated form.
func NormalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}
