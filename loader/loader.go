// Package loader reads yaYUL fixed-memory ROM images into a fixed
// memory store.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/agc-core/agc/memory"
	"github.com/agc-core/agc/memword"
	"github.com/agc-core/agc/word"
)

const imageSize = memory.FixedBanks * memory.FixedWords * 2

// bankRemap maps a file-order bank index to its logical bank number.
// The first four banks in a yaYUL image are stored out of order; banks
// 4 and up are already in logical order.
func bankRemap(fileBank int) int {
	switch fileBank {
	case 0:
		return 2
	case 1:
		return 3
	case 2:
		return 0
	case 3:
		return 1
	default:
		return fileBank
	}
}

// LoadFile opens path and loads it as a yaYUL fixed-memory image,
// returning an error (never panicking) for any I/O failure or
// malformed file: this is the loader boundary, the one place in the
// core that surfaces a recoverable error instead of aborting.
func LoadFile(path string) (*memory.Fixed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	if info.Size() != imageSize {
		return nil, fmt.Errorf("loader: invalid yaYUL file size: got %d bytes, want %d", info.Size(), imageSize)
	}

	return Load(f)
}

// Load decodes a yaYUL fixed-memory image from r, which must yield
// exactly imageSize bytes.
func Load(r io.Reader) (*memory.Fixed, error) {
	fixed := memory.NewFixed()
	buf := make([]byte, memory.FixedWords*2)

	for fileBank := 0; fileBank < memory.FixedBanks; fileBank++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("loader: reading bank %d: %w", fileBank, err)
		}

		bank := bankRemap(fileBank)
		for offset := 0; offset < memory.FixedWords; offset++ {
			msb := uint16(buf[offset*2])
			lsb := uint16(buf[offset*2+1])
			value := (msb << 7) | (lsb >> 1)
			fixed.Set(bank, offset, memword.WithProperParity(word.W15(value)))
		}
	}

	return fixed, nil
}
