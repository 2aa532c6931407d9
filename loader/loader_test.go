package loader

import (
	"bytes"
	"testing"

	"github.com/agc-core/agc/memory"
)

func TestBankRemap(t *testing.T) {
	cases := map[int]int{0: 2, 1: 3, 2: 0, 3: 1, 4: 4, 35: 35}
	for in, want := range cases {
		if got := bankRemap(in); got != want {
			t.Errorf("bankRemap(%d) = %d, want %d", in, got, want)
		}
	}
}

// buildImage constructs a synthetic yaYUL image where the word at
// (fileBank, offset) encodes fileBank*1024+offset into its 15 value
// bits, so decoding can be checked against the expected bank remap.
func buildImage() []byte {
	buf := make([]byte, memory.FixedBanks*memory.FixedWords*2)
	for bank := 0; bank < memory.FixedBanks; bank++ {
		for offset := 0; offset < memory.FixedWords; offset++ {
			value := uint16(bank*memory.FixedWords + offset)
			msb := byte(value >> 7)
			lsb := byte((value & 0x7f) << 1)
			i := (bank*memory.FixedWords + offset) * 2
			buf[i] = msb
			buf[i+1] = lsb
		}
	}
	return buf
}

func TestLoadDecodesAndRemaps(t *testing.T) {
	img := buildImage()
	fixed, err := Load(bytes.NewReader(img))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// File bank 0 lands in logical bank 2.
	got := fixed.Get(2, 5).Value().AsU16()
	if want := uint16(0*memory.FixedWords + 5); got != want {
		t.Errorf("got %d want %d", got, want)
	}

	// File bank 4 stays at logical bank 4.
	got = fixed.Get(4, 10).Value().AsU16()
	if want := uint16(4*memory.FixedWords + 10); got != want {
		t.Errorf("got %d want %d", got, want)
	}

	if !fixed.Get(2, 5).IsValid() {
		t.Error("loaded words must carry proper parity")
	}
}

func TestLoadRejectsWrongSize(t *testing.T) {
	_, err := Load(bytes.NewReader(make([]byte, 10)))
	if err == nil {
		t.Fatal("expected an error for a truncated image")
	}
}

func TestLoadFileRejectsMissingFile(t *testing.T) {
	_, err := LoadFile("does-not-exist.bin")
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
