package memword

import (
	"testing"

	"github.com/agc-core/agc/word"
)

func TestParity(t *testing.T) {
	v := word.W15(0b001_010_011_100_110) // 7 ones: wants a clear parity bit

	proper := WithProperParity(v)
	if !proper.IsValid() {
		t.Error("WithProperParity should always be valid")
	}

	wrong := WithWrongParity(v)
	if wrong.IsValid() {
		t.Error("WithWrongParity should never be valid")
	}
	if proper.Parity() == wrong.Parity() {
		t.Error("proper and wrong parity bits should differ")
	}
}

func TestAsRegisterValueSignExtension(t *testing.T) {
	// bit14 (0-indexed) clear: no sign extension.
	positive := New(word.W15(0b000_000_000_000_01), false)
	if got := positive.AsRegisterValue(); got.Get(15) {
		t.Errorf("positive value should not sign-extend into bit15: %v", got)
	}

	// bit14 set: sign-extends into bit15.
	negative := New(word.W15(1<<14), false)
	rv := negative.AsRegisterValue()
	if !rv.Get(15) {
		t.Errorf("negative value should sign-extend into bit15: %v", rv)
	}
	if !rv.Get(14) {
		t.Errorf("bit14 should still be set: %v", rv)
	}
}

func TestDisplay(t *testing.T) {
	v := word.W15(0b001_010_011_100_110)

	valid := WithProperParity(v)
	if got, want := valid.String(), "0|12346"; got != want {
		t.Errorf("got %q want %q", got, want)
	}

	invalid := WithWrongParity(v)
	if got, want := invalid.String(), "1!12346"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
