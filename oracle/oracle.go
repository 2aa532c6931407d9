// Package oracle parses and compares the conformance CSV format used
// to check register-for-register agreement against a reference
// simulation, one row per time pulse.
package oracle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agc-core/agc/pulse"
	"github.com/agc-core/agc/word"
)

// RegisterStatus is the full register tuple captured at the start of
// one time pulse.
type RegisterStatus struct {
	A, L, Q, Z   word.Word // W16
	EBank        word.Word // W3
	FBank        word.Word // W5
	B, G         word.Word // W16
	S            word.Word // W12
	SQ           word.Word // W6 (order+extended code only, no extend bit)
	ST           word.Word // W3
	X, Y         word.Word // W16
	BR           word.Word // W2
}

// fieldNames is the column order after the two skipped meta columns.
var fieldNames = []string{"A", "L", "Q", "Z", "EBANK", "FBANK", "B", "G", "S", "SQ", "ST", "X", "Y", "BR"}

// Parse decodes one semicolon-terminated CSV line into a
// RegisterStatus, skipping its first two meta columns. lineNum is used
// only to produce a more useful error message.
func Parse(line string, lineNum int) (RegisterStatus, error) {
	fields := strings.Split(strings.TrimRight(line, ";"), ";")
	if len(fields) < 2+len(fieldNames) {
		return RegisterStatus{}, fmt.Errorf("oracle: line %d: expected at least %d fields, got %d", lineNum, 2+len(fieldNames), len(fields))
	}
	fields = fields[2:]

	values := make([]uint16, len(fieldNames))
	for i, name := range fieldNames {
		v, err := strconv.ParseUint(fields[i], 8, 16)
		if err != nil {
			return RegisterStatus{}, fmt.Errorf("oracle: line %d: invalid %q value %q: %w", lineNum, name, fields[i], err)
		}
		values[i] = uint16(v)
	}

	return RegisterStatus{
		A: word.W16(values[0]), L: word.W16(values[1]), Q: word.W16(values[2]), Z: word.W16(values[3]),
		EBank: word.W3(values[4]), FBank: word.W5(values[5]),
		B: word.W16(values[6]), G: word.W16(values[7]),
		S:  word.W12(values[8]),
		SQ: word.W6(values[9]),
		ST: word.W3(values[10]),
		X:  word.W16(values[11]), Y: word.W16(values[12]),
		BR: word.W2(values[13]),
	}, nil
}

// FromCpu snapshots a RegisterStatus from the live CPU state, in the
// same field order Parse produces, so the two can be compared
// directly.
func FromCpu(c *pulse.Cpu) RegisterStatus {
	return RegisterStatus{
		A: c.A, L: c.L, Q: c.Q, Z: c.Z,
		EBank: c.EBank, FBank: c.FBank,
		B: c.B, G: c.G,
		S:  c.S,
		SQ: c.SQ.Inner().Narrow(6),
		ST: c.ST,
		X:  c.X, Y: c.Y,
		BR: c.BR.Inner(),
	}
}

// Diff reports the first field name where got and want disagree, or ""
// if they match on every field.
func Diff(got, want RegisterStatus) string {
	pairs := []struct {
		name      string
		got, want word.Word
	}{
		{"A", got.A, want.A}, {"L", got.L, want.L}, {"Q", got.Q, want.Q}, {"Z", got.Z, want.Z},
		{"EBANK", got.EBank, want.EBank}, {"FBANK", got.FBank, want.FBank},
		{"B", got.B, want.B}, {"G", got.G, want.G},
		{"S", got.S, want.S}, {"SQ", got.SQ, want.SQ}, {"ST", got.ST, want.ST},
		{"X", got.X, want.X}, {"Y", got.Y, want.Y}, {"BR", got.BR, want.BR},
	}
	for _, p := range pairs {
		if p.got != p.want {
			return p.name
		}
	}
	return ""
}
