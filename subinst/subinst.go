// Package subinst implements the static subinstruction table: the
// fixed, branch-gated sequences of control pulses each subinstruction
// runs across its 12 time pulses, and the decoder that selects one from
// the stage counter and sequence register.
package subinst

import (
	"fmt"

	"github.com/agc-core/agc/pulse"
	"github.com/agc-core/agc/register"
	"github.com/agc-core/agc/word"
)

// Guard is a branch-gated condition consuming BR, keyed the way the
// action table names it (note the 0X/1X naming gates on BR2, not BR1;
// this asymmetry is intentional).
type Guard int

const (
	GuardXX Guard = iota // always
	GuardX0              // BR1 = 0
	Guard0X              // BR2 = 0
	GuardX1              // BR1 = 1
	Guard1X              // BR2 = 1
	Guard00              // BR == 00
	Guard01              // BR == 01
	Guard10              // BR == 10
	Guard11              // BR == 11
)

// Evaluate reports whether g fires given the current branch register.
func (g Guard) Evaluate(br register.BranchRegister) bool {
	switch g {
	case GuardXX:
		return true
	case GuardX0:
		return !br.BR1()
	case Guard0X:
		return !br.BR2()
	case GuardX1:
		return br.BR1()
	case Guard1X:
		return br.BR2()
	case Guard00:
		return br.Inner().AsU16() == 0b00
	case Guard01:
		return br.Inner().AsU16() == 0b01
	case Guard10:
		return br.Inner().AsU16() == 0b10
	case Guard11:
		return br.Inner().AsU16() == 0b11
	default:
		panic(fmt.Sprintf("subinst: invalid guard %d", g))
	}
}

// Action pairs a control pulse with the branch guard that decides
// whether it fires this tick.
type Action struct {
	Guard Guard
	Pulse pulse.Pulse
}

func brXX(p pulse.Pulse) Action { return Action{GuardXX, p} }
func brX0(p pulse.Pulse) Action { return Action{GuardX0, p} }
func br0X(p pulse.Pulse) Action { return Action{Guard0X, p} }
func brX1(p pulse.Pulse) Action { return Action{GuardX1, p} }
func br1X(p pulse.Pulse) Action { return Action{Guard1X, p} }
func br00(p pulse.Pulse) Action { return Action{Guard00, p} }
func br01(p pulse.Pulse) Action { return Action{Guard01, p} }
func br10(p pulse.Pulse) Action { return Action{Guard10, p} }
func br11(p pulse.Pulse) Action { return Action{Guard11, p} }

// Actions is an ordered list of gated pulse references for one time
// pulse.
type Actions []Action

// Subinstruction is a fixed record of 12 action lists, one per time
// pulse T1..T12.
type Subinstruction struct {
	Name string
	T    [12]Actions
}

// Actions returns the action list for time pulse t (1-indexed, 1..12).
func (s *Subinstruction) Actions(t int) Actions {
	if t < 1 || t > 12 {
		panic(fmt.Sprintf("subinst: time pulse %d out of range [1,12]", t))
	}
	return s.T[t-1]
}

var (
	// CA0 is clear-and-add: load the accumulator from memory.
	CA0 = &Subinstruction{
		Name: "CA0",
		T: [12]Actions{
			{},
			{brXX(pulse.RSC), brXX(pulse.WG)},
			{},
			{},
			{},
			{},
			{brXX(pulse.RG), brXX(pulse.WB)},
			{brXX(pulse.RZ), brXX(pulse.WS), brXX(pulse.ST2)},
			{brXX(pulse.RB), brXX(pulse.WG)},
			{brXX(pulse.RB), brXX(pulse.WA)},
			{},
			{},
		},
	}

	// GOJ1 is the reset/start subinstruction (GOJAM).
	GOJ1 = &Subinstruction{
		Name: "GOJ1",
		T: [12]Actions{
			{},
			{brXX(pulse.RSC), brXX(pulse.WG)},
			{},
			{},
			{},
			{},
			{},
			{brXX(pulse.RSTRT), brXX(pulse.WS), brXX(pulse.WB)},
			{},
			{},
			{},
			{},
		},
	}

	// INCR0 increments the word in memory.
	INCR0 = &Subinstruction{
		Name: "INCR0",
		T: [12]Actions{
			{brXX(pulse.RL10BB), brXX(pulse.WS)},
			{brXX(pulse.RSC), brXX(pulse.WG)},
			{},
			{},
			{brXX(pulse.RG), brXX(pulse.WY), brXX(pulse.TSGN), brXX(pulse.TMZ), brXX(pulse.TPZG)},
			{brXX(pulse.PONEX)},
			{brXX(pulse.RU), brXX(pulse.WSC), brXX(pulse.WG), brXX(pulse.WOVR)},
			{brXX(pulse.RZ), brXX(pulse.WS), brXX(pulse.ST2)},
			{},
			{},
			{},
			{},
		},
	}

	// STD2 is the default T12 housekeeping stage: fetch the next
	// instruction into SQ.
	STD2 = &Subinstruction{
		Name: "STD2",
		T: [12]Actions{
			{brXX(pulse.RZ), brXX(pulse.WY12), brXX(pulse.CI)},
			{brXX(pulse.RSC), brXX(pulse.WG), brXX(pulse.NISQ)},
			{},
			{},
			{},
			{brXX(pulse.RU), brXX(pulse.WZ)},
			{},
			{brXX(pulse.RAD), brXX(pulse.WB), brXX(pulse.WS)},
			{},
			{},
			{},
			{},
		},
	}

	// TC0 is transfer-control.
	TC0 = &Subinstruction{
		Name: "TC0",
		T: [12]Actions{
			{brXX(pulse.RB), brXX(pulse.WY12), brXX(pulse.CI)},
			{brXX(pulse.RSC), brXX(pulse.WG), brXX(pulse.NISQ)},
			{brXX(pulse.RZ), brXX(pulse.WQ)},
			{},
			{},
			{brXX(pulse.RU), brXX(pulse.WZ)},
			{},
			{brXX(pulse.RAD), brXX(pulse.WB), brXX(pulse.WS)},
			{},
			{},
			{},
			{},
		},
	}

	// TCF0 is transfer-control-to-fixed.
	TCF0 = &Subinstruction{
		Name: "TCF0",
		T: [12]Actions{
			{brXX(pulse.RB), brXX(pulse.WY12), brXX(pulse.CI)},
			{brXX(pulse.RSC), brXX(pulse.WG), brXX(pulse.NISQ)},
			{},
			{},
			{},
			{brXX(pulse.RU), brXX(pulse.WZ)},
			{},
			{brXX(pulse.RAD), brXX(pulse.WB), brXX(pulse.WS)},
			{},
			{},
			{},
			{},
		},
	}

	// TS0 is transfer-to-storage, with overflow-to-Q handling gated
	// on the TOV-derived BR pattern from T3.
	TS0 = &Subinstruction{
		Name: "TS0",
		T: [12]Actions{
			{brXX(pulse.RL10BB), brXX(pulse.WS)},
			{brXX(pulse.RSC), brXX(pulse.WG)},
			{brXX(pulse.RA), brXX(pulse.WB), brXX(pulse.TOV)},
			{brXX(pulse.RZ), brXX(pulse.WY12), br01(pulse.CI), br10(pulse.CI)},
			{br01(pulse.RB1), br01(pulse.WA), br10(pulse.R1C), br10(pulse.WA)},
			{brXX(pulse.RU), brXX(pulse.WZ)},
			{brXX(pulse.RB), brXX(pulse.WSC), brXX(pulse.WG)},
			{brXX(pulse.RZ), brXX(pulse.WS), brXX(pulse.ST2)},
			{},
			{},
			{},
			{},
		},
	}

	// XCH0 exchanges A with memory.
	XCH0 = &Subinstruction{
		Name: "XCH0",
		T: [12]Actions{
			{brXX(pulse.RL10BB), brXX(pulse.WS)},
			{brXX(pulse.RSC), brXX(pulse.WG)},
			{brXX(pulse.RA), brXX(pulse.WB)},
			{},
			{brXX(pulse.RG), brXX(pulse.WA)},
			{},
			{brXX(pulse.RB), brXX(pulse.WSC), brXX(pulse.WG)},
			{brXX(pulse.RZ), brXX(pulse.WS), brXX(pulse.ST2)},
			{},
			{},
			{},
			{},
		},
	}
)

// Decode selects the subinstruction for the current stage counter and
// sequence register, panicking (an unrecoverable core fault, not a
// catchable error) when the (opcode, stage) pair is not yet
// implemented.
func Decode(st word.Word, sq register.SequenceRegister) *Subinstruction {
	if st.AsU16() == 0b010 {
		return STD2
	}

	if !sq.IsExtended() {
		switch sq.OrderCode().AsU16() {
		case 0b000:
			switch st.AsU16() {
			case 0b000:
				return TC0
			case 0b001:
				return GOJ1
			default:
				panic(fmt.Sprintf("subinst: opcode %o with st %o does not exist", sq.OrderCode().AsU16(), st.AsU16()))
			}
		case 0b011:
			switch st.AsU16() {
			case 0b000:
				return CA0
			default:
				panic(fmt.Sprintf("subinst: opcode %o with st %o does not exist", sq.OrderCode().AsU16(), st.AsU16()))
			}
		case 0b101:
			switch sq.ExtendedCode().AsU16() {
			case 0b110, 0b111:
				switch st.AsU16() {
				case 0b000:
					return XCH0
				default:
					panic(fmt.Sprintf("subinst: opcode %o with st %o does not exist", sq.OrderCode().AsU16(), st.AsU16()))
				}
			default:
				panic(fmt.Sprintf("subinst: unimplemented opcode %o", sq.OrderCode().AsU16()))
			}
		default:
			panic(fmt.Sprintf("subinst: unimplemented opcode %o", sq.OrderCode().AsU16()))
		}
	}

	panic(fmt.Sprintf("subinst: unimplemented extended opcode %o", sq.ExtendedCode().AsU16()))
}
