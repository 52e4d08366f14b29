// Package i386codegen translates an OpList into raw i386 Linux machine
// code: a runtime prologue that allocates the cell array on the stack,
// one instruction sequence per operation, and an exit epilogue.
package i386codegen

import (
	"github.com/yakubin/lunafuck/internal/addrstack"
	"github.com/yakubin/lunafuck/internal/core"
	"github.com/yakubin/lunafuck/pkg/i386"
)

// Sizes of the fixed sequences, used only to pre-size the code buffer.
const (
	prologueSize = 18
	epilogueSize = 6
	maxOpSize    = 9
)

// Error reports a code generation failure that isn't tied to a source
// offset (unlike core.Error, which reports parse failures).
type Error struct {
	Msg string
}

func (e *Error) Error() string {
	return e.Msg
}

// Generate translates ol into a single contiguous buffer of i386 machine
// code: the prologue, the per-operation sequences of spec's encoding
// table, and the exit epilogue. Loop nesting beyond addrstack.MaxLoops
// fails with a "too many nested loops" error.
func Generate(ol *core.OpList) ([]byte, error) {
	code := make([]byte, 0, maxOpSize*len(ol.Ops)+prologueSize+epilogueSize)
	code = append(code, i386.Prologue()...)

	var loops addrstack.AddrStack

	for _, op := range ol.Ops {
		switch op.Kind {
		case core.CellAdd:
			code = emitCellMove(code, op.Arg, i386.SubEcxImm8, i386.SubEcxImm32)
		case core.CellSub:
			code = emitCellMove(code, op.Arg, i386.AddEcxImm8, i386.AddEcxImm32)

		case core.AsciiAdd:
			if op.Arg == 1 {
				code = append(code, i386.IncByteEcx()...)
			} else {
				code = append(code, i386.AddByteEcxImm8(uint8(op.Arg))...)
			}
		case core.AsciiSub:
			if op.Arg == 1 {
				code = append(code, i386.DecByteEcx()...)
			} else {
				code = append(code, i386.SubByteEcxImm8(uint8(op.Arg))...)
			}

		case core.Out:
			code = append(code, i386.Write()...)
		case core.In:
			code = append(code, i386.Read()...)

		case core.LoopBegin:
			code = append(code, i386.LoopBegin()...)
			if !loops.Push(uint32(len(code))) {
				return nil, &Error{Msg: "too many nested loops"}
			}

		case core.LoopEnd:
			loopBeg := int(loops.Pop())
			code = emitLoopEnd(code, loopBeg)
		}
	}

	code = append(code, i386.Exit()...)
	return code, nil
}

// emitCellMove appends the imm8 or imm32 form of a CELL_ADD/CELL_SUB
// sequence, scaling arg by 2 because each cell occupies two bytes of
// stack (only the low byte of which is ever read or written).
func emitCellMove(code []byte, arg uint32, imm8 func(uint8) []byte, imm32 func(uint32) []byte) []byte {
	operand := 2 * arg
	if operand < 0x80 {
		return append(code, imm8(uint8(operand))...)
	}
	return append(code, imm32(operand)...)
}

// emitLoopEnd appends the backward-jump sequence for ']' and patches the
// forward rel32 of its matching '[' now that the loop's end address is
// known.
func emitLoopEnd(code []byte, loopBeg int) []byte {
	relDis := int32(loopBeg) - int32(len(code)) - 5
	if relDis >= -128 && relDis <= 127 {
		code = append(code, i386.LoopEndShort(int8(relDis))...)
	} else {
		code = append(code, i386.LoopEndLong(relDis-4)...)
	}

	fwd := int32(len(code)) - int32(loopBeg)
	i386.PatchRel32(code, loopBeg-4, fwd)
	return code
}
