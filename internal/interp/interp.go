// Package interp provides a reference Brainfuck interpreter over OpList.
// It is not part of the compiler's production path — the compiler always
// emits native code — but serves as a behavioral oracle for the test
// suite: running a program under this interpreter predicts what the
// compiled native executable is expected to do, independent of the exact
// bytes the code emitter produces for it.
package interp

import (
	"io"

	"github.com/yakubin/lunafuck/internal/core"
)

// CellCount matches the number of 16-bit cells the compiled prologue
// allocates on the stack (spec's runtime prologue pushes 0x8000 cells).
const CellCount = 0x8000

// Interp executes OpList operations over a byte tape.
type Interp struct {
	input  io.Reader
	output io.Writer
	memory []byte
	dp     int
	ioBuf  [1]byte
}

// Option configures an Interp.
type Option func(*Interp)

// WithInput sets the input reader (default: no input available).
func WithInput(r io.Reader) Option {
	return func(i *Interp) { i.input = r }
}

// WithOutput sets the output writer (default: discard).
func WithOutput(w io.Writer) Option {
	return func(i *Interp) { i.output = w }
}

// New creates an Interp with the given options.
func New(opts ...Option) *Interp {
	in := &Interp{
		memory: make([]byte, CellCount),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Run executes ops against the interpreter's tape.
//
// IN leaves the cell unchanged on EOF or read error, matching spec's
// stated behavior: the compiled code's `read` syscall result is never
// checked, so on EOF the cell simply keeps its previous value.
func (in *Interp) Run(ol *core.OpList) error {
	pc := 0
	ops := ol.Ops

	for pc < len(ops) {
		op := ops[pc]

		switch op.Kind {
		case core.CellAdd:
			in.dp += int(op.Arg)
		case core.CellSub:
			in.dp -= int(op.Arg)

		case core.AsciiAdd:
			in.memory[in.dp] += byte(op.Arg)
		case core.AsciiSub:
			in.memory[in.dp] -= byte(op.Arg)

		case core.In:
			if in.input != nil {
				n, err := in.input.Read(in.ioBuf[:])
				if err == nil && n == 1 {
					in.memory[in.dp] = in.ioBuf[0]
				}
				// EOF or error: cell unchanged, per spec.
			}

		case core.Out:
			in.ioBuf[0] = in.memory[in.dp]
			if in.output != nil {
				if _, err := in.output.Write(in.ioBuf[:]); err != nil {
					return err
				}
			}

		case core.LoopBegin:
			if in.memory[in.dp] == 0 {
				pc = matchingLoopEnd(ops, pc)
				continue
			}

		case core.LoopEnd:
			if in.memory[in.dp] != 0 {
				pc = matchingLoopBegin(ops, pc)
				continue
			}
		}

		pc++
	}

	return nil
}

// matchingLoopEnd finds the index of the ']' matching the '[' at pc.
func matchingLoopEnd(ops []core.Op, pc int) int {
	depth := 0
	for i := pc; i < len(ops); i++ {
		switch ops[i].Kind {
		case core.LoopBegin:
			depth++
		case core.LoopEnd:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(ops) - 1
}

// matchingLoopBegin finds the index of the '[' matching the ']' at pc.
func matchingLoopBegin(ops []core.Op, pc int) int {
	depth := 0
	for i := pc; i >= 0; i-- {
		switch ops[i].Kind {
		case core.LoopEnd:
			depth++
		case core.LoopBegin:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return 0
}
