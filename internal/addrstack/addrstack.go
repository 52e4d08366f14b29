// Package addrstack provides a bounded LIFO of code offsets used to pair
// a Brainfuck '[' with its matching ']' while the code emitter makes a
// single forward pass over the op list.
//
// Brainfuck has no practical benefit from arbitrarily deep loop nesting, so
// the stack is capped: a program that opens more than MaxLoops brackets
// before any of them close is rejected by the emitter rather than the
// stack growing without bound.
package addrstack

// MaxLoops is the maximum number of simultaneously open brackets. Deeper
// nesting is a compile error.
const MaxLoops = 100

// AddrStack is a fixed-capacity stack of code offsets. The zero value is
// an empty stack ready to use. A single instance belongs to one
// compilation; it is not safe, and has no need, to share across
// compilations or goroutines.
type AddrStack struct {
	data [MaxLoops]uint32
	len  int
}

// Push stores addr at the top of the stack. It reports false if the stack
// is already at MaxLoops and leaves the stack unchanged.
func (s *AddrStack) Push(addr uint32) bool {
	if s.len == MaxLoops {
		return false
	}
	s.data[s.len] = addr
	s.len++
	return true
}

// Pop removes and returns the top of the stack. It returns 0 if the stack
// is empty; that 0 is a sentinel, not an error, since the emitter never
// pops an empty stack on correct input (every ']' is matched by a prior
// '[' once the op list has passed bracket validation).
func (s *AddrStack) Pop() uint32 {
	if s.len == 0 {
		return 0
	}
	s.len--
	return s.data[s.len]
}

// Len returns the number of addresses currently on the stack.
func (s *AddrStack) Len() int {
	return s.len
}
