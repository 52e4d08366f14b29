// Package i386 encodes the small, fixed set of i386 (IA-32) instructions
// and instruction sequences the code emitter needs. It knows nothing about
// Brainfuck or OpList; it just turns operands into bytes.
package i386

import "encoding/binary"

// writeLE32 packs v into buf as a 32-bit little-endian immediate.
func writeLE32(buf []byte, v uint32) {
	binary.LittleEndian.PutUint32(buf, v)
}
