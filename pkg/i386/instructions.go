package i386

// This file contains i386 instruction encoders used by the code emitter.
// Each function returns the raw machine code bytes for one instruction or
// fixed instruction sequence. The encodings themselves are dictated by the
// ABI this compiler targets (ECX as data pointer, EDX preloaded with a
// syscall buffer length of 1, int 0x80 for syscalls) rather than derived
// generically, so there is no ModRM/SIB computation here beyond what each
// comment documents.

// Prologue returns the 18-byte runtime setup sequence: it pushes one
// 16-bit zero, sets ECX to point at it (the data pointer, top of the cell
// array), preloads DL with 1 (the syscall buffer length used by every
// read/write), then pushes 0x7FFF more 16-bit zeros in a small loop. Net
// effect: 32768 zeroed 16-bit cells on the stack with ECX at the first
// one.
func Prologue() []byte {
	return []byte{
		0x66, 0x6a, 0x00, // push word 0
		0x89, 0xe1, // mov ecx, esp
		0xb2, 0x01, // mov dl, 1
		0x66, 0xb8, 0xff, 0x7f, // mov ax, 0x7fff
		0x66, 0x6a, 0x00, // push word 0
		0x66, 0x48, // dec ax
		0x75, 0xf9, // jnz -7
	}
}

// Exit returns the 6-byte exit(0) epilogue.
func Exit() []byte {
	return []byte{0xb0, 0x01, 0xb3, 0x00, 0xcd, 0x80}
}

// SubEcxImm8 encodes: sub ecx, imm8 (83 E9 imm8)
func SubEcxImm8(imm8 uint8) []byte {
	return []byte{0x83, 0xe9, imm8}
}

// SubEcxImm32 encodes: sub ecx, imm32 (81 E9 <imm32>)
func SubEcxImm32(imm32 uint32) []byte {
	buf := make([]byte, 6)
	buf[0] = 0x81
	buf[1] = 0xe9
	writeLE32(buf[2:], imm32)
	return buf
}

// AddEcxImm8 encodes: add ecx, imm8 (83 C1 imm8)
func AddEcxImm8(imm8 uint8) []byte {
	return []byte{0x83, 0xc1, imm8}
}

// AddEcxImm32 encodes: add ecx, imm32 (81 C1 <imm32>)
func AddEcxImm32(imm32 uint32) []byte {
	buf := make([]byte, 6)
	buf[0] = 0x81
	buf[1] = 0xc1
	writeLE32(buf[2:], imm32)
	return buf
}

// IncByteEcx encodes: inc byte [ecx] (FE 01)
func IncByteEcx() []byte {
	return []byte{0xfe, 0x01}
}

// AddByteEcxImm8 encodes: add byte [ecx], imm8 (80 01 imm8)
func AddByteEcxImm8(imm8 uint8) []byte {
	return []byte{0x80, 0x01, imm8}
}

// DecByteEcx encodes: dec byte [ecx] (FE 09)
func DecByteEcx() []byte {
	return []byte{0xfe, 0x09}
}

// SubByteEcxImm8 encodes: sub byte [ecx], imm8 (80 29 imm8)
func SubByteEcxImm8(imm8 uint8) []byte {
	return []byte{0x80, 0x29, imm8}
}

// Write encodes the 6-byte write(1, ecx, 1) syscall sequence. It relies on
// DL already being 1, as set up by Prologue.
func Write() []byte {
	return []byte{0xb0, 0x04, 0xb3, 0x01, 0xcd, 0x80}
}

// Read encodes the 6-byte read(0, ecx, 1) syscall sequence. It relies on
// DL already being 1, as set up by Prologue.
func Read() []byte {
	return []byte{0xb0, 0x03, 0xb3, 0x00, 0xcd, 0x80}
}

// LoopBegin encodes the 9-byte sequence for '[': cmp byte [ecx], 0; jz
// rel32. The rel32 slot (the last 4 bytes) is left zero for the caller to
// patch once the matching ']' has been emitted.
func LoopBegin() []byte {
	return []byte{0x80, 0x39, 0x00, 0x0f, 0x84, 0x00, 0x00, 0x00, 0x00}
}

// PatchRel32 overwrites the 4-byte little-endian rel32 slot located at
// code[slotOffset:slotOffset+4].
func PatchRel32(code []byte, slotOffset int, rel32 int32) {
	writeLE32(code[slotOffset:], uint32(rel32))
}

// LoopEndShort encodes the 5-byte short form of ']': cmp byte [ecx], 0;
// jnz rel8.
func LoopEndShort(disp8 int8) []byte {
	return []byte{0x80, 0x39, 0x00, 0x75, byte(disp8)}
}

// LoopEndLong encodes the 9-byte long form of ']': cmp byte [ecx], 0; jnz
// rel32.
func LoopEndLong(rel32 int32) []byte {
	buf := []byte{0x80, 0x39, 0x00, 0x0f, 0x85, 0x00, 0x00, 0x00, 0x00}
	writeLE32(buf[5:], uint32(rel32))
	return buf
}
