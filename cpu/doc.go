// Package cpu implements the processor, loader and assembler for the LS-8
// system.
//
// The LS-8 is an 8-bit machine with eight 8-bit general-purpose registers
// (R0-R7, with R7 reserved as the stack pointer), 256 bytes of memory, a
// program counter, and a flag register holding the result of the most
// recent comparison. Instructions are one to three bytes long: an opcode
// followed by up to two operand bytes.
//
// All state is 8 bits wide. Register values, memory addresses, the program
// counter and the stack pointer wrap modulo 256.
//
// The loader reads the textual binary form (one base-2 byte per line), and
// the assembler accepts mnemonic source with labels, equates and
// compile-time expressions.
package cpu
