// Package codegen lowers stack language programs to x86-64 NASM assembly for
// Linux.
package codegen

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/decdump/decdump/pkg/decimal"
	"github.com/decdump/decdump/pkg/program"
)

// dumpFrameSize is the stack space reserved by the dump routine. It must hold
// a full decimal rendering and keep the stack 16-byte aligned on entry.
const dumpFrameSize = (decimal.MaximumLength+8)&^15 + 8

// prologue declares constants and the dump routine. The routine fills a
// scratch buffer right-to-left, starting with a newline, and emits the
// occupied suffix with a single write system call.
var prologue = fmt.Sprintf(`%%define SYS_WRITE 1
%%define SYS_EXIT 60
%%define STDOUT 1

section .text

dump:
    sub     rsp, %[1]d
    mov     rax, rdi
    mov     rcx, 10
    lea     rsi, [rsp+%[2]d]
    mov     byte [rsi], 10
.digit:
    xor     edx, edx
    div     rcx
    add     dl, '0'
    dec     rsi
    mov     [rsi], dl
    test    rax, rax
    jnz     .digit
    lea     rdx, [rsp+%[3]d]
    sub     rdx, rsi
    mov     eax, SYS_WRITE
    mov     edi, STDOUT
    syscall
    add     rsp, %[1]d
    ret

global _start
_start:
`, dumpFrameSize, decimal.MaximumLength-1, decimal.MaximumLength)

// epilogue terminates the process successfully.
const epilogue = `    mov     eax, SYS_EXIT
    xor     edi, edi
    syscall
`

// immediate formats a value for use as a 64-bit immediate operand. Values
// outside of the signed range are emitted in hexadecimal so that the assembler
// doesn't have to interpret them as unsigned decimal.
func immediate(value uint64) string {
	if value > math.MaxInt64 {
		return fmt.Sprintf("0x%x", value)
	}
	return fmt.Sprintf("%d", value)
}

// Generate writes a NASM translation of p to writer. The program is validated
// before any output is produced.
func Generate(writer io.Writer, p program.Program) error {
	// Ensure that the program can't underflow the machine stack.
	if err := program.Validate(p); err != nil {
		return errors.Wrap(err, "invalid program")
	}

	// Emit the program. Write errors on the buffered writer are sticky, so
	// we only need to check the final flush.
	output := bufio.NewWriter(writer)
	output.WriteString(prologue)
	for i, instruction := range p {
		fmt.Fprintf(output, "    ; %d: %s\n", i, instruction)
		switch instruction.Opcode {
		case program.OpcodePush:
			fmt.Fprintf(output, "    mov     rax, %s\n", immediate(instruction.Operand))
			output.WriteString("    push    rax\n")
		case program.OpcodeAdd:
			output.WriteString("    pop     rax\n")
			output.WriteString("    pop     rbx\n")
			output.WriteString("    add     rbx, rax\n")
			output.WriteString("    push    rbx\n")
		case program.OpcodeMinus:
			output.WriteString("    pop     rax\n")
			output.WriteString("    pop     rbx\n")
			output.WriteString("    sub     rbx, rax\n")
			output.WriteString("    push    rbx\n")
		case program.OpcodeDump:
			output.WriteString("    pop     rdi\n")
			output.WriteString("    call    dump\n")
		}
	}
	output.WriteString(epilogue)
	if err := output.Flush(); err != nil {
		return errors.Wrap(err, "unable to write assembly")
	}

	// Success.
	return nil
}
