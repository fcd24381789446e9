// Package interpreter executes stack language programs directly.
package interpreter

import (
	"io"

	"github.com/pkg/errors"

	"github.com/decdump/decdump/pkg/decimal"
	"github.com/decdump/decdump/pkg/logging"
	"github.com/decdump/decdump/pkg/program"
)

// Machine is a stack machine. Arithmetic is performed on 64-bit unsigned
// values and wraps on overflow, matching the behavior of compiled programs.
// A Machine is not safe for concurrent usage.
type Machine struct {
	// output is the destination for dumped values.
	output io.Writer
	// logger is the underlying logger.
	logger *logging.Logger
	// stack is the value stack, with the top at the end.
	stack []uint64
}

// NewMachine creates a new machine that dumps values to output.
func NewMachine(output io.Writer, logger *logging.Logger) *Machine {
	return &Machine{
		output: output,
		logger: logger,
	}
}

// Stack returns a copy of the current stack contents, bottom first.
func (m *Machine) Stack() []uint64 {
	result := make([]uint64, len(m.stack))
	copy(result, m.stack)
	return result
}

// pop removes and returns the top stack value. Callers must verify depth.
func (m *Machine) pop() uint64 {
	value := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return value
}

// Execute runs each instruction of p in order. Execution stops at the first
// failing instruction, leaving the stack as it was before that instruction.
func (m *Machine) Execute(p program.Program) error {
	for i, instruction := range p {
		// Verify that sufficient operands are available.
		if len(m.stack) < instruction.Opcode.Inputs() {
			return &program.UnderflowError{Index: i, Instruction: instruction, Depth: len(m.stack)}
		}

		m.logger.Tracef("executing %s with depth %d", instruction, len(m.stack))

		// Perform the operation.
		switch instruction.Opcode {
		case program.OpcodePush:
			m.stack = append(m.stack, instruction.Operand)
		case program.OpcodeAdd:
			a := m.pop()
			b := m.pop()
			m.stack = append(m.stack, b+a)
		case program.OpcodeMinus:
			a := m.pop()
			b := m.pop()
			m.stack = append(m.stack, b-a)
		case program.OpcodeDump:
			value := m.stack[len(m.stack)-1]
			if err := decimal.DumpTo(m.output, value); err != nil {
				return errors.Wrapf(err, "unable to dump value at instruction %d", i)
			}
			m.pop()
		default:
			return errors.Errorf("unknown opcode at instruction %d: %d", i, instruction.Opcode)
		}
	}

	// Success.
	return nil
}
