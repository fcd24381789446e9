package program

// Opcode identifies a stack operation.
type Opcode uint8

const (
	// OpcodePush pushes the instruction operand onto the stack.
	OpcodePush Opcode = iota
	// OpcodeAdd pops two values and pushes their sum.
	OpcodeAdd
	// OpcodeMinus pops a value a, then a value b, and pushes b - a.
	OpcodeMinus
	// OpcodeDump pops a value and writes it to standard output in decimal,
	// followed by a newline.
	OpcodeDump
)

// String provides a human-readable representation of an opcode.
func (o Opcode) String() string {
	switch o {
	case OpcodePush:
		return "push"
	case OpcodeAdd:
		return "add"
	case OpcodeMinus:
		return "minus"
	case OpcodeDump:
		return "dump"
	default:
		return "unknown"
	}
}

// Inputs returns the number of stack values consumed by the opcode.
func (o Opcode) Inputs() int {
	switch o {
	case OpcodeAdd, OpcodeMinus:
		return 2
	case OpcodeDump:
		return 1
	default:
		return 0
	}
}
