package taskio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dkrasov/wrapgrid/geom"
)

// InstructionType is one of the thirteen instruction letters.
type InstructionType byte

const (
	Up               InstructionType = 'W'
	Down             InstructionType = 'S'
	Left             InstructionType = 'A'
	Right            InstructionType = 'D'
	RotateCW         InstructionType = 'E'
	RotateCCW        InstructionType = 'Q'
	NoOp             InstructionType = 'Z'
	AttachManip      InstructionType = 'B'
	UseFastWheels    InstructionType = 'F'
	UseDrill         InstructionType = 'L'
	PlaceBeacon      InstructionType = 'R'
	Teleport         InstructionType = 'T'
	Clone            InstructionType = 'C'
)

// HasArgument reports whether this instruction type carries a point
// argument (only AttachManip and Teleport do).
func (t InstructionType) HasArgument() bool {
	return t == AttachManip || t == Teleport
}

func (t InstructionType) String() string {
	return string(rune(t))
}

// Instruction is one agent action: a type plus, for AttachManip and
// Teleport, a point argument.
type Instruction struct {
	Type InstructionType
	Arg  geom.Point
}

// String renders the instruction in wire format: the type letter,
// followed by "(x,y)" for AttachManip and Teleport.
func (i Instruction) String() string {
	if i.Type.HasArgument() {
		return fmt.Sprintf("%s(%d,%d)", i.Type, i.Arg.X, i.Arg.Y)
	}
	return i.Type.String()
}

// Program is one agent's full instruction sequence.
type Program []Instruction

// String concatenates the program's instructions with no separator.
func (p Program) String() string {
	var b strings.Builder
	for _, inst := range p {
		b.WriteString(inst.String())
	}
	return b.String()
}

// Solution is one program per agent, agent 0 first.
type Solution []Program

// String joins the programs with "#", the exact inverse of ParseSolution.
func (s Solution) String() string {
	parts := make([]string, len(s))
	for i, p := range s {
		parts[i] = p.String()
	}
	return strings.Join(parts, "#")
}

var validTypes = map[byte]InstructionType{
	'W': Up, 'S': Down, 'A': Left, 'D': Right,
	'E': RotateCW, 'Q': RotateCCW, 'Z': NoOp,
	'B': AttachManip, 'F': UseFastWheels, 'L': UseDrill,
	'R': PlaceBeacon, 'T': Teleport, 'C': Clone,
}

// ParseProgram decodes a concatenated instruction token string into a
// Program. B and T tokens must be immediately followed by a
// parenthesised point argument with no intervening whitespace.
func ParseProgram(s string) (Program, error) {
	var program Program
	for i := 0; i < len(s); i++ {
		t, ok := validTypes[s[i]]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownInstruction, s[i])
		}
		inst := Instruction{Type: t}
		if t.HasArgument() {
			end := strings.IndexByte(s[i:], ')')
			if end < 0 {
				return nil, fmt.Errorf("%w: %q", ErrMissingArgument, s[i:])
			}
			end += i
			p, err := parsePoint(s[i+1 : end+1])
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrMalformedPoint, s[i:end+1])
			}
			inst.Arg = p
			i = end
		}
		program = append(program, inst)
	}
	return program, nil
}

// ParseSolution decodes a "#"-separated list of programs. This is the
// exact inverse of Solution.String.
func ParseSolution(s string) (Solution, error) {
	parts := strings.Split(s, "#")
	solution := make(Solution, 0, len(parts))
	for idx, part := range parts {
		program, err := ParseProgram(part)
		if err != nil {
			return nil, &ParseError{Section: "program " + strconv.Itoa(idx), Token: part, Err: err}
		}
		solution = append(solution, program)
	}
	return solution, nil
}
