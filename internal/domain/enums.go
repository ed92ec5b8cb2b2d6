package domain

import "strings"

// Difficulty selects how many disks a session starts with.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
)

// ParseDifficulty maps the menu letters F, N and D. Anything else is Easy.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "N":
		return Normal
	case "D":
		return Hard
	default:
		return Easy
	}
}

// Disks returns the tower height for the preset.
func (d Difficulty) Disks() int {
	switch d {
	case Normal:
		return 5
	case Hard:
		return 7
	default:
		return 3
	}
}

// Letter is the menu key for the preset.
func (d Difficulty) Letter() string {
	switch d {
	case Normal:
		return "N"
	case Hard:
		return "D"
	default:
		return "F"
	}
}

func (d Difficulty) String() string {
	switch d {
	case Normal:
		return "normal"
	case Hard:
		return "hard"
	default:
		return "easy"
	}
}

// Role identifies one of the three pegs. The order is the rendering order.
type Role int

const (
	Origin Role = iota
	Destination
	Auxiliary
)

// Roles lists every peg role in rendering order.
var Roles = [3]Role{Origin, Destination, Auxiliary}

// ParseRole resolves a peg letter (O, D or A, case-insensitive).
func ParseRole(letter byte) (Role, error) {
	switch letter {
	case 'O', 'o':
		return Origin, nil
	case 'D', 'd':
		return Destination, nil
	case 'A', 'a':
		return Auxiliary, nil
	default:
		return 0, &LetterError{Letter: letter}
	}
}

// Letter is the single-character code used in move commands.
func (r Role) Letter() byte {
	switch r {
	case Destination:
		return 'D'
	case Auxiliary:
		return 'A'
	default:
		return 'O'
	}
}

func (r Role) String() string {
	switch r {
	case Destination:
		return "Destination"
	case Auxiliary:
		return "Auxiliary"
	default:
		return "Origin"
	}
}

// Spare returns the role that is neither a nor b. a and b must differ.
func Spare(a, b Role) Role {
	return 3 - a - b
}
