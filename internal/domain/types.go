package domain

import (
	"strconv"
	"strings"
)

// Disk is identified by its size. NoDisk is returned by Peek and Pop on an empty peg.
type Disk int

const NoDisk Disk = 0

// Peg is a stack of disks, bottom first. Sizes never increase towards the top.
type Peg struct {
	disks []Disk
}

// NewPeg returns a peg loaded with n, n-1, ..., 1 (smallest on top).
func NewPeg(n int) *Peg {
	p := &Peg{disks: make([]Disk, 0, max(n, 0))}
	for d := n; d > 0; d-- {
		p.disks = append(p.disks, Disk(d))
	}
	return p
}

func (p *Peg) Count() int { return len(p.disks) }

func (p *Peg) Peek() Disk {
	if len(p.disks) == 0 {
		return NoDisk
	}
	return p.disks[len(p.disks)-1]
}

func (p *Peg) Pop() Disk {
	if len(p.disks) == 0 {
		return NoDisk
	}
	d := p.disks[len(p.disks)-1]
	p.disks = p.disks[:len(p.disks)-1]
	return d
}

// Push places d on top if it is a real disk no larger than the current top.
func (p *Peg) Push(d Disk) bool {
	if d <= NoDisk {
		return false
	}
	if len(p.disks) > 0 && d > p.Peek() {
		return false
	}
	p.disks = append(p.disks, d)
	return true
}

// Disks returns a copy of the stack, bottom first.
func (p *Peg) Disks() []Disk {
	out := make([]Disk, len(p.disks))
	copy(out, p.disks)
	return out
}

func (p *Peg) String() string {
	parts := make([]string, len(p.disks))
	for i, d := range p.disks {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, " ")
}

// Move transfers the top disk of From onto To.
type Move struct {
	From Role
	To   Role
}

// ParseMove decodes a two-letter command such as "OD". Letters are case-insensitive.
func ParseMove(code string) (Move, error) {
	if len(code) != 2 {
		return Move{}, ErrMoveFormat
	}
	from, err := ParseRole(code[0])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseRole(code[1])
	if err != nil {
		return Move{}, err
	}
	if from == to {
		return Move{}, ErrSamePeg
	}
	return Move{From: from, To: to}, nil
}

// Code is the command form of the move, e.g. "OD".
func (m Move) Code() string {
	return string([]byte{m.From.Letter(), m.To.Letter()})
}

func (m Move) String() string { return m.Code() }

// Board holds the three pegs, indexed by Role.
type Board struct {
	pegs [3]*Peg
}

// NewBoard puts n disks on the origin peg and leaves the others empty.
func NewBoard(n int) *Board {
	return &Board{pegs: [3]*Peg{NewPeg(n), NewPeg(0), NewPeg(0)}}
}

// BoardOf builds a board from explicit stacks, bottom first. Stacks that break the
// ordering rule are rejected with ErrIllegalPosition.
func BoardOf(origin, destination, auxiliary []Disk) (*Board, error) {
	b := &Board{}
	for i, stack := range [3][]Disk{origin, destination, auxiliary} {
		p := NewPeg(0)
		for _, d := range stack {
			if !p.Push(d) {
				return nil, ErrIllegalPosition
			}
		}
		b.pegs[i] = p
	}
	return b, nil
}

func (b *Board) Peg(r Role) *Peg { return b.pegs[r] }

// Disks is the total number of disks across all pegs.
func (b *Board) Disks() int {
	n := 0
	for _, p := range b.pegs {
		n += p.Count()
	}
	return n
}

// Positions maps each disk size to the peg holding it (index 0 unused).
// The board must hold exactly the disks 1..Disks().
func (b *Board) Positions() ([]Role, error) {
	n := b.Disks()
	pos := make([]Role, n+1)
	seen := make([]bool, n+1)
	for _, r := range Roles {
		for _, d := range b.pegs[r].disks {
			if d < 1 || int(d) > n || seen[d] {
				return nil, ErrIllegalPosition
			}
			seen[d] = true
			pos[d] = r
		}
	}
	return pos, nil
}
