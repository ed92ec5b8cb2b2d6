package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"svw.info/hanoi/internal/domain"
)

// View writes the game to a terminal. Styles degrade to plain text when w is not
// a colour-capable terminal.
type View struct {
	w io.Writer

	label   lipgloss.Style
	disks   lipgloss.Style
	key     lipgloss.Style
	warn    lipgloss.Style
	success lipgloss.Style
	dim     lipgloss.Style
}

func NewView(w io.Writer) *View {
	r := lipgloss.NewRenderer(w)
	return &View{
		w:       w,
		label:   r.NewStyle().Foreground(lipgloss.Color("45")),
		disks:   r.NewStyle().Foreground(lipgloss.Color("231")).Bold(true),
		key:     r.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		warn:    r.NewStyle().Foreground(lipgloss.Color("226")),
		success: r.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		dim:     r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Board prints the pegs in fixed order followed by a blank line.
func (v *View) Board(b *domain.Board) {
	for _, r := range domain.Roles {
		v.println(v.label.Render(r.String()+":") + " " + v.disks.Render(b.Peg(r).String()))
	}
	v.println("")
}

func (v *View) Instructions() {
	v.println("To move a disk, enter two letters naming the source and destination pegs.")
	v.println("For example, " + v.key.Render("OD") + " moves a disk from the origin peg to the destination peg.")
	v.println("Valid letters are " + v.key.Render("O") + " (origin), " + v.key.Render("D") +
		" (destination) and " + v.key.Render("A") + " (auxiliary).")
	v.println("To give up and see the solution, enter " + v.key.Render(SurrenderKey) + ".")
}

func (v *View) Moved(d domain.Disk, m domain.Move) {
	v.println(fmt.Sprintf("You moved disk %d from peg %c to peg %c.", d, m.From.Letter(), m.To.Letter()))
}

func (v *View) DifficultyMenu() {
	v.println("Choose the difficulty level:")
	for _, d := range []domain.Difficulty{domain.Easy, domain.Normal, domain.Hard} {
		v.println(fmt.Sprintf("%s - %s (%d disks)", v.key.Render(d.Letter()), difficultyName(d), d.Disks()))
	}
	v.print("Enter your choice: ")
}

func (v *View) Prompt() { v.print("Enter your move: ") }

func (v *View) Invalid() { v.println(v.warn.Render("Invalid move. Try again.")) }

func (v *View) Surrendered() { v.println("You gave up. Here is the solution:") }

func (v *View) Victory(moves int) {
	v.println(v.success.Render("Congratulations! You solved the puzzle."))
	v.println(fmt.Sprintf("You made %d moves.", moves))
}

// AutoSolved closes a surrendered game.
func (v *View) AutoSolved(steps, moves int, solved bool) {
	if solved {
		v.println(fmt.Sprintf("Solved automatically in %d moves.", steps))
	} else {
		v.println(fmt.Sprintf("The solver made %d moves.", steps))
	}
	v.println(v.dim.Render(fmt.Sprintf("You made %d moves before giving up.", moves)))
}

func (v *View) Failure(err error) {
	v.println(v.warn.Render("The solution could not be completed: " + err.Error()))
}

func (v *View) println(s string) { fmt.Fprintln(v.w, s) }

func (v *View) print(s string) { fmt.Fprint(v.w, s) }

func difficultyName(d domain.Difficulty) string {
	switch d {
	case domain.Normal:
		return "Normal"
	case domain.Hard:
		return "Hard"
	default:
		return "Easy"
	}
}
