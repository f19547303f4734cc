// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt asks the user for a category and an author name, either
// through interactive terminal forms or plain line input.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/pdiddy/coauthor-engine/pkg/types"
)

// CategoryTitle is the question asked before loading a snapshot.
const CategoryTitle = "Enter the category of articles you would like to search for out of Physics, Mathematics, Computer Science, Quantitative Biology, Quantitative Finance, and Statistics"

// AuthorTitle is the question asked before comparing an author.
const AuthorTitle = "Enter the name of the author you would like to see the number of unique co-authors for"

// ErrAborted is returned when the user cancels a prompt or input ends.
var ErrAborted = errors.New("prompt aborted")

// Prompter asks questions and returns the answers.
type Prompter interface {
	// Choose asks for one of options. Implementations that accept free text
	// may return a value outside options; callers validate.
	Choose(ctx context.Context, title string, options []string) (string, error)

	// Input asks for free text.
	Input(ctx context.Context, title string) (string, error)
}

// New returns a Form prompter when in is a terminal and a Line prompter
// otherwise.
func New(in *os.File, out io.Writer) Prompter {
	fd := in.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return &Form{}
	}
	return NewLine(in, out)
}

// Category asks for a category and resolves it. Input that names no
// category is reported on w and returned as types.ErrInvalidCategory.
// Form offers only valid choices, so only free-text prompters such as Line
// reach that path.
func Category(ctx context.Context, p Prompter, w io.Writer) (types.Category, error) {
	answer, err := p.Choose(ctx, CategoryTitle, types.CategoryNames())
	if err != nil {
		return types.Category{}, err
	}
	c, err := types.ParseCategory(answer)
	if err != nil {
		fmt.Fprintln(w, "Invalid category. Please try again.")
		return types.Category{}, err
	}
	return c, nil
}

// Author asks for an author name, trimming surrounding whitespace.
func Author(ctx context.Context, p Prompter) (string, error) {
	answer, err := p.Input(ctx, AuthorTitle)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// Form prompts with charmbracelet/huh fields.
type Form struct {
	// Accessible switches huh to its screen-reader friendly mode.
	Accessible bool
}

// Choose shows a select list of options.
func (f *Form) Choose(ctx context.Context, title string, options []string) (string, error) {
	var choice string
	sel := huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(options...)...).
		Value(&choice)
	if err := f.run(ctx, sel); err != nil {
		return "", err
	}
	return choice, nil
}

// Input shows a single-line text field.
func (f *Form) Input(ctx context.Context, title string) (string, error) {
	var answer string
	in := huh.NewInput().Title(title).Value(&answer)
	if err := f.run(ctx, in); err != nil {
		return "", err
	}
	return answer, nil
}

func (f *Form) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).WithAccessible(f.Accessible)
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}

// Line prompts by writing the question and reading one line of input.
type Line struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLine returns a Line prompter reading from in and writing to out.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: bufio.NewReader(in), out: out}
}

// Choose writes the question and returns the raw answer.
func (l *Line) Choose(ctx context.Context, title string, _ []string) (string, error) {
	return l.Input(ctx, title)
}

// Input writes "title: " and reads a line. Input that ends before any text
// is read yields ErrAborted.
func (l *Line) Input(ctx context.Context, title string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprintf(l.out, "%s: ", title); err != nil {
		return "", err
	}
	line, err := l.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
