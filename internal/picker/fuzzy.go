package picker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/muesli/reflow/truncate"
)

// Fuzzy is the production Picker: an in-process fuzzy finder for list
// selection and an inline text field for free-text entry. Both own the
// terminal until the user responds.
type Fuzzy struct{}

// NewFuzzy returns the interactive picker.
func NewFuzzy() Fuzzy {
	return Fuzzy{}
}

// Pick runs the fuzzy finder over the candidates.
func (Fuzzy) Pick(candidates []string, opts Options) (string, bool, error) {
	finderOpts := make([]fuzzyfinder.Option, 0, 4)
	if opts.Prompt != "" {
		finderOpts = append(finderOpts, fuzzyfinder.WithPromptString(opts.Prompt))
	}
	if opts.Header != "" {
		finderOpts = append(finderOpts, fuzzyfinder.WithHeader(opts.Header))
	}
	if opts.Query != "" {
		finderOpts = append(finderOpts, fuzzyfinder.WithQuery(opts.Query))
	}
	if opts.Preview != nil {
		finderOpts = append(finderOpts, fuzzyfinder.WithPreviewWindow(func(i, width, height int) string {
			return clipLines(opts.Preview(width, height), width)
		}))
	}

	idx, err := fuzzyfinder.Find(
		candidates,
		func(i int) string { return candidates[i] },
		finderOpts...,
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("run finder: %w", err)
	}

	return candidates[idx], true, nil
}

// Input edits a line of text, pre-filled from opts.Query.
func (Fuzzy) Input(opts Options) (string, bool, error) {
	value := opts.Query
	field := huh.NewInput().Title(strings.TrimSpace(opts.Prompt)).Value(&value)
	if opts.Header != "" {
		field = field.Description(opts.Header)
	}

	if err := field.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("run input: %w", err)
	}

	return value, true, nil
}

// clipLines truncates each line of content to the preview pane width.
func clipLines(content string, width int) string {
	if width <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = truncate.String(line, uint(width))
	}
	return strings.Join(lines, "\n")
}
