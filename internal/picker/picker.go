// Package picker presents interactive selection menus over candidate
// lines. The capability is an interface so command logic can be tested
// with scripted selections instead of a live terminal.
package picker

// PreviewFunc renders content for the picker's preview pane, given the
// pane's width and height in cells.
type PreviewFunc func(width, height int) string

// Options configure a single picker invocation.
type Options struct {
	// Prompt is shown before the query line.
	Prompt string

	// Header is shown above the candidate list.
	Header string

	// Query pre-fills the query line. For Input, it is the initial
	// text being edited.
	Query string

	// Preview, when set, enables a preview pane beside the list.
	Preview PreviewFunc
}

// Picker asks the user to choose from a list or enter free text.
type Picker interface {
	// Pick presents the candidates and returns the selected one.
	// ok is false when the user aborts; that is not an error, and the
	// caller treats it as "nothing selected".
	Pick(candidates []string, opts Options) (selection string, ok bool, err error)

	// Input presents an empty list with an editable query and returns
	// the edited text, whether or not it matches anything. ok is false
	// when the user aborts.
	Input(opts Options) (text string, ok bool, err error)
}
