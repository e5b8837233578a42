package gallery

// Entry is one component shown in the gallery.
type Entry struct {
	Name    string
	Details string
	// Render draws the component for the given content width.
	Render func(width int) string
}

// ReloadMsg replaces the gallery entries. A non-nil Err keeps the current
// entries and shows the error instead.
type ReloadMsg struct {
	Entries []Entry
	Err     error
}
