package controller

// Message types.
type decorationsMsg struct {
	files int
	items []decorationItem
}

type upcomingMsg struct {
	files   int
	threads int
}

type fileDoneMsg struct {
	path        string
	decorations int
}

type generatedMsg struct {
	overlay string
	files   int
	total   int
}

// List item types.
type decorationItem struct {
	name      string
	decorator string
	rule      string
	position  string
}

func (d decorationItem) FilterValue() string {
	return d.name + " " + d.position
}
