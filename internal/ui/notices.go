package ui

// NoticeKind classifies a notice for styling.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeWarn
	NoticeError
)

// Notice is a short message for the status line.
type Notice struct {
	Kind NoticeKind
	Text string
}

// Notices collects messages raised outside the key loop, such as fallback
// redirects during boot or history moves. The model drains it after every
// navigation. All access happens on the Bubble Tea goroutine.
type Notices struct {
	items []Notice
}

// NewNotices creates an empty notice box.
func NewNotices() *Notices {
	return &Notices{}
}

// Push appends a notice.
func (n *Notices) Push(kind NoticeKind, text string) {
	n.items = append(n.items, Notice{Kind: kind, Text: text})
}

// Drain returns all pending notices and clears the box.
func (n *Notices) Drain() []Notice {
	items := n.items
	n.items = nil
	return items
}
