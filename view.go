package cardview

// DefaultRatio is the initial percentage of horizontal space given to the
// left pane.
const DefaultRatio = 40

// DisplayMode is the effective visibility of the two views.
type DisplayMode int

// Display modes.
const (
	ModeBoth DisplayMode = iota
	ModePrompt
	ModeDetail
)

// String returns the mode name as shown in the status bar.
func (m DisplayMode) String() string {
	switch m {
	case ModePrompt:
		return "prompt"
	case ModeDetail:
		return "detail"
	default:
		return "both"
	}
}

// PaneSpec describes one pane to be drawn: its full text and the shared
// scroll offset.
type PaneSpec struct {
	Text   string
	Offset int
}

// RenderPlan is the pure answer to "what should be on screen". A nil pane is
// omitted from layout. Width percentages always sum to 100.
type RenderPlan struct {
	Left          *PaneSpec
	Right         *PaneSpec
	LeftWidthPct  int
	RightWidthPct int
}

// ViewState is the runtime session state. Its methods are pure: each returns
// the successor state and leaves the receiver unchanged, so a caller can
// treat the state as a value.
type ViewState struct {
	Doc     *Document
	Offset  int
	Hidden  bool
	Reverse bool
	Ratio   int
	Exiting bool
}

// NewViewState returns the initial state for a document: scrolled to the
// top, both panes visible, default split.
func NewViewState(doc *Document) ViewState {
	if doc == nil {
		doc = &Document{}
	}
	return ViewState{Doc: doc, Ratio: DefaultRatio}
}

// ScrollUp moves the shared offset up by n, saturating at zero.
func (v ViewState) ScrollUp(n int) ViewState {
	v.Offset -= n
	if v.Offset < 0 {
		v.Offset = 0
	}
	return v
}

// ScrollDown moves the shared offset down by n, clamping so the last line
// stays reachable. Safe on an empty document.
func (v ViewState) ScrollDown(n int) ViewState {
	if max := v.Doc.MaxOffset(); v.Offset+n > max {
		v.Offset = max
	} else {
		v.Offset += n
	}
	return v
}

// ToggleHidden flips whether one pane is suppressed.
func (v ViewState) ToggleHidden() ViewState {
	v.Hidden = !v.Hidden
	return v
}

// ToggleReverse swaps which view occupies which pane. While hidden, it
// switches which view is the visible one.
func (v ViewState) ToggleReverse() ViewState {
	v.Reverse = !v.Reverse
	return v
}

// SetRatio sets the left pane's share of horizontal space, clamped to
// [0, 100].
func (v ViewState) SetRatio(pct int) ViewState {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	v.Ratio = pct
	return v
}

// AdjustRatio moves the split by delta percentage points, clamped to
// [0, 100].
func (v ViewState) AdjustRatio(delta int) ViewState {
	return v.SetRatio(v.Ratio + delta)
}

// Exit marks the session as finished. The flag is never cleared.
func (v ViewState) Exit() ViewState {
	v.Exiting = true
	return v
}

// SetDocument replaces the document, e.g. after a reload, re-clamping the
// offset into the new document's range.
func (v ViewState) SetDocument(doc *Document) ViewState {
	if doc == nil {
		doc = &Document{}
	}
	v.Doc = doc
	if max := doc.MaxOffset(); v.Offset > max {
		v.Offset = max
	}
	return v
}

// Mode returns the effective display mode encoded by the hidden and reverse
// flags.
func (v ViewState) Mode() DisplayMode {
	switch {
	case !v.Hidden:
		return ModeBoth
	case v.Reverse:
		return ModeDetail
	default:
		return ModePrompt
	}
}

// Plan returns what to render. The prompt view occupies the left slot unless
// Reverse swaps the contents. When Hidden, the right slot is omitted, so the
// surviving slot shows the prompt view normally and the detail view under
// Reverse. Both panes share the same offset. A nil document plans two empty
// panes.
func (v ViewState) Plan() RenderPlan {
	doc := v.Doc
	if doc == nil {
		doc = &Document{}
	}
	left, right := doc.PromptText, doc.DetailText
	if v.Reverse {
		left, right = right, left
	}
	plan := RenderPlan{
		Left:          &PaneSpec{Text: left, Offset: v.Offset},
		LeftWidthPct:  v.Ratio,
		RightWidthPct: 100 - v.Ratio,
	}
	if !v.Hidden {
		plan.Right = &PaneSpec{Text: right, Offset: v.Offset}
	}
	return plan
}
