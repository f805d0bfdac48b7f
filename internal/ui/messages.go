package ui

import (
	"palette/internal/extension"
)

// externalResultsMsg carries an external search response back onto the
// update loop. seq is the sequence number handed out when the query was
// issued; gen identifies which view mount issued it, so a slow response
// from a previous view can never be applied to the index of a newer
// one, even when the fresh index has reused the old sequence number.
type externalResultsMsg struct {
	gen   uint64
	seq   uint64
	items []extension.Item
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// toggleMsg asks the panel to flip visibility, the terminal stand-in
// for a global hotkey press delivered from outside.
type toggleMsg struct{}
