// Package tui implements the interactive terminal viewer.
//
// The viewer renders a document's flattened text, soft-wrapped to the
// terminal width, and lets the user select and highlight text in place:
//
//	h j k l / arrows  move the cursor
//	v                 set or drop the selection anchor
//	Escape            drop the anchor
//	w                 expand the selection to word boundaries
//	H                 highlight the selection
//	u                 remove the most recent highlight
//	y                 yank the selection to the system clipboard
//	W                 write the document
//	r                 reload the document from disk
//	q / Ctrl-C        quit
//
// State handling lives in Model, which never touches the terminal; App
// couples a Model to a tcell screen and runs the event loop. When watching
// is enabled, file changes are posted into the event loop and the document
// reloads in place.
package tui
