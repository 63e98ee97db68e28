// Package view derives visible authentication affordances from the session and
// applies them to a Surface.
//
// Render is a pure function and can be tested without any rendering surface.
// Reconciler is the imperative side: it pushes rendered state, transient
// messages and the manual copy overlay to whatever Surface the host provides
// (the page DOM in the browser, a terminal in the command line host).
package view
