// Package ui renders the marketplace screen with Bubble Tea.
//
// Core abstractions:
//   - View: a widget or screen with its own model, update, view (Elm-style)
//   - AccordionView: panels whose open state lives in a disclosure.Group
//   - SelectView: a dropdown over a selection.Menu
//   - Badge: colored product labels
//   - FocusManager: tab order across widgets
//   - Region: screen rectangles for mouse hit-testing
//
// Widget state is owned by the parent and passed to render functions as
// plain parameters; no view walks or rewrites another view's output.
package ui
