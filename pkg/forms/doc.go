// Package forms is the control/style abstraction layer of go-formtool.
//
// A form is assembled declaratively from typed controls (text input, date,
// select, radio group, checkbox, slider, stepper, textarea, heading, spacer,
// button, submit, hidden field, output) and rendered through a pluggable
// visual style. The package separates what a control is (its configuration
// record) from how it is drawn (the Style strategy interface, one operation
// per control kind) and guarantees every bound control the same three-part
// contract: a value getter, a value setter, and a validation signal resolved
// against shared form state at render time.
package forms
