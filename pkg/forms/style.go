package forms

import "github.com/goliatone/go-formtool/pkg/signals"

// Style is the pluggable rendering strategy: one operation per control kind
// plus the two structural operations FormFrame and Group. A style receives a
// control's configuration wrapped with its attached style attributes and,
// where applicable, the control's binding. It returns an opaque node.
//
// Contract rules a conforming style must satisfy:
//
//   - Pure with respect to configuration: the same configuration and the same
//     signal values produce the same output. Signals changing between render
//     passes is the only permitted variance.
//   - Render the label iff one is present, the validation message iff the
//     validation state is invalid, and never block input while pending.
//   - Invoke the value setter under the control's update policy event and no
//     other.
//
// Styles do not return errors: a style either renders a valid configuration
// or the render pass diverges.
type Style interface {
	// FormFrame wraps the fully composed control sequence into the top-level
	// container. The render data carries the form-level style attributes.
	FormFrame(frame *RenderData[Nodes]) Node
	// Group wraps a nested control sequence the same way, recursively.
	Group(group *RenderData[Nodes]) Node

	// Display-only operations. The value signal may be nil when the control
	// carries no text.
	Spacer(control *RenderData[SpacerData]) Node
	Heading(control *RenderData[HeadingData], value signals.Signal[string]) Node
	Button(control *RenderData[ButtonData], value signals.Signal[string]) Node
	Submit(control *RenderData[SubmitData], value signals.Signal[string]) Node
	Hidden(control *RenderData[HiddenData], value signals.Signal[string]) Node
	Output(control *RenderData[OutputData], value signals.Signal[string]) Node

	// Bound operations.
	TextInput(control *RenderData[TextInputData], binding Binding[string]) Node
	TextArea(control *RenderData[TextAreaData], binding Binding[string]) Node
	Date(control *RenderData[DateData], binding Binding[string]) Node
	Select(control *RenderData[SelectData], binding Binding[string]) Node
	RadioGroup(control *RenderData[RadioGroupData], binding Binding[string]) Node
	Slider(control *RenderData[SliderData], binding Binding[string]) Node
	Stepper(control *RenderData[StepperData], binding Binding[string]) Node
	Checkbox(control *RenderData[CheckboxData], binding Binding[bool]) Node
}
