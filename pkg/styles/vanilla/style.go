// Package vanilla renders forms as framework-free HTML built from a small
// element tree. The tree keeps its event handlers, so server-side tests can
// locate a control and fire input events against it directly.
package vanilla

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/flosch/pongo2/v6"
	gotemplatepkg "github.com/goliatone/go-template"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formtool/pkg/forms"
	"github.com/goliatone/go-formtool/pkg/signals"
)

// Option configures the style before construction.
type Option func(*config)

type config struct {
	themeConfig   *theme.RendererConfig
	classes       *Classes
	frameTemplate string
}

// WithTheme overlays theme tokens on the default classes and carries the
// theme's CSS variables onto the form element.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.themeConfig = cfg
	}
}

// WithClasses replaces the class set wholesale, bypassing theme tokens.
func WithClasses(classes Classes) Option {
	return func(c *config) {
		c.classes = &classes
	}
}

// WithFrameTemplate wraps the rendered form in a template. The template
// receives the form markup as "body" plus the theme name and variant.
func WithFrameTemplate(tpl string) Option {
	return func(c *config) {
		c.frameTemplate = tpl
	}
}

// WithGoTemplateOptions exists for backward compatibility with earlier
// versions of this style but is currently a no-op.
func WithGoTemplateOptions(_ ...gotemplatepkg.Option) Option {
	return func(*config) {}
}

// Style renders every control kind as plain HTML with utility classes.
type Style struct {
	classes Classes
	cssVars map[string]string
	frame   *pongo2.Template
	tplCtx  pongo2.Context
}

var _ forms.Style = (*Style)(nil)

// New constructs the vanilla style applying any provided options.
func New(options ...Option) (*Style, error) {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	classes := classesFromTheme(cfg.themeConfig)
	if cfg.classes != nil {
		classes = *cfg.classes
	}

	style := &Style{classes: classes, tplCtx: pongo2.Context{}}
	if cfg.themeConfig != nil {
		style.cssVars = cfg.themeConfig.CSSVars
		style.tplCtx["theme"] = cfg.themeConfig.Theme
		style.tplCtx["variant"] = cfg.themeConfig.Variant
	}

	if cfg.frameTemplate != "" {
		set := pongo2.NewSet("formtool-vanilla", pongo2.DefaultLoader)
		tpl, err := set.FromString(cfg.frameTemplate)
		if err != nil {
			return nil, fmt.Errorf("vanilla: parse frame template: %w", err)
		}
		style.frame = tpl
	}

	return style, nil
}

// Must is a helper for wiring the style in variable declarations.
func Must(style *Style, err error) *Style {
	if err != nil {
		panic(err)
	}
	return style
}

func (s *Style) FormFrame(frame *forms.RenderData[forms.Nodes]) forms.Node {
	ca := collectAttrs(frame.Styles)
	form := NewElement("form").Class(s.classes.Form).Class(ca.classes...)
	if style := cssVarsStyle(s.cssVars); style != "" {
		form.Attr("style", style)
	}
	form.Child(frame.Data...)

	if s.frame == nil {
		return form
	}
	return &frameNode{tpl: s.frame, body: form, base: s.tplCtx}
}

func (s *Style) Group(group *forms.RenderData[forms.Nodes]) forms.Node {
	ca := collectAttrs(group.Styles)
	el := NewElement("div").Class(s.classes.Group).Class(ca.classes...)
	el.Attr("data-kind", string(forms.KindGroup))
	if ca.tooltip != "" {
		el.Attr("title", ca.tooltip)
	}
	return el.Child(group.Data...)
}

func (s *Style) Spacer(control *forms.RenderData[forms.SpacerData]) forms.Node {
	cell := s.cell(forms.KindSpacer, control.Styles, "")
	if control.Data.Height != "" {
		spacer := NewElement("div").Attr("style", "height: "+control.Data.Height)
		cell.Child(spacer)
	}
	return cell
}

func (s *Style) Heading(control *forms.RenderData[forms.HeadingData], value signals.Signal[string]) forms.Node {
	ca := collectAttrs(control.Styles)
	tag := "h" + strconv.Itoa(int(control.Data.Level))
	heading := NewElement(tag).Class(s.classes.Heading).Class(ca.classes...)
	if ca.tooltip != "" {
		heading.Attr("title", ca.tooltip)
	}
	if ca.icon != "" {
		heading.Raw(ca.icon)
	}
	return heading.Text(signalText(value))
}

func (s *Style) Button(control *forms.RenderData[forms.ButtonData], value signals.Signal[string]) forms.Node {
	cell := s.cell(forms.KindButton, control.Styles, "")
	button := NewElement("button").Attr("type", "button").Class(s.classes.Button).Text(signalText(value))
	action := control.Data.Action
	button.On("click", func(string) {
		if action != nil {
			action()
		}
	})
	return cell.Child(button)
}

func (s *Style) Submit(control *forms.RenderData[forms.SubmitData], value signals.Signal[string]) forms.Node {
	cell := s.cell(forms.KindSubmit, control.Styles, "")
	button := NewElement("button").Attr("type", "submit").Class(s.classes.Submit).Text(signalText(value))
	return cell.Child(button)
}

func (s *Style) Hidden(control *forms.RenderData[forms.HiddenData], value signals.Signal[string]) forms.Node {
	return NewElement("input").
		Attr("type", "hidden").
		Attr("name", control.Data.Name).
		Attr("value", signalText(value))
}

func (s *Style) Output(control *forms.RenderData[forms.OutputData], value signals.Signal[string]) forms.Node {
	data := control.Data
	cell := s.cell(forms.KindOutput, control.Styles, data.Title)
	s.attachLabel(cell, control.Styles, data.Name, data.Label)

	output := NewElement("output").
		Attr("id", controlID(data.Name)).
		Attr("name", data.Name).
		Class(s.classes.Output).
		Text(signalText(value))
	return cell.Child(output)
}

func (s *Style) TextInput(control *forms.RenderData[forms.TextInputData], binding forms.Binding[string]) forms.Node {
	data := control.Data
	cell := s.cell(forms.KindTextInput, control.Styles, data.Title)
	s.attachLabel(cell, control.Styles, data.Name, data.Label)

	inputType := data.InputType
	if inputType == "" {
		inputType = "text"
	}
	input := NewElement("input").
		Attr("type", inputType).
		Attr("id", controlID(data.Name)).
		Attr("name", data.Name).
		Attr("value", binding.Value.Get()).
		Class(s.classes.Input)
	if data.Placeholder != "" {
		input.Attr("placeholder", data.Placeholder)
	}
	s.bindString(input, data.Policy, binding.Set)
	s.flagInvalid(cell, input, data.Name, binding.Validation)
	return cell.Child(input)
}

func (s *Style) TextArea(control *forms.RenderData[forms.TextAreaData], binding forms.Binding[string]) forms.Node {
	data := control.Data
	cell := s.cell(forms.KindTextArea, control.Styles, data.Title)
	s.attachLabel(cell, control.Styles, data.Name, data.Label)

	area := NewElement("textarea").
		Attr("id", controlID(data.Name)).
		Attr("name", data.Name).
		Class(s.classes.TextArea)
	if data.Rows > 0 {
		area.Attr("rows", strconv.Itoa(data.Rows))
	}
	if data.Placeholder != "" {
		area.Attr("placeholder", data.Placeholder)
	}
	area.Text(binding.Value.Get())
	s.bindString(area, data.Policy, binding.Set)
	s.flagInvalid(cell, area, data.Name, binding.Validation)
	return cell.Child(area)
}

func (s *Style) Date(control *forms.RenderData[forms.DateData], binding forms.Binding[string]) forms.Node {
	data := control.Data
	cell := s.cell(forms.KindDate, control.Styles, data.Title)
	s.attachLabel(cell, control.Styles, data.Name, data.Label)

	input := NewElement("input").
		Attr("type", "date").
		Attr("id", controlID(data.Name)).
		Attr("name", data.Name).
		Attr("value", binding.Value.Get()).
		Class(s.classes.Input)
	if data.Format != "" {
		input.Attr("data-format", data.Format)
	}
	if data.Min.IsSet() {
		input.Attr("min", data.Min.Get())
	}
	if data.Max.IsSet() {
		input.Attr("max", data.Max.Get())
	}
	if data.ShowButtons.Get() {
		input.Attr("data-show-buttons", "true")
	}
	if data.ShowToday.Get() {
		input.Attr("data-show-today", "true")
	}
	s.bindString(input, data.Policy, binding.Set)
	s.flagInvalid(cell, input, data.Name, binding.Validation)
	return cell.Child(input)
}

func (s *Style) Select(control *forms.RenderData[forms.SelectData], binding forms.Binding[string]) forms.Node {
	data := control.Data
	cell := s.cell(forms.KindSelect, control.Styles, data.Title)
	s.attachLabel(cell, control.Styles, data.Name, data.Label)

	current := binding.Value.Get()
	sel := NewElement("select").
		Attr("id", controlID(data.Name)).
		Attr("name", data.Name).
		Class(s.classes.Select)

	if data.BlankOption != "" {
		blank := NewElement("option").Attr("value", "").Text(data.BlankOption)
		if current == "" {
			blank.Flag("selected")
		}
		sel.Child(blank)
	}
	for _, opt := range data.Options.Get() {
		option := NewElement("option").Attr("value", opt.Value).Text(opt.Display)
		if opt.Value == current {
			option.Flag("selected")
		}
		sel.Child(option)
	}
	s.bindString(sel, data.Policy, binding.Set)
	s.flagInvalid(cell, sel, data.Name, binding.Validation)
	return cell.Child(sel)
}

func (s *Style) RadioGroup(control *forms.RenderData[forms.RadioGroupData], binding forms.Binding[string]) forms.Node {
	data := control.Data
	cell := s.cell(forms.KindRadioGroup, control.Styles, data.Title)
	s.attachLabel(cell, control.Styles, data.Name, data.Label)

	current := binding.Value.Get()
	set := binding.Set
	event := data.Policy.Event()
	for i, opt := range data.Options {
		id := controlID(data.Name) + "-" + strconv.Itoa(i)
		radio := NewElement("input").
			Attr("type", "radio").
			Attr("id", id).
			Attr("name", data.Name).
			Attr("value", opt.Value).
			Class(s.classes.Radio)
		if opt.Value == current {
			radio.Flag("checked")
		}
		if set != nil {
			choice := opt.Value
			radio.Attr("data-update", event)
			radio.On(event, func(string) { set(choice) })
		}

		label := NewElement("label").Attr("for", id).Class(s.classes.RadioLabel).Text(opt.Display)
		cell.Child(NewElement("div").Class(s.classes.RadioWrap).Child(radio, label))
	}

	if state := validationState(binding.Validation); state.IsInvalid() {
		cell.Child(s.errorNode(data.Name, state.Message()))
	}
	return cell
}

func (s *Style) Slider(control *forms.RenderData[forms.SliderData], binding forms.Binding[string]) forms.Node {
	data := control.Data
	cell := s.cell(forms.KindSlider, control.Styles, data.Title)
	s.attachLabel(cell, control.Styles, data.Name, data.Label)

	input := NewElement("input").
		Attr("type", "range").
		Attr("id", controlID(data.Name)).
		Attr("name", data.Name).
		Attr("value", binding.Value.Get()).
		Class(s.classes.Slider)
	setBounds(input, data.Min, data.Max, data.Step)
	s.bindString(input, data.Policy, binding.Set)
	s.flagInvalid(cell, input, data.Name, binding.Validation)
	return cell.Child(input)
}

func (s *Style) Stepper(control *forms.RenderData[forms.StepperData], binding forms.Binding[string]) forms.Node {
	data := control.Data
	cell := s.cell(forms.KindStepper, control.Styles, data.Title)
	s.attachLabel(cell, control.Styles, data.Name, data.Label)

	input := NewElement("input").
		Attr("type", "number").
		Attr("id", controlID(data.Name)).
		Attr("name", data.Name).
		Attr("value", binding.Value.Get()).
		Class(s.classes.Stepper)
	setBounds(input, data.Min, data.Max, data.Step)
	s.bindString(input, data.Policy, binding.Set)
	s.flagInvalid(cell, input, data.Name, binding.Validation)
	return cell.Child(input)
}

func (s *Style) Checkbox(control *forms.RenderData[forms.CheckboxData], binding forms.Binding[bool]) forms.Node {
	data := control.Data
	cell := s.cell(forms.KindCheckbox, control.Styles, data.Title)

	input := NewElement("input").
		Attr("type", "checkbox").
		Attr("id", controlID(data.Name)).
		Attr("name", data.Name).
		Class(s.classes.Checkbox)
	if binding.Value.Get() {
		input.Flag("checked")
	}
	if set := binding.Set; set != nil {
		event := data.Policy.Event()
		input.Attr("data-update", event)
		input.On(event, func(value string) {
			checked, err := strconv.ParseBool(value)
			if err != nil {
				return
			}
			set(checked)
		})
	}

	labelText := data.Label
	if labelText == "" {
		labelText = data.Name
	}
	label := NewElement("label").
		Attr("for", controlID(data.Name)).
		Class(s.classes.CheckboxLabel).
		Text(labelText)

	cell.Child(NewElement("div").Class(s.classes.CheckboxWrap).Child(input, label))
	if state := validationState(binding.Validation); state.IsInvalid() {
		input.Class(s.classes.InputInvalid)
		cell.Child(s.errorNode(data.Name, state.Message()))
	}
	return cell
}

// cell builds the grid wrapper every visible control sits in.
func (s *Style) cell(kind forms.Kind, attrs []forms.StyleAttr, title string) *Element {
	ca := collectAttrs(attrs)
	cell := NewElement("div").Class(s.classes.Cell).Class(ca.classes...)
	cell.Attr("style", spanStyle(ca.span))
	cell.Attr("data-kind", string(kind))
	if title != "" {
		cell.Attr("title", title)
	} else if ca.tooltip != "" {
		cell.Attr("title", ca.tooltip)
	}
	return cell
}

// attachLabel adds the control's label to the cell when one is set. A
// sanitized icon attribute renders inside the label, ahead of the text.
func (s *Style) attachLabel(cell *Element, attrs []forms.StyleAttr, name, text string) {
	if text == "" {
		return
	}
	label := NewElement("label").Attr("for", controlID(name)).Class(s.classes.Label)
	if icon := collectAttrs(attrs).icon; icon != "" {
		label.Raw(icon)
	}
	label.Text(text)
	cell.Child(label)
}

// bindString wires the control's update policy event to the value setter.
// No other event is registered, so firing anything else is a no-op.
func (s *Style) bindString(el *Element, policy forms.UpdatePolicy, set signals.Setter[string]) {
	if set == nil {
		return
	}
	event := policy.Event()
	el.Attr("data-update", event)
	el.On(event, func(value string) { set(value) })
}

// flagInvalid marks the control and appends the error message when the
// validation state is invalid. Pending and valid states render nothing.
func (s *Style) flagInvalid(cell, input *Element, name string, validation signals.Signal[forms.ValidationState]) {
	state := validationState(validation)
	if !state.IsInvalid() {
		return
	}
	input.Class(s.classes.InputInvalid)
	cell.Child(s.errorNode(name, state.Message()))
}

func (s *Style) errorNode(name, message string) *Element {
	return NewElement("p").Class(s.classes.Error).Attr("data-error-for", name).Text(message)
}

func controlID(name string) string {
	return "ft-" + name
}

func spanStyle(span int) string {
	return fmt.Sprintf("grid-column: span %d / span %d", span, span)
}

func setBounds(el *Element, min, max, step signals.Value[string]) {
	if min.IsSet() {
		el.Attr("min", min.Get())
	}
	if max.IsSet() {
		el.Attr("max", max.Get())
	}
	if step.IsSet() {
		el.Attr("step", step.Get())
	}
}

func signalText(value signals.Signal[string]) string {
	if value == nil {
		return ""
	}
	return value.Get()
}

func validationState(sig signals.Signal[forms.ValidationState]) forms.ValidationState {
	if sig == nil {
		return forms.Pending()
	}
	return sig.Get()
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, key := range keys {
		sb.WriteString(key)
		sb.WriteString(": ")
		sb.WriteString(vars[key])
		sb.WriteString("; ")
	}
	return strings.TrimSpace(sb.String())
}

// frameNode renders the form element and feeds the markup to the frame
// template as "body".
type frameNode struct {
	tpl  *pongo2.Template
	body forms.Node
	base pongo2.Context
}

func (n *frameNode) Render(ctx context.Context, w io.Writer) error {
	var buf bytes.Buffer
	if err := n.body.Render(ctx, &buf); err != nil {
		return err
	}

	tplCtx := pongo2.Context{"body": buf.String()}
	tplCtx.Update(n.base)
	out, err := n.tpl.Execute(tplCtx)
	if err != nil {
		return fmt.Errorf("vanilla: execute frame template: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
