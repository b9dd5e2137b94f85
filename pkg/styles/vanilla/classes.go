package vanilla

import (
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Classes holds the CSS class applied to each piece of rendered markup.
// Defaults target a utility-class stylesheet; any entry can be replaced
// through a theme token or wholesale via WithClasses.
type Classes struct {
	Form          string
	Cell          string
	Label         string
	Error         string
	Input         string
	InputInvalid  string
	TextArea      string
	Select        string
	RadioWrap     string
	Radio         string
	RadioLabel    string
	CheckboxWrap  string
	Checkbox      string
	CheckboxLabel string
	Slider        string
	Stepper       string
	Button        string
	Submit        string
	Group         string
	Heading       string
	Output        string
}

// DefaultClasses returns the built-in class set.
func DefaultClasses() Classes {
	return Classes{
		Form:          "formtool-form grid grid-cols-12 gap-4",
		Cell:          "grid gap-2",
		Label:         "block text-sm font-medium text-gray-900",
		Error:         "mt-1 text-sm text-red-600",
		Input:         "block w-full rounded-lg border border-gray-300 bg-gray-50 p-2.5 text-sm text-gray-900",
		InputInvalid:  "border-red-500",
		TextArea:      "block w-full rounded-lg border border-gray-300 bg-gray-50 p-2.5 text-sm text-gray-900",
		Select:        "block w-full rounded-lg border border-gray-300 bg-gray-50 p-2.5 text-sm text-gray-900",
		RadioWrap:     "flex items-center gap-2",
		Radio:         "h-4 w-4 border-gray-300 text-blue-600",
		RadioLabel:    "text-sm text-gray-900",
		CheckboxWrap:  "flex items-center gap-2",
		Checkbox:      "h-4 w-4 rounded border-gray-300 text-blue-600",
		CheckboxLabel: "text-sm text-gray-900",
		Slider:        "h-2 w-full cursor-pointer appearance-none rounded-lg bg-gray-200",
		Stepper:       "block w-full rounded-lg border border-gray-300 bg-gray-50 p-2.5 text-sm text-gray-900",
		Button:        "rounded-lg bg-blue-700 px-5 py-2.5 text-sm font-medium text-white hover:bg-blue-800",
		Submit:        "rounded-lg bg-blue-700 px-5 py-2.5 text-sm font-medium text-white hover:bg-blue-800",
		Group:         "formtool-group col-span-full grid grid-cols-12 gap-4 rounded-lg border border-gray-200 p-4",
		Heading:       "col-span-full font-semibold text-gray-900",
		Output:        "text-sm text-gray-700",
	}
}

// classesFromTheme overlays theme tokens on the defaults. Token keys mirror
// the struct fields in kebab case, e.g. "input-invalid" or "checkbox-wrap".
func classesFromTheme(cfg *theme.RendererConfig) Classes {
	base := DefaultClasses()
	if cfg == nil || len(cfg.Tokens) == 0 {
		return base
	}

	apply := func(dst *string, key string) {
		if value, ok := cfg.Tokens[key]; ok && strings.TrimSpace(value) != "" {
			*dst = value
		}
	}

	apply(&base.Form, "form")
	apply(&base.Cell, "cell")
	apply(&base.Label, "label")
	apply(&base.Error, "error")
	apply(&base.Input, "input")
	apply(&base.InputInvalid, "input-invalid")
	apply(&base.TextArea, "textarea")
	apply(&base.Select, "select")
	apply(&base.RadioWrap, "radio-wrap")
	apply(&base.Radio, "radio")
	apply(&base.RadioLabel, "radio-label")
	apply(&base.CheckboxWrap, "checkbox-wrap")
	apply(&base.Checkbox, "checkbox")
	apply(&base.CheckboxLabel, "checkbox-label")
	apply(&base.Slider, "slider")
	apply(&base.Stepper, "stepper")
	apply(&base.Button, "button")
	apply(&base.Submit, "submit")
	apply(&base.Group, "group")
	apply(&base.Heading, "heading")
	apply(&base.Output, "output")
	return base
}
