package rubric

import "labgrade/internal/markup"

// The five graded steps of the HTML lab. Maxima sum to 80; the remaining
// 20 marks come from submission timeliness.
const (
	StepContainer  = "container"
	StepHeader     = "header"
	StepNavigation = "navigation"
	StepForm       = "form"
	StepSections   = "sections"
)

// headerWrapperTags are the tags accepted as a heading wrapper by the loose
// "wrapper before h1" heuristic. Kept loose on purpose: tightening it would
// change grades already communicated to students.
var headerWrapperTags = []string{"header", "div", "section"}

// DefaultSteps returns the fixed rubric for the lab assignment.
func DefaultSteps() []Step {
	return []Step{
		{
			ID:   StepContainer,
			Name: "Page container",
			Max:  15,
			Checks: []StepCheck{
				{Label: "div container present", Test: func(d markup.Document) bool { return d.HasTag("div") }},
				{Label: "paragraph content present", Test: func(d markup.Document) bool { return d.HasTag("p") }},
			},
		},
		{
			ID:   StepHeader,
			Name: "Header wrapper",
			Max:  15,
			Checks: []StepCheck{
				{Label: "heading wrapped in a header or container", Test: hasHeadingWrapper},
				{Label: "main heading (h1) present", Test: func(d markup.Document) bool { return d.HasTag("h1") }},
				{Label: "intro paragraph present", Test: func(d markup.Document) bool { return d.HasTag("p") }},
			},
		},
		{
			ID:   StepNavigation,
			Name: "Navigation links",
			Max:  15,
			Checks: []StepCheck{
				{Label: "anchor tag present", Test: func(d markup.Document) bool { return d.HasTag("a") }},
				{Label: "internal page link present", Test: markup.Document.HasInternalLink},
				{Label: "external link present", Test: markup.Document.HasExternalLink},
				{Label: "link opens in a new tab", Test: markup.Document.OpensInNewTab},
			},
		},
		{
			ID:   StepForm,
			Name: "Contact form",
			Max:  20,
			Checks: []StepCheck{
				{Label: "form tag present", Test: func(d markup.Document) bool { return d.HasTag("form") }},
				{Label: "form has an action attribute", Test: func(d markup.Document) bool { return d.TagHasAttr("form", "action") }},
				{Label: "form has a method attribute", Test: func(d markup.Document) bool { return d.TagHasAttr("form", "method") }},
				{Label: "input field present", Test: func(d markup.Document) bool { return d.HasTag("input") }},
				{Label: "text input present", Test: func(d markup.Document) bool { return d.TagAttrEquals("input", "type", "text") }},
				{Label: "email input present", Test: func(d markup.Document) bool { return d.TagAttrEquals("input", "type", "email") }},
				{Label: "textarea present", Test: func(d markup.Document) bool { return d.HasTag("textarea") }},
				{Label: "label present", Test: func(d markup.Document) bool { return d.HasTag("label") }},
				{Label: "label for matches a field id", Test: markup.Document.LabelMatchesField},
				{Label: "required marker present", Test: markup.Document.HasRequiredMarker},
				{Label: "submit control present", Test: markup.Document.HasSubmitControl},
			},
		},
		{
			ID:   StepSections,
			Name: "Page sections",
			Max:  15,
			Checks: []StepCheck{
				{Label: "at least one div present", Test: func(d markup.Document) bool { return d.TagCount("div") >= 1 }},
				{Label: "at least three divs present", Test: func(d markup.Document) bool { return d.TagCount("div") >= 3 }},
				{Label: "secondary heading (h2) present", Test: func(d markup.Document) bool { return d.HasTag("h2") }},
				{Label: "list present", Test: func(d markup.Document) bool { return d.HasTag("ul") || d.HasTag("ol") }},
				{Label: "image present", Test: func(d markup.Document) bool { return d.HasTag("img") }},
			},
		},
	}
}

// hasHeadingWrapper accepts a dedicated header tag, or any wrapper tag
// textually preceding an h1 anywhere later in the document.
func hasHeadingWrapper(d markup.Document) bool {
	if d.HasTag("header") {
		return true
	}
	for _, tag := range headerWrapperTags {
		if d.TagBefore(tag, "h1") {
			return true
		}
	}
	return false
}
