package markup

// Named composite predicates for the lab's rubric checks. Each one stays a
// surface test over the stripped text.

var formFieldTags = []string{"input", "textarea", "select"}

// HasInternalLink reports an anchor whose href targets a fragment on the
// same page.
func (d Document) HasInternalLink() bool {
	return pattern(`<a\s[^>]*\bhref\s*=\s*["']?#`).MatchString(d.text)
}

// HasExternalLink reports an anchor whose href points at an absolute
// http(s) URL.
func (d Document) HasExternalLink() bool {
	return pattern(`<a\s[^>]*\bhref\s*=\s*["']?https?://`).MatchString(d.text)
}

// OpensInNewTab reports an anchor with target="_blank".
func (d Document) OpensInNewTab() bool {
	return d.TagAttrEquals("a", "target", "_blank")
}

// HasSubmitControl reports a submit input, a submit button, or a bare
// button element (buttons default to type submit).
func (d Document) HasSubmitControl() bool {
	if d.TagAttrEquals("input", "type", "submit") {
		return true
	}
	if d.TagAttrEquals("button", "type", "submit") {
		return true
	}
	return d.HasTag("button")
}

// LabelMatchesField reports whether any label "for" value matches any form
// field "id" value. Set membership only; labels and fields are not paired
// positionally.
func (d Document) LabelMatchesField() bool {
	forValues := d.attrValues("for", []string{"label"})
	if len(forValues) == 0 {
		return false
	}
	idValues := d.attrValues("id", formFieldTags)
	for value := range forValues {
		if _, ok := idValues[value]; ok {
			return true
		}
	}
	return false
}

// HasRequiredMarker reports a "required" marker anywhere in the document.
func (d Document) HasRequiredMarker() bool {
	return pattern(`\brequired\b`).MatchString(d.text)
}
