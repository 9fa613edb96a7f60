package templates

import (
	"regexp"
	"strings"
)

// placeholder matches one {{key}} or {key} token, tolerating whitespace
// inside the braces.
var placeholder = regexp.MustCompile(`\{\{\s*([^{}\s][^{}]*?)\s*\}\}|\{\s*([^{}\s][^{}]*?)\s*\}`)

// Render substitutes template variables into s. Both the {{key}} and {key}
// forms are replaced case-insensitively, everywhere they occur. Values are
// inserted verbatim: no HTML escaping, because the output is used to build
// rich HTML email bodies, and the template is scanned exactly once left to
// right, so a value that happens to contain placeholder syntax is never
// substituted again. Placeholders with no matching key are left untouched.
func Render(s string, vars map[string]string) string {
	return placeholder.ReplaceAllStringFunc(s, func(m string) string {
		name := strings.TrimSpace(strings.Trim(m, "{}"))
		if value, ok := vars[strings.ToLower(name)]; ok {
			return value
		}
		return m
	})
}

// Vars builds a substitution map from lead fields plus custom fields. Custom
// fields never shadow the built-in keys.
func Vars(name, email, role, company string, custom map[string]string) map[string]string {
	vars := make(map[string]string, len(custom)+4)
	for k, v := range custom {
		k = strings.TrimSpace(k)
		if k != "" {
			vars[strings.ToLower(k)] = v
		}
	}
	vars["name"] = name
	vars["email"] = email
	vars["role"] = role
	if company != "" {
		vars["company"] = company
	}
	return vars
}
