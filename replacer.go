package twmerge

import (
	"fmt"

	"github.com/projectdiscovery/fasttemplate"
)

const (
	// ParenthesisOpen marker - begin of a placeholder
	ParenthesisOpen = "{{"
	// ParenthesisClose marker - end of a placeholder
	ParenthesisClose = "}}"
)

// Template variables available to output formats.
const (
	VarClasses = "classes" // merged class string
	VarInput   = "input"   // input line as read
	VarLine    = "line"    // 1-based input line number
)

// Format replaces placeholders in template with values.
// Unknown placeholders are kept as is.
func Format(template string, values map[string]interface{}) string {
	valuesMap := make(map[string]interface{}, len(values))
	for k, v := range values {
		valuesMap[k] = fmt.Sprint(v)
	}
	return fasttemplate.ExecuteStringStd(template, ParenthesisOpen, ParenthesisClose, valuesMap)
}

// validateTemplate checks that all placeholders of template are well formed.
func validateTemplate(template string) error {
	if _, err := fasttemplate.NewTemplate(template, ParenthesisOpen, ParenthesisClose); err != nil {
		return fmt.Errorf("invalid output template %q: %w", template, err)
	}
	return nil
}
