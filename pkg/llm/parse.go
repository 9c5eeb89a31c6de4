package llm

import (
	_ "embed"
	"encoding/json"
	"strings"

	"github.com/nikogura/resume-builder/pkg/resume"
	"github.com/nikogura/resume-builder/pkg/sanitize"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed enhancement.schema.json
var enhancementSchema string //nolint:gochecknoglobals // Embedded schema

// ParseEnhancement turns the model's message content into an enhancement.
// The content must be a JSON object matching the enhancement schema. Every
// string in it is sanitized before it is decoded.
func ParseEnhancement(content string) (enhancement resume.Enhancement, err error) {
	cleaned := stripMarkdownCodeFences(strings.TrimSpace(content))

	var raw interface{}
	err = json.Unmarshal([]byte(cleaned), &raw)
	if err != nil {
		err = &PayloadError{Reason: "content is not valid JSON", Content: content, Err: err}
		return enhancement, err
	}

	err = validateEnhancement(raw)
	if err != nil {
		err = &PayloadError{Reason: "content does not match the enhancement schema", Content: content, Err: err}
		return enhancement, err
	}

	var data []byte
	data, err = json.Marshal(sanitize.Value(raw))
	if err != nil {
		err = &PayloadError{Reason: "content could not be re-encoded", Content: content, Err: err}
		return enhancement, err
	}

	err = json.Unmarshal(data, &enhancement)
	if err != nil {
		enhancement = resume.Enhancement{}
		err = &PayloadError{Reason: "content could not be decoded", Content: content, Err: err}
		return enhancement, err
	}

	return enhancement, err
}

// schemaViolations collects every validation failure of a payload.
type schemaViolations []string

func (v schemaViolations) Error() (msg string) {
	msg = strings.Join(v, "; ")
	return msg
}

func validateEnhancement(raw interface{}) (err error) {
	var result *gojsonschema.Result
	result, err = gojsonschema.Validate(
		gojsonschema.NewStringLoader(enhancementSchema),
		gojsonschema.NewGoLoader(raw),
	)
	if err != nil {
		return err
	}

	if result.Valid() {
		return err
	}

	violations := make(schemaViolations, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}

	err = violations
	return err
}
