// Package intake loads manual resume forms from JSON, YAML or TOML files.
package intake

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/nikogura/resume-builder/pkg/resume"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Load reads a form file, choosing the decoder by extension.
func Load(path string) (form resume.Form, err error) {
	// Read file
	var fileData []byte
	fileData, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read form file: %s", path)
		return form, err
	}

	form, err = Parse(fileData, filepath.Ext(path))
	if err != nil {
		err = errors.Wrapf(err, "failed to parse form file: %s", path)
		return form, err
	}

	// Validate data
	err = Validate(form)
	if err != nil {
		err = errors.Wrap(err, "form validation failed")
		return form, err
	}

	return form, err
}

// Parse decodes form data in the format named by ext (".json", ".yaml",
// ".yml" or ".toml"). YAML and TOML are converted to JSON first so every
// field decodes the same way.
func Parse(data []byte, ext string) (form resume.Form, err error) {
	var jsonData []byte

	switch strings.ToLower(ext) {
	case ".json":
		jsonData = data
	case ".yaml", ".yml":
		var doc interface{}
		err = yaml.Unmarshal(data, &doc)
		if err != nil {
			err = errors.Wrap(err, "invalid YAML")
			return form, err
		}
		jsonData, err = toJSON(doc)
	case ".toml":
		var doc map[string]interface{}
		err = toml.Unmarshal(data, &doc)
		if err != nil {
			err = errors.Wrap(err, "invalid TOML")
			return form, err
		}
		jsonData, err = toJSON(doc)
	default:
		err = errors.Errorf("unsupported form format %q (use .json, .yaml, .yml or .toml)", ext)
		return form, err
	}

	if err != nil {
		return form, err
	}

	err = json.Unmarshal(jsonData, &form)
	if err != nil {
		err = errors.Wrap(err, "invalid form data")
		return form, err
	}

	return form, err
}

func toJSON(doc interface{}) (data []byte, err error) {
	data, err = json.Marshal(textNumbers(doc))
	if err != nil {
		err = errors.Wrap(err, "failed to convert form to JSON")
		return data, err
	}

	return data, err
}

// textNumbers turns numeric scalars into strings. The form has no numeric
// fields, and YAML or TOML readily type a bare year as a number.
func textNumbers(v interface{}) (out interface{}) {
	switch t := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, item := range t {
			m[k] = textNumbers(item)
		}
		out = m
	case []interface{}:
		list := make([]interface{}, len(t))
		for i, item := range t {
			list[i] = textNumbers(item)
		}
		out = list
	case int:
		out = strconv.Itoa(t)
	case int64:
		out = strconv.FormatInt(t, 10)
	case uint64:
		out = strconv.FormatUint(t, 10)
	case float64:
		out = strconv.FormatFloat(t, 'f', -1, 64)
	case time.Time:
		out = t.Format(time.DateOnly)
	default:
		out = v
	}

	return out
}

// Validate checks that the form can be used for generation.
func Validate(form resume.Form) (err error) {
	if strings.TrimSpace(form.Basic.Name) == "" {
		err = errors.New("basic.name is required")
		return err
	}

	if strings.TrimSpace(form.Basic.Email) == "" {
		err = errors.New("basic.email is required")
		return err
	}

	for i, e := range form.Experience {
		if strings.TrimSpace(e.Role) == "" && strings.TrimSpace(e.Company) == "" {
			err = errors.Errorf("experience at index %d has neither role nor company", i)
			return err
		}
	}

	for i, p := range form.Projects {
		if strings.TrimSpace(p.Title) == "" {
			err = errors.Errorf("project at index %d missing title", i)
			return err
		}
	}

	return err
}
