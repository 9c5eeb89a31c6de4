package sanitize

// Value returns a deep copy of v in which every string leaf has been passed
// through Text. Sequences and string-keyed mappings keep their shape;
// other scalars are returned unchanged. The input is never modified.
//
// Shapes produced by encoding/json ([]interface{}, map[string]interface{})
// are handled alongside their typed string counterparts.
func Value(v interface{}) (clean interface{}) {
	switch t := v.(type) {
	case string:
		clean = Text(t)
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, item := range t {
			out[i] = Value(item)
		}
		clean = out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, item := range t {
			out[k] = Value(item)
		}
		clean = out
	case []string:
		clean = Lines(t)
	case map[string]string:
		out := make(map[string]string, len(t))
		for k, item := range t {
			out[k] = Text(item)
		}
		clean = out
	default:
		clean = v
	}

	return clean
}
