package server

import "github.com/bertvanbrakel/mcp-ocr/fault"

func requiredString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fault.Errorf(fault.InvalidArguments, "missing required argument %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fault.Errorf(fault.InvalidArguments, "argument %q must be a string, got %T", key, v)
	}
	if s == "" {
		return "", fault.Errorf(fault.InvalidArguments, "argument %q must not be empty", key)
	}
	return s, nil
}

// optionalString returns def when the argument is absent or empty.
func optionalString(args map[string]any, key, def string) (string, error) {
	v, ok := args[key]
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fault.Errorf(fault.InvalidArguments, "argument %q must be a string, got %T", key, v)
	}
	if s == "" {
		return def, nil
	}
	return s, nil
}
