package deezer

// Result is the outcome of one upstream fetch: either a decoded payload or
// nothing. Callers never see an error; every failure class collapses to
// Absent.
type Result struct {
	data  any
	found bool
}

// Found wraps a decoded payload
func Found(data any) Result {
	return Result{data: data, found: true}
}

// Absent is the no-result sentinel
func Absent() Result {
	return Result{}
}

// Found reports whether the fetch produced a payload
func (r Result) Found() bool {
	return r.found
}

// Data returns the decoded payload, or nil when absent. The payload is
// schema-less: a map or slice exactly as the upstream returned it.
func (r Result) Data() any {
	if !r.found {
		return nil
	}
	return r.data
}

// Len returns the length of the payload's "data" list, for logging. Zero
// when absent or when the payload has no such list.
func (r Result) Len() int {
	m, ok := r.data.(map[string]any)
	if !ok {
		return 0
	}
	list, ok := m["data"].([]any)
	if !ok {
		return 0
	}
	return len(list)
}
