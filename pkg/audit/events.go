package audit

// resultString renders a success flag the way the structured data wants it.
func resultString(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}
