package utilities

// Contains reports whether target appears in values.
func Contains(values []string, target string) bool {
	for i := range values {
		if values[i] == target {
			return true
		}
	}
	return false
}
