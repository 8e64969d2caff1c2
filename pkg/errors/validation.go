package errors

// maxUsernameLen is far above GitHub's own 39 character limit; it only guards
// against pathological input reaching the request path.
const maxUsernameLen = 256

// ValidateUsername rejects usernames that cannot be sent as a path segment
// even after escaping. Everything else goes to the endpoint, which answers
// for names GitHub does not know.
func ValidateUsername(name string) error {
	switch {
	case name == "":
		return New(ErrCodeInvalidInput, "username cannot be empty")
	case len(name) > maxUsernameLen:
		return New(ErrCodeInvalidInput, "username too long (max %d characters)", maxUsernameLen)
	case name == "." || name == "..":
		// PathEscape leaves dot segments alone and the URL would resolve
		// to a parent of the endpoint.
		return New(ErrCodeInvalidInput, "username %q is not a valid path segment", name)
	}
	return nil
}
