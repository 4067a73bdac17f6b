package glossary

// resolveTermID returns the client-supplied id verbatim when it is non-empty,
// otherwise a freshly generated one.
func resolveTermID(id *string, newID func() string) string {
	if id != nil && *id != "" {
		return *id
	}
	return newID()
}
