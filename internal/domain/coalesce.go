package domain

// StrFromPtrWithDefault returns the first non-nil *string value, or the fallback.
func StrFromPtrWithDefault(fallback string, ptrs ...*string) string {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

// StatusFromPtrWithDefault returns the first non-nil *ProjectStatus value, or the fallback.
func StatusFromPtrWithDefault(fallback ProjectStatus, ptrs ...*ProjectStatus) ProjectStatus {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}
