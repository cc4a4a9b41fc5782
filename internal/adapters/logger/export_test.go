package logger

// CollectErrorEntriesExported exposes collectErrorEntries to the black-box tests.
func CollectErrorEntriesExported(err error) []ErrorEntry {
	return collectErrorEntries(err)
}

// FormatErrorEntriesExported exposes formatErrorEntries to the black-box tests.
func FormatErrorEntriesExported(entries []ErrorEntry) string {
	return formatErrorEntries(entries)
}
