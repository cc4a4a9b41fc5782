package ldd

// ParseMissing exposes parseMissing to the black-box tests.
var ParseMissing = parseMissing
