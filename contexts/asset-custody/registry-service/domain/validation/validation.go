// Package validation holds the pure field predicates shared by every
// mutating registry operation. Predicates never fail; callers decide which
// error kind a false result maps to.
package validation

const (
	NameMaxLen   = 64
	SchemaMaxLen = 128
	TagMaxLen    = 32
	MaxTags      = 10

	// PayloadSizeLimit is exclusive: valid sizes are 0 < n < limit.
	PayloadSizeLimit = 1_000_000_000
)

// ValidText reports whether len(value) is within [min, max].
func ValidText(value string, min, max int) bool {
	return len(value) >= min && len(value) <= max
}

func ValidTag(tag string) bool {
	return ValidText(tag, 1, TagMaxLen)
}

// ValidTagSequence requires a non-empty sequence of at most MaxTags tags,
// every one of them individually valid.
func ValidTagSequence(tags []string) bool {
	if len(tags) == 0 || len(tags) > MaxTags {
		return false
	}
	for _, tag := range tags {
		if !ValidTag(tag) {
			return false
		}
	}
	return true
}

func ValidPayloadSize(size int64) bool {
	return size > 0 && size < PayloadSizeLimit
}
