package util

// MaxLogValueSize is the default maximum size of a value written to logs.
const MaxLogValueSize = 256

// Truncate cuts s to maxSize bytes, appending "...(truncated)" if it was
// longer. If maxSize <= 0, uses MaxLogValueSize. The cut never splits a
// UTF-8 sequence.
func Truncate(s string, maxSize int) string {
	if maxSize <= 0 {
		maxSize = MaxLogValueSize
	}
	if len(s) <= maxSize {
		return s
	}
	cut := maxSize
	for cut > 0 && s[cut]&0xC0 == 0x80 {
		cut--
	}
	return s[:cut] + "...(truncated)"
}
