package convert

import "strings"

var umlauts = strings.NewReplacer("ä", "ae", "ö", "oe", "ü", "ue", "ß", "ss")

// Slugify derives a URL-safe identifier from a title: lower-case, German
// umlauts transliterated to ASCII digraphs, every other run of
// non-[a-z0-9] collapsed to one hyphen, leading/trailing hyphens
// stripped, capped at 100 characters. Uniqueness is not this function's
// job; the recipes table enforces it.
func Slugify(title string) string {
	s := umlauts.Replace(strings.ToLower(title))

	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingHyphen = false
			continue
		}
		pendingHyphen = true
	}

	out := b.String()
	if len(out) > 100 {
		out = out[:100]
	}
	return out
}
