package ingest

// ParseLine splits one CSV line into fields, honoring double-quoted fields.
// A comma inside quotes is literal, a doubled quote inside quotes is an
// escaped quote. Unterminated quotes are tolerated: the rest of the line is
// consumed as part of the open field. Multi-line quoted fields are not
// supported; callers split input on newlines before tokenizing.
func ParseLine(line string) []string {
	var fields []string
	var current []rune
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		char := runes[i]
		if inQuotes {
			if char == '"' {
				if i+1 < len(runes) && runes[i+1] == '"' {
					current = append(current, '"')
					i++
				} else {
					inQuotes = false
				}
			} else {
				current = append(current, char)
			}
		} else {
			switch char {
			case '"':
				inQuotes = true
			case ',':
				fields = append(fields, string(current))
				current = current[:0]
			default:
				current = append(current, char)
			}
		}
	}
	fields = append(fields, string(current))
	return fields
}
