package puzzle

import "strings"

// normalize converts CRLF to LF and drops trailing newlines.
func normalize(input string) string {
	return strings.TrimRight(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
}

// Lines splits input into lines. Trailing newlines are ignored; interior empty
// lines are kept so line numbers stay meaningful. Returns ErrEmptyInput when
// the input has no non-blank content.
func Lines(input string) ([]string, error) {
	s := normalize(input)
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmptyInput
	}

	return strings.Split(s, "\n"), nil
}

// Sections splits input on blank lines. Leading and trailing whitespace of the
// whole input is ignored. Returns ErrEmptyInput when nothing remains.
func Sections(input string) ([]string, error) {
	s := strings.TrimSpace(strings.ReplaceAll(input, "\r\n", "\n"))
	if s == "" {
		return nil, ErrEmptyInput
	}

	var out []string
	for _, sec := range strings.Split(s, "\n\n") {
		if sec = strings.Trim(sec, "\n"); sec != "" {
			out = append(out, sec)
		}
	}

	return out, nil
}
