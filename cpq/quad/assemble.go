package quad

import (
	"regexp"
	"strconv"
	"strings"
)

var blankLines = regexp.MustCompile(`\n{2,}`)

// Normalize strips leading newlines and collapses every run of consecutive
// newlines into one.
func Normalize(code string) string {
	return blankLines.ReplaceAllString(strings.TrimLeft(code, "\n"), "\n")
}

// Assembler turns the code of a whole program into the final QUAD text.
type Assembler struct {
	// Trailer is written after the HALT instruction.
	Trailer string
	// ResolveLabels replaces symbolic labels with instruction numbers.
	ResolveLabels bool
}

// Assemble normalizes code, terminates it with HALT and appends the trailer.
func (a Assembler) Assemble(code string) string {
	body := strings.TrimRight(Normalize(code), "\n")
	if body != "" {
		body += "\n"
	}
	body += HALT.String()

	if a.ResolveLabels {
		body = ResolveLabels(body)
	}

	return body + "\n" + a.Trailer + "\n"
}

// ResolveLabels removes label definitions and replaces every jump target
// with the 1-based number of the instruction it marks.
func ResolveLabels(quad string) string {
	lines := strings.Split(quad, "\n")

	targets := map[string]int{}
	count := 0
	for _, line := range lines {
		if isLabelLine(line) {
			targets[strings.TrimSuffix(line, ":")] = count + 1
		} else {
			count++
		}
	}

	resolved := make([]string, 0, count)
	for _, line := range lines {
		if isLabelLine(line) {
			continue
		}

		// only jumps take a label, and always as their first argument
		fields := strings.Fields(line)
		if len(fields) > 1 && (fields[0] == JUMP.String() || fields[0] == JMPZ.String()) {
			if target, ok := targets[fields[1]]; ok {
				fields[1] = strconv.Itoa(target)
				line = strings.Join(fields, " ")
			}
		}
		resolved = append(resolved, line)
	}

	return strings.Join(resolved, "\n")
}

func isLabelLine(line string) bool {
	return len(line) > 1 && strings.HasSuffix(line, ":") && !strings.ContainsAny(line, " \t")
}
