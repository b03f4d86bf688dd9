package corpus_generator

import (
	"fmt"
	"regexp"
	"strings"
)

// expressionPattern locates the first expression field whose quoted content
// starts with one of the recognized declaration keywords. The dot does not
// cross newlines, so a match always runs to the end of its line.
var expressionPattern = regexp.MustCompile(`expression: "(?:pub|fn|struct).*`)

// ExtractSnippet pulls one candidate code snippet out of the raw text of a
// snapshot file. Only the first match is used; files without a match yield
// no snippet. The search is a substring heuristic, not a parse of the
// snapshot format, so an unrelated but similar-looking line can match.
func (generator *CorpusGenerator) ExtractSnippet(data string) (string, bool) {
	match := expressionPattern.FindString(data)
	if match == "" {
		return "", false
	}

	// Remove the field label, turn literal \n escapes into real newlines,
	// then drop the final character: the closing quote of the field. When a
	// field spills onto the next line the trim removes a real character
	// instead of the quote.
	snippet := strings.ReplaceAll(match, `expression: "`, "")
	snippet = strings.ReplaceAll(snippet, `\n`, "\n")
	return snippet[:len(snippet)-1], true
}

// SummarizeStructure extracts a rough declaration outline from a snippet
// using line-level patterns.
func (generator *CorpusGenerator) SummarizeStructure(snippet string) string {
	var elements []string
	lines := strings.Split(snippet, "\n")

	fnRegex := regexp.MustCompile(`^\s*(?:pub\s+)?fn\s+(\w+)`)
	structRegex := regexp.MustCompile(`^\s*(?:pub\s+)?struct\s+(\w+)`)
	implRegex := regexp.MustCompile(`^\s*impl\s+(\w+)`)
	useRegex := regexp.MustCompile(`^\s*use\s+([\w:]+)`)

	for _, line := range lines {
		if matches := fnRegex.FindStringSubmatch(line); matches != nil {
			elements = append(elements, fmt.Sprintf("function: %s", matches[1]))
		} else if matches := structRegex.FindStringSubmatch(line); matches != nil {
			elements = append(elements, fmt.Sprintf("struct: %s", matches[1]))
		} else if matches := implRegex.FindStringSubmatch(line); matches != nil {
			elements = append(elements, fmt.Sprintf("impl: %s", matches[1]))
		} else if matches := useRegex.FindStringSubmatch(line); matches != nil {
			elements = append(elements, fmt.Sprintf("use: %s", matches[1]))
		}
	}

	return strings.Join(elements, "\n")
}
