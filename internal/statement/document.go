package statement

import "regexp"

var extPattern = regexp.MustCompile(`\.\w+$`)

// OutputFilename derives the converted document's filename from the uploaded
// statement's name: the extension is replaced by "_converted.txt".
func OutputFilename(name string) string {
	return extPattern.ReplaceAllString(name, "") + "_converted.txt"
}
