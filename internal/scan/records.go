package scan

import "strings"

// FormatTSV renders repositories as tab-separated "name\tpath" lines,
// newline-joined with no trailing separator. This is both the cache file
// payload and the input format fed to the fuzzy selector.
func FormatTSV(repos []Repo) string {
	lines := make([]string, len(repos))
	for i, r := range repos {
		lines[i] = r.Name + "\t" + r.Path
	}
	return strings.Join(lines, "\n")
}
