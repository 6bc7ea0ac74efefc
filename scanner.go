package breakout

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ClassReference is a class attribute value found in markup or code
type ClassReference struct {
	Value    string       // full attribute value: "grid-cols-breakout px-gap"
	Location FileLocation // where it was found
}

// Tokens splits the attribute value into class names
func (r ClassReference) Tokens() []string {
	return strings.Fields(r.Value)
}

// FileLocation tracks where a class reference was found
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based column of the first class in the value
	Text   string // trimmed line content for source display
}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // files matched by the glob patterns
	FilesScanned    int // files actually scanned
	FilesSkipped    int // generated or gitignored files
}

var (
	// classPatterns find class attribute values. Each has one capture group.
	classPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bclass(?:Name)?="([^"]*)"`),
		regexp.MustCompile(`\bclass(?:Name)?='([^']*)'`),
		regexp.MustCompile(`\bclass(?:Name)?=\{\s*"([^"]*)"`),
		regexp.MustCompile("\\bclass(?:Name)?=\\{\\s*`([^`]*)`"),
	}

	// templCall matches templ.Classes(...) and templ.KV(...) calls
	templCall = regexp.MustCompile(`templ\.(Classes|KV)\(([^)]*)\)`)

	// quoted matches a double-quoted string literal
	quoted = regexp.MustCompile(`"([^"]*)"`)

	// Comment lines are skipped
	commentPattern = regexp.MustCompile(`^\s*(//|/\*|\*|<!--)`)

	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isGenerated reports whether path is a generated file we never lint
func isGenerated(path string) bool {
	return strings.HasSuffix(path, "_templ.go") ||
		strings.HasSuffix(path, ".templ.go") ||
		strings.HasSuffix(path, ".min.js")
}

// loadGitIgnore loads the .gitignore file once. A missing file is fine.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile reports whether a file is excluded from scanning.
// Gitignore rules only apply to relative paths inside the project.
func shouldSkipFile(path string) bool {
	if isGenerated(path) {
		return true
	}
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}
	return false
}

// ScanFiles scans files matching the glob patterns for class references.
// Unreadable files are skipped.
func ScanFiles(scanPatterns []string) ([]ClassReference, ScanStats, error) {
	files, stats, err := expandGlobPatterns(scanPatterns)
	if err != nil {
		return nil, stats, err
	}

	var refs []ClassReference
	for _, file := range files {
		fileRefs, err := scanFile(file)
		if err != nil {
			stats.FilesSkipped++
			stats.FilesScanned--
			continue
		}
		refs = append(refs, fileRefs...)
	}

	return refs, stats, nil
}

// expandGlobPatterns expands globs to regular files and tracks statistics
func expandGlobPatterns(patterns []string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	return files, stats, nil
}

// scanFile scans a single file for class references
func scanFile(filePath string) ([]ClassReference, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var refs []ClassReference
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		refs = append(refs, extractClassesFromLine(scanner.Text(), lineNum, filePath)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return refs, nil
}

// extractClassesFromLine extracts all class references from one line
func extractClassesFromLine(line string, lineNum int, file string) []ClassReference {
	if commentPattern.MatchString(line) {
		return nil
	}

	newRef := func(value string, column int) ClassReference {
		return ClassReference{
			Value: value,
			Location: FileLocation{
				File:   file,
				Line:   lineNum,
				Column: column,
				Text:   strings.TrimSpace(line),
			},
		}
	}

	var refs []ClassReference

	if strings.Contains(line, "templ.") {
		for _, m := range templCall.FindAllStringSubmatchIndex(line, -1) {
			args := line[m[4]:m[5]]
			literals := quoted.FindAllStringSubmatchIndex(args, -1)
			if line[m[2]:m[3]] == "KV" && len(literals) > 1 {
				// only the key of templ.KV is a class
				literals = literals[:1]
			}
			for _, lit := range literals {
				value := args[lit[2]:lit[3]]
				if strings.TrimSpace(value) == "" {
					continue
				}
				refs = append(refs, newRef(value, m[4]+lit[2]+leadingSpace(value)+1))
			}
		}
		if len(refs) > 0 {
			return refs
		}
	}

	for _, re := range classPatterns {
		for _, m := range re.FindAllStringSubmatchIndex(line, -1) {
			value := line[m[2]:m[3]]
			if strings.TrimSpace(value) == "" {
				continue
			}
			refs = append(refs, newRef(value, m[2]+leadingSpace(value)+1))
		}
	}

	return refs
}

func leadingSpace(s string) int {
	return len(s) - len(strings.TrimLeft(s, " \t"))
}

// findClassColumn locates the 1-based column of a class token inside a
// reference, falling back to the reference column.
func findClassColumn(ref ClassReference, class string) int {
	start := ref.Location.Column - 1
	if start < 0 {
		return ref.Location.Column
	}
	value := ref.Value
	offset := 0
	for _, field := range strings.Fields(value) {
		idx := strings.Index(value[offset:], field)
		if idx < 0 {
			break
		}
		pos := offset + idx
		if field == class {
			return ref.Location.Column + pos - leadingSpace(value)
		}
		offset = pos + len(field)
	}
	return ref.Location.Column
}

// GetRelativePath returns path relative to the working directory when possible
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}
