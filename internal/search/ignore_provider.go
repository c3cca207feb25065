package search

import (
	"bufio"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// ignoreFileNames are read from every directory, lowest priority first so
// later files can override earlier ones with negations.
var ignoreFileNames = []string{".gitignore", ".ignore", ".vuitignore"}

// dirRules holds the patterns in effect for one directory: everything
// inherited from its parents plus the directory's own ignore files.
type dirRules struct {
	patterns []gitignore.Pattern
	matcher  gitignore.Matcher
}

// ignoreProvider lazily builds per-directory ignore rules. It is owned by a
// single walk and is not safe for concurrent use.
type ignoreProvider struct {
	root  string
	cache map[string]*dirRules
}

func newIgnoreProvider(root string) *ignoreProvider {
	p := &ignoreProvider{
		root:  root,
		cache: make(map[string]*dirRules),
	}

	var base []gitignore.Pattern
	base = p.appendGlobalPatterns(base)
	base = appendPatternFile(base, filepath.Join(root, ".git", "info", "exclude"), nil)
	base = p.appendDirectoryPatterns(base, ".")
	p.cache["."] = newDirRules(base)

	return p
}

func newDirRules(patterns []gitignore.Pattern) *dirRules {
	return &dirRules{
		patterns: patterns,
		matcher:  gitignore.NewMatcher(patterns),
	}
}

// Ignored reports whether relPath (slash separated, relative to the root)
// is excluded by the rules of its parent directory.
func (p *ignoreProvider) Ignored(relPath string, isDir bool) bool {
	rules := p.rulesFor(parentDirKey(normalizeDirKey(relPath)))
	if len(rules.patterns) == 0 {
		return false
	}
	return rules.matcher.Match(splitRelPath(relPath), isDir)
}

func (p *ignoreProvider) rulesFor(key string) *dirRules {
	if rules, ok := p.cache[key]; ok {
		return rules
	}

	parent := p.rulesFor(parentDirKey(key))
	patterns := make([]gitignore.Pattern, len(parent.patterns), len(parent.patterns)+8)
	copy(patterns, parent.patterns)
	patterns = p.appendDirectoryPatterns(patterns, key)

	rules := newDirRules(patterns)
	p.cache[key] = rules
	return rules
}

func (p *ignoreProvider) appendDirectoryPatterns(patterns []gitignore.Pattern, key string) []gitignore.Pattern {
	dir := p.root
	var domain []string
	if key != "." {
		dir = filepath.Join(p.root, filepath.FromSlash(key))
		domain = splitRelPath(key)
	}
	for _, name := range ignoreFileNames {
		patterns = appendPatternFile(patterns, filepath.Join(dir, name), domain)
	}
	return patterns
}

func (p *ignoreProvider) appendGlobalPatterns(patterns []gitignore.Pattern) []gitignore.Pattern {
	seen := make(map[string]struct{})
	add := func(candidate string) {
		if candidate == "" {
			return
		}
		if _, ok := seen[candidate]; ok {
			return
		}
		seen[candidate] = struct{}{}
		patterns = appendPatternFile(patterns, candidate, nil)
	}

	add(p.coreExcludesFile())
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		add(filepath.Join(home, ".gitignore"))
		add(filepath.Join(home, ".gitignore_global"))
		add(filepath.Join(home, ".config", "git", "ignore"))
	}
	return patterns
}

// appendPatternFile parses one ignore file. Missing or unreadable files
// contribute nothing.
func appendPatternFile(patterns []gitignore.Pattern, filePath string, domain []string) []gitignore.Pattern {
	data, err := os.ReadFile(filePath)
	if err != nil || len(data) == 0 {
		return patterns
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, domain))
	}
	return patterns
}

// coreExcludesFile reads core.excludesFile from the repository's git config.
func (p *ignoreProvider) coreExcludesFile() string {
	file, err := os.Open(filepath.Join(p.root, ".git", "config"))
	if err != nil {
		return ""
	}
	defer func() {
		_ = file.Close()
	}()

	scanner := bufio.NewScanner(file)
	inCore := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			inCore = strings.HasPrefix(strings.ToLower(line), "[core")
			continue
		}
		if !inCore || !strings.HasPrefix(strings.ToLower(line), "excludesfile") {
			continue
		}

		value := ""
		if idx := strings.Index(line, "="); idx >= 0 {
			value = strings.TrimSpace(line[idx+1:])
		}
		value = expandUserPath(value)
		if value == "" {
			continue
		}
		if !filepath.IsAbs(value) {
			value = filepath.Join(p.root, value)
		}
		return value
	}
	return ""
}

func expandUserPath(value string) string {
	value = strings.Trim(strings.TrimSpace(value), `"`)
	if value != "~" && !strings.HasPrefix(value, "~/") {
		return value
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return value
	}
	if value == "~" {
		return home
	}
	return filepath.Join(home, value[2:])
}

func normalizeDirKey(relDir string) string {
	if relDir == "" {
		return "."
	}
	cleaned := filepath.ToSlash(filepath.Clean(relDir))
	cleaned = strings.TrimPrefix(cleaned, "./")
	if cleaned == "" || cleaned == "/" {
		return "."
	}
	return cleaned
}

func parentDirKey(relDir string) string {
	if relDir == "." {
		return "."
	}
	parent := path.Dir(relDir)
	if parent == "/" {
		return "."
	}
	return parent
}

func splitRelPath(relPath string) []string {
	relPath = normalizeDirKey(relPath)
	if relPath == "." {
		return nil
	}
	return strings.Split(relPath, "/")
}
