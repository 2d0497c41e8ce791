package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

type SourceKind string

const (
	SourceDefault SourceKind = "default"
	SourceFile    SourceKind = "file"
)

type Source struct {
	Kind   SourceKind
	Name   string // for default
	File   string
	Line   int
	Column int
}

// String renders the source as file:PATH:LINE:COL or default:NAME.
func (s Source) String() string {
	switch s.Kind {
	case SourceFile:
		if s.File == "" {
			return "file"
		}
		if s.Line > 0 {
			return fmt.Sprintf("file:%s:%d:%d", s.File, s.Line, s.Column)
		}
		return "file:" + s.File
	case SourceDefault:
		if s.Name != "" {
			return "default:" + s.Name
		}
		return "default"
	default:
		return string(s.Kind)
	}
}

type LoadResult struct {
	Config  *Config
	Sources map[string]Source // YAML-path -> last writer source (file only)
	Files   []string          // all loaded files, in load order
}

func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "edgesnap", "config.yaml"), nil
}

// Load reads the merged configuration from the standard location and returns an
// effective config ready for use by the daemon.
func Load() (*Config, error) {
	res, err := LoadWithSources()
	if err != nil {
		return nil, err
	}
	return res.Config, nil
}

// LoadWithSources loads config and returns file-level sources for introspection.
func LoadWithSources() (*LoadResult, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads path and its includes. A missing file yields the
// defaults.
func LoadFromPath(path string) (*LoadResult, error) {
	l := &fileLoader{
		seen:    map[string]bool{},
		sources: map[string]Source{},
	}

	exists, err := pathExists(path)
	if err != nil {
		return nil, err
	}
	if exists {
		if err := l.load(path); err != nil {
			return nil, err
		}
	}

	cfg, err := BuildEffectiveConfig(l.raw)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			if src, ok := l.sources[verr.Path]; ok {
				verr.Source = src
			}
		}
		return nil, err
	}

	return &LoadResult{
		Config:  cfg,
		Sources: l.sources,
		Files:   l.files,
	}, nil
}

// fileLoader merges a config file and everything it includes. Includes are
// applied before the including file, in the order they are listed, so the
// including file always wins.
type fileLoader struct {
	seen    map[string]bool
	chain   []string // files currently being loaded, outermost first
	raw     RawConfig
	sources map[string]Source
	files   []string
}

func (l *fileLoader) load(path string) error {
	canon, err := canonicalPath(path)
	if err != nil {
		return err
	}
	if slices.Contains(l.chain, canon) {
		return fmt.Errorf("include cycle detected: %s -> %s", strings.Join(l.chain, " -> "), canon)
	}
	if l.seen[canon] {
		return nil
	}
	l.seen[canon] = true

	data, err := os.ReadFile(canon)
	if err != nil {
		return fmt.Errorf("%s: failed to read: %w", canon, err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%s: failed to parse yaml: %w", canon, err)
	}
	var raw RawConfig
	if err := decodeStrictYAML(data, &raw); err != nil {
		return fmt.Errorf("%s: %w", canon, err)
	}
	root := documentRoot(&doc)

	l.chain = append(l.chain, canon)
	for _, ref := range includeRefs(root, canon) {
		paths, err := expandInclude(canon, ref.Value)
		if err != nil {
			return fmt.Errorf("%s: include %q: %w", ref.Source, ref.Value, err)
		}
		for _, p := range paths {
			if err := l.load(p); err != nil {
				return err
			}
		}
	}
	l.chain = l.chain[:len(l.chain)-1]

	l.raw = l.raw.merge(raw)
	for key, src := range fileSources(root, canon) {
		l.sources[key] = src
	}
	l.files = append(l.files, canon)
	return nil
}

func decodeStrictYAML(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// canonicalPath makes path absolute and resolves symlinks when it can.
func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		return real, nil
	}
	return abs, nil
}

// expandInclude resolves an include entry relative to the including file.
// A directory expands to its *.yaml and *.yml files in name order.
func expandInclude(baseFile string, include string) ([]string, error) {
	if include == "" {
		return nil, fmt.Errorf("path is empty")
	}
	if include == "~" || strings.HasPrefix(include, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		include = filepath.Join(home, strings.TrimPrefix(include[1:], "/"))
	}
	if !filepath.IsAbs(include) {
		include = filepath.Join(filepath.Dir(baseFile), include)
	}

	info, err := os.Stat(include)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{include}, nil
	}

	entries, err := os.ReadDir(include)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, ent := range entries {
		switch strings.ToLower(filepath.Ext(ent.Name())) {
		case ".yaml", ".yml":
			if !ent.IsDir() {
				files = append(files, filepath.Join(include, ent.Name()))
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}
