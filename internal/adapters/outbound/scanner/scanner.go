// Package scanner extracts layer dependency facts from C# sources.
//
// Attribution is conservative: files or using directives that cannot be
// mapped to a known layer are skipped, so the audit may under-report but
// never invents an edge that is not in the source.
package scanner

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/archforge/archforge/internal/domain"
)

var skipDirs = map[string]bool{
	".git":         true,
	".vs":          true,
	"bin":          true,
	"obj":          true,
	"packages":     true,
	"node_modules": true,
}

// defaultAliases maps path and namespace segments to layers. Users extend or
// override these through layer_aliases in .archforge.yaml.
var defaultAliases = map[string]domain.LayerID{
	"domain":           domain.LayerDomain,
	"core":             domain.LayerDomain,
	"infrastructure":   domain.LayerInfrastructure,
	"persistence":      domain.LayerInfrastructure,
	"data":             domain.LayerInfrastructure,
	"presentation":     domain.LayerPresentation,
	"api":              domain.LayerPresentation,
	"web":              domain.LayerPresentation,
	"webapi":           domain.LayerPresentation,
	"tests":            domain.LayerTest,
	"unittests":        domain.LayerTest,
	"integrationtests": domain.LayerTest,
}

// SourceScanner implements domain.SourceScanner by walking the filesystem
// and reading using directives.
type SourceScanner struct{}

func New() *SourceScanner { return &SourceScanner{} }

// ExtractFacts walks projectPath and returns one dependency fact per
// (file, target layer) pair found in using directives. Facts are ordered by
// file path, then by directive appearance, so repeated scans of an unchanged
// tree yield identical fact sequences.
func (s *SourceScanner) ExtractFacts(projectPath string, cfg domain.ProjectConfig) ([]domain.DependencyFact, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, err
	}

	aliases := mergeAliases(cfg.LayerAliases)

	var files []string
	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".cs") {
			return nil
		}
		relPath, _ := filepath.Rel(absPath, path)
		relPath = filepath.ToSlash(relPath)
		if excluded(relPath, cfg.ExcludePaths) {
			return nil
		}
		files = append(files, relPath)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	var facts []domain.DependencyFact
	for _, relPath := range files {
		fromLayer, ok := layerOfPath(relPath, aliases)
		if !ok {
			continue
		}

		targets, err := usingTargets(filepath.Join(absPath, filepath.FromSlash(relPath)))
		if err != nil {
			continue // unreadable file, skip rather than fail the scan
		}

		seen := make(map[domain.LayerID]bool)
		for _, ns := range targets {
			toLayer, ok := layerOfNamespace(ns, aliases)
			if !ok || toLayer == fromLayer || seen[toLayer] {
				continue
			}
			seen[toLayer] = true
			facts = append(facts, domain.DependencyFact{
				FromFile:  relPath,
				FromLayer: fromLayer,
				ToLayer:   toLayer,
			})
		}
	}

	return facts, nil
}

func mergeAliases(overrides map[string]domain.LayerID) map[string]domain.LayerID {
	merged := make(map[string]domain.LayerID, len(defaultAliases)+len(overrides))
	for k, v := range defaultAliases {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[strings.ToLower(k)] = v
	}
	return merged
}

func excluded(relPath string, patterns []string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, relPath); err == nil && ok {
			return true
		}
	}
	return false
}

// usingTargets returns the namespaces named by using directives at the top
// of a C# file. Statement-form usings ("using (var x = ...)"), using
// declarations of locals, and alias definitions are ignored.
func usingTargets(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var targets []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())

		// using directives only appear before the first declaration.
		if strings.HasPrefix(line, "namespace ") || strings.HasPrefix(line, "public ") ||
			strings.HasPrefix(line, "internal ") || strings.HasPrefix(line, "class ") {
			break
		}

		line = strings.TrimPrefix(line, "global ")
		if !strings.HasPrefix(line, "using ") || !strings.HasSuffix(line, ";") {
			continue
		}

		target := strings.TrimSuffix(strings.TrimPrefix(line, "using "), ";")
		target = strings.TrimSpace(strings.TrimPrefix(target, "static "))
		if idx := strings.Index(target, "="); idx >= 0 {
			target = strings.TrimSpace(target[idx+1:])
		}
		if target == "" || strings.ContainsAny(target, "(){}") {
			continue
		}
		targets = append(targets, target)
	}

	return targets, sc.Err()
}

// layerOfPath maps a file path to a layer via its segments; the most
// specific (last) matching segment wins, so "tests/Domain.Tests/..." is test
// rather than domain.
func layerOfPath(relPath string, aliases map[string]domain.LayerID) (domain.LayerID, bool) {
	var (
		layer domain.LayerID
		found bool
	)
	for _, seg := range strings.Split(relPath, "/") {
		for _, part := range strings.Split(seg, ".") {
			if l, ok := aliases[strings.ToLower(part)]; ok {
				layer, found = l, true
			}
		}
	}
	return layer, found
}

// layerOfNamespace maps a namespace to a layer via its dotted segments,
// last match winning. Framework namespaces are never attributed to a layer,
// so "System.Data" does not read as an infrastructure dependency.
func layerOfNamespace(ns string, aliases map[string]domain.LayerID) (domain.LayerID, bool) {
	first, _, _ := strings.Cut(ns, ".")
	if first == "System" || first == "Microsoft" {
		return "", false
	}
	var (
		layer domain.LayerID
		found bool
	)
	for _, seg := range strings.Split(ns, ".") {
		if l, ok := aliases[strings.ToLower(seg)]; ok {
			layer, found = l, true
		}
	}
	return layer, found
}
