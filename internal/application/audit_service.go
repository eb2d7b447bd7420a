package application

import (
	"fmt"

	"github.com/archforge/archforge/internal/domain"
	"github.com/archforge/archforge/internal/domain/audit"
)

// AuditService orchestrates the audit pipeline:
// load config -> build layer graph -> extract facts -> check conformance.
type AuditService struct {
	loader  domain.ConfigLoader
	scanner domain.SourceScanner
	repo    domain.RepoInfo
}

func NewAuditService(loader domain.ConfigLoader, scanner domain.SourceScanner, repo domain.RepoInfo) *AuditService {
	return &AuditService{loader: loader, scanner: scanner, repo: repo}
}

// AuditProject extracts dependency facts from the project's sources and
// checks them against the active layer graph. The report is stamped with the
// current commit hash when the project is a git repository.
func (s *AuditService) AuditProject(projectPath string) (*domain.AuditReport, error) {
	cfg, err := s.loader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	graph, err := cfg.Graph()
	if err != nil {
		return nil, err
	}

	facts, err := s.scanner.ExtractFacts(projectPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("extracting dependency facts: %w", err)
	}

	report, err := audit.Run(facts, graph)
	if err != nil {
		return nil, err
	}

	if s.repo != nil && s.repo.IsGitRepo(projectPath) {
		if hash, err := s.repo.CommitHash(projectPath); err == nil {
			report.CommitHash = hash
		}
	}

	return report, nil
}

// ActiveGraph returns the layer graph the project audits against, for
// rendering the rule table.
func (s *AuditService) ActiveGraph(projectPath string) (*domain.LayerGraph, error) {
	cfg, err := s.loader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg.Graph()
}
