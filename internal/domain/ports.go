package domain

// ConfigLoader loads the project configuration from a project directory.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// SourceScanner extracts dependency facts from a project's source tree.
// Under-reporting is possible if sources are excluded or unparseable; the
// checker itself never produces false positives given correct facts.
type SourceScanner interface {
	ExtractFacts(projectPath string, cfg ProjectConfig) ([]DependencyFact, error)
}

// ArtifactWriter persists generated artifacts. Writing is the caller's
// side of the contract; the generator engine itself never touches disk.
type ArtifactWriter interface {
	Write(projectPath string, artifacts []GeneratedArtifact, force bool) error
}

// RepoInfo answers questions about the project's version control state.
type RepoInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}
