package cucumber

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"labgrade/internal/cli"

	"github.com/cucumber/godog"
)

type featureState struct {
	repoDir     string
	configPath  string
	previousWD  string
	stdout      bytes.Buffer
	stderr      bytes.Buffer
	exitCode    int
	initialized bool
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a git repository with a graded markup file$`, state.aGitRepositoryWithMarkupFile)
	ctx.Step(`^a git repository with no markup file$`, state.aGitRepositoryWithNoMarkupFile)
	ctx.Step(`^the config is invalid$`, state.theConfigIsInvalid)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
	ctx.Step(`^the exit code is zero$`, state.theExitCodeIsZero)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^a grade record is written$`, state.aGradeRecordIsWritten)
	ctx.Step(`^the recorded total is "([^"]+)"$`, state.theRecordedTotalIs)
	ctx.Step(`^the feedback mentions "([^"]+)"$`, state.theFeedbackMentions)
	ctx.Step(`^the error message points to the invalid field$`, state.theErrorMessagePointsToInvalidField)
}

func (s *featureState) reset() {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.initialized = false
}

func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
	}
	if s.repoDir != "" {
		_ = os.RemoveAll(s.repoDir)
	}
}

func (s *featureState) aGitRepositoryWithMarkupFile() error {
	if err := s.initRepo(); err != nil {
		return err
	}
	page := "<!doctype html>\n<html><body><div><h1>Lab</h1><p>Hello</p></div></body></html>\n"
	path := filepath.Join(s.repoDir, "index.html")
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		return fmt.Errorf("write markup file: %w", err)
	}
	if err := s.runGit(s.repoDir, "add", "index.html"); err != nil {
		return err
	}
	return s.runGit(s.repoDir, "commit", "-m", "add page")
}

func (s *featureState) aGitRepositoryWithNoMarkupFile() error {
	return s.initRepo()
}

func (s *featureState) theConfigIsInvalid() error {
	return s.writeConfig(invalidConfigYAML())
}

func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "labgrade" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

func (s *featureState) theExitCodeIsZero() error {
	if s.exitCode != 0 {
		return fmt.Errorf("expected exit code 0, got %d (stderr: %s)", s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

func (s *featureState) aGradeRecordIsWritten() error {
	_, err := s.readRecord()
	return err
}

func (s *featureState) theRecordedTotalIs(want string) error {
	records, err := s.readRecord()
	if err != nil {
		return err
	}
	if len(records) != 2 {
		return fmt.Errorf("expected header and one row, got %d rows", len(records))
	}
	if got := records[1][1]; got != want {
		return fmt.Errorf("expected recorded total %q, got %q", want, got)
	}
	return nil
}

func (s *featureState) theFeedbackMentions(phrase string) error {
	path := filepath.Join(s.repoDir, ".labgrade", "FEEDBACK.md")
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read feedback: %w", err)
	}
	if !strings.Contains(string(data), phrase) {
		return fmt.Errorf("expected feedback to mention %q", phrase)
	}
	return nil
}

func (s *featureState) theErrorMessagePointsToInvalidField() error {
	errOutput := s.stderr.String()
	if !strings.Contains(errOutput, "version") {
		return fmt.Errorf("expected error to mention version, got %q", errOutput)
	}
	return nil
}

func (s *featureState) readRecord() ([][]string, error) {
	path := filepath.Join(s.repoDir, ".labgrade", "grade.csv")
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open grade record: %w", err)
	}
	defer file.Close()
	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse grade record: %w", err)
	}
	return records, nil
}

func (s *featureState) initRepo() error {
	if s.initialized {
		return nil
	}
	dir, err := os.MkdirTemp("", "labgrade-feature-*")
	if err != nil {
		return fmt.Errorf("create temp repo: %w", err)
	}
	s.repoDir = dir
	s.configPath = filepath.Join(dir, ".labgrade", "config.yml")
	if err := os.MkdirAll(filepath.Dir(s.configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := s.writeConfig(validConfigYAML()); err != nil {
		return err
	}
	if err := s.initGitRepo(dir); err != nil {
		return err
	}
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}
	s.previousWD = wd
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	s.initialized = true
	return nil
}

func (s *featureState) initGitRepo(dir string) error {
	if err := s.runGit(dir, "-c", "init.defaultBranch=main", "init"); err != nil {
		return err
	}
	readme := filepath.Join(dir, "README.md")
	if err := os.WriteFile(readme, []byte("fixture"), 0o644); err != nil {
		return fmt.Errorf("write README: %w", err)
	}
	if err := s.runGit(dir, "add", "README.md"); err != nil {
		return err
	}
	return s.runGit(dir, "commit", "-m", "initial")
}

func (s *featureState) runGit(dir string, args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git %s failed: %v (%s)", strings.Join(args, " "), err, strings.TrimSpace(string(output)))
	}
	return nil
}

func (s *featureState) writeConfig(contents string) error {
	if s.configPath == "" {
		return fmt.Errorf("config path is not set")
	}
	if err := os.WriteFile(s.configPath, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func validConfigYAML() string {
	return `version: 1
deadline: "2025-10-15T23:59:59+05:00"

submission:
  max: 20
  late_score: 10

source:
  filename: "index.html"

output:
  dir: ".labgrade"
`
}

func invalidConfigYAML() string {
	return `version: 2
deadline: "2025-10-15T23:59:59+05:00"

submission:
  max: 20
  late_score: 10
`
}
