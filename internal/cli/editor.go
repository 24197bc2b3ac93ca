package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoChanges is returned by EditYAML when the file was saved unchanged.
var ErrNoChanges = errors.New("no changes made")

// EditYAML marshals v to YAML, opens it in $EDITOR below header, and
// unmarshals the edited document back into v. Header lines should be
// YAML comments.
func EditYAML(v any, header string) error {
	content, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	content = append([]byte(header), content...)

	edited, err := EditInEditor(content, ".yaml")
	if err != nil {
		return err
	}
	if bytes.Equal(edited, content) {
		return ErrNoChanges
	}

	if err := yaml.Unmarshal(edited, v); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	return nil
}

// EditInEditor writes content to a private temporary file, opens it in
// $VISUAL or $EDITOR, and returns the file as the editor left it. suffix
// selects syntax highlighting, e.g. ".yaml".
func EditInEditor(content []byte, suffix string) ([]byte, error) {
	editor := getEditor()
	if editor == "" {
		return nil, fmt.Errorf("EDITOR not set. Set it or use --flags instead of -i")
	}

	dir, err := os.MkdirTemp("", "pt-edit-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "record"+suffix)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := runEditor(editor, path); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read edited file: %w", err)
	}
	return edited, nil
}

// getEditor checks VISUAL first, then EDITOR.
func getEditor() string {
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	return os.Getenv("EDITOR")
}

// runEditor executes the editor on path. The editor may carry arguments,
// as in "code --wait".
func runEditor(editor, path string) error {
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("empty editor command")
	}

	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run editor: %w", err)
	}
	return nil
}
