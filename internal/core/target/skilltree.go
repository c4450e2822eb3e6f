package target

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ahmed6ww/apm/internal/core"
)

const skillEntryFile = "SKILL.md"

// auxSubdirs are the optional auxiliary subdirectories of a skill, with the
// candidate filenames tried when the source is remote. The registry is a
// static-file host with no directory listing, so remote mirroring is a
// best-effort probe of known names; anything not found is silently skipped.
var auxSubdirs = []struct {
	name       string
	candidates []string
}{
	{"scripts", []string{"run_ruff.py", "scaffold_test.py", "main.py", "setup.py"}},
	{"references", []string{"cleanup_rules.md", "clean_rules.md", "quad_strategy.md", "repo_strategy.md", "clean_arch.md", "REFERENCE.md"}},
	{"assets", []string{"project_layout.txt", "template.json"}},
}

// writeSkillTree renders one skill in the skill-standard layout: a directory
// named after the skill holding a SKILL.md entry document plus mirrored
// auxiliary subdirectories.
func writeSkillTree(dir string, skill core.Skill, fallbackDescription string, client *http.Client) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating skill directory: %w", err)
	}

	entry := renderSkillEntry(skill, fallbackDescription)
	if err := os.WriteFile(filepath.Join(dir, skillEntryFile), []byte(entry), 0o644); err != nil {
		return err
	}

	switch skill.Source.Kind {
	case core.SourceLocal:
		return copyAuxSubdirs(skill.Source.Location, dir)
	case core.SourceRemote:
		return fetchAuxSubdirs(client, skill.Source.Location, dir)
	}
	return nil
}

// renderSkillEntry produces the SKILL.md content: a frontmatter header block
// followed by the skill body.
func renderSkillEntry(skill core.Skill, fallbackDescription string) string {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "name: %s\n", skill.Name)

	description := skill.Description
	if description == "" {
		description = fallbackDescription
	}
	fmt.Fprintf(&b, "description: %s\n", description)

	if skill.License != "" {
		fmt.Fprintf(&b, "license: %s\n", skill.License)
	}
	if skill.Compatibility != "" {
		fmt.Fprintf(&b, "compatibility: %s\n", skill.Compatibility)
	}
	if skill.AllowedTools != "" {
		fmt.Fprintf(&b, "allowed-tools: %s\n", skill.AllowedTools)
	}
	if skill.Dependencies != "" {
		fmt.Fprintf(&b, "dependencies: %s\n", skill.Dependencies)
	}
	if len(skill.Metadata) > 0 {
		b.WriteString("metadata:\n")
		keys := make([]string, 0, len(skill.Metadata))
		for k := range skill.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "  %s: %s\n", k, skill.Metadata[k])
		}
	}

	b.WriteString("---\n\n")
	b.WriteString(skill.Content)
	return b.String()
}

// copyAuxSubdirs mirrors scripts/, references/ and assets/ from a local
// skill source directory.
func copyAuxSubdirs(srcDir, destDir string) error {
	for _, sub := range auxSubdirs {
		src := filepath.Join(srcDir, sub.name)
		if !dirExists(src) {
			continue
		}
		if err := copyDirectory(src, filepath.Join(destDir, sub.name)); err != nil {
			return fmt.Errorf("copying %s: %w", sub.name, err)
		}
	}
	return nil
}

// fetchAuxSubdirs downloads auxiliary files from a remote skill base URL by
// probing the fixed candidate lists. Fetches run sequentially; misses are
// skipped and a subdirectory is only created once something was retrieved.
func fetchAuxSubdirs(client *http.Client, baseURL, destDir string) error {
	baseURL = strings.TrimSuffix(baseURL, "/")
	for _, sub := range auxSubdirs {
		for _, name := range sub.candidates {
			url := fmt.Sprintf("%s/%s/%s", baseURL, sub.name, name)
			data, ok := fetchRemoteFile(client, url)
			if !ok {
				continue
			}
			dest := filepath.Join(destDir, sub.name, name)
			if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(dest, data, 0o644); err != nil {
				return err
			}
		}
	}
	return nil
}

// fetchRemoteFile retrieves one file. Any failure, transport or non-2xx,
// reports a miss.
func fetchRemoteFile(client *http.Client, url string) ([]byte, bool) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, false
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false
	}
	return data, true
}
