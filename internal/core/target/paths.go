package target

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ahmed6ww/apm/internal/core"
	"github.com/tailscale/hujson"
)

// homeSubdir resolves a directory under the user's home. Failure to resolve
// home is a fatal precondition, surfaced before any write attempt.
func homeSubdir(parts ...string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", &core.PreconditionError{Reason: "resolving home directory", Err: err}
	}
	return filepath.Join(append([]string{home}, parts...)...), nil
}

// userConfigSubdir resolves a directory under the platform config root
// ($XDG_CONFIG_HOME, ~/Library/Application Support, %AppData%).
func userConfigSubdir(parts ...string) (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", &core.PreconditionError{Reason: "resolving config directory", Err: err}
	}
	return filepath.Join(append([]string{cfg}, parts...)...), nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// readConfigFile reads a config document. Returns empty string if not found.
func readConfigFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

// writeConfigFile writes content atomically, creating parent directories.
func writeConfigFile(path string, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// mergeJSONConfig sets topKey.name = value in the JSON document at path,
// creating the document and the top-level object as needed. Existing keys
// other than name are preserved byte-for-byte where the format allows;
// comments and formatting survive via the hujson AST. A same-name key is
// overwritten.
func mergeJSONConfig(path, topKey, name string, value any, keepComments bool) error {
	content, err := readConfigFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if content == "" {
		content = "{}"
	}

	root, err := hujson.Parse([]byte(content))
	if err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	valueJSON, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding tool entry: %w", err)
	}

	// Ensure the top-level object exists.
	topPtr := "/" + jsonPointerEscape(topKey)
	if root.Find(topPtr) == nil {
		patch := fmt.Sprintf(`[{"op":"add","path":%q,"value":{}}]`, topPtr)
		if err := root.Patch([]byte(patch)); err != nil {
			return fmt.Errorf("creating config key %q: %w", topKey, err)
		}
	}

	entryPtr := topPtr + "/" + jsonPointerEscape(name)
	op := "add"
	if root.Find(entryPtr) != nil {
		op = "replace"
	}

	patch := fmt.Sprintf(`[{"op":%q,"path":%q,"value":%s}]`, op, entryPtr, valueJSON)
	if err := root.Patch([]byte(patch)); err != nil {
		return fmt.Errorf("writing tool entry: %w", err)
	}

	root.Format()
	removeTrailingCommas(&root)
	if !keepComments {
		root.Standardize()
	}

	return writeConfigFile(path, string(root.Pack()))
}

// jsonPointerEscape escapes a string for use as a JSON Pointer token (RFC 6901).
func jsonPointerEscape(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}

// removeTrailingCommas walks the JSONC AST and removes trailing commas.
func removeTrailingCommas(v *hujson.Value) {
	switch vv := v.Value.(type) {
	case *hujson.Object:
		for i := range vv.Members {
			removeTrailingCommas(&vv.Members[i].Name)
			removeTrailingCommas(&vv.Members[i].Value)
		}
		if len(vv.Members) > 0 {
			vv.Members[len(vv.Members)-1].Value.AfterExtra = nil
		}
	case *hujson.Array:
		for i := range vv.Elements {
			removeTrailingCommas(&vv.Elements[i])
		}
		if len(vv.Elements) > 0 {
			vv.Elements[len(vv.Elements)-1].AfterExtra = nil
		}
	}
}

// copyDirectory mirrors the contents of src into dst.
func copyDirectory(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		dstPath := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(dstPath, 0o755)
		}
		return copyFile(path, dstPath)
	})
}

func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = srcFile.Close() }()

	info, err := srcFile.Stat()
	if err != nil {
		return err
	}

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}
	defer func() { _ = dstFile.Close() }()

	_, err = io.Copy(dstFile, srcFile)
	return err
}
