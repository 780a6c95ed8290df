package architecture_test

import (
	"bufio"
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// Layers, innermost first. Scoring and aggregation stay pure; persistence
// and transport never leak inward.
var layerRules = []struct {
	prefix     string
	disallowed []string
}{
	{"internal/modules/", []string{"app/", "clients/", "data/", "domain/", "http/", "observability/", "platform/", "services/"}},
	{"internal/pkg/", []string{"app/", "clients/", "data/", "domain/", "http/", "modules/", "services/"}},
	{"internal/platform/", []string{"app/", "clients/", "data/", "domain/", "http/", "modules/", "services/"}},
	{"internal/domain/", []string{"app/", "clients/", "data/", "http/", "services/"}},
	{"internal/data/", []string{"app/", "clients/", "http/", "services/"}},
	{"internal/clients/", []string{"app/", "data/", "http/", "services/"}},
	{"internal/observability/", []string{"app/", "data/", "http/", "services/"}},
	{"internal/services/", []string{"app/", "http/"}},
	{"internal/http/", []string{"app/", "clients/", "data/db"}},
}

func TestImportBoundaries(t *testing.T) {
	root, modulePath := moduleRoot(t)
	fset := token.NewFileSet()

	type violation struct {
		file string
		imp  string
		rule string
	}
	var violations []violation

	walkErr := filepath.WalkDir(filepath.Join(root, "internal"), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		disallowed := disallowedImports(modulePath, rel)
		if len(disallowed) == 0 {
			return nil
		}
		f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			return err
		}
		for _, spec := range f.Imports {
			imp, err := strconv.Unquote(spec.Path.Value)
			if err != nil {
				continue
			}
			for _, bad := range disallowed {
				if strings.HasPrefix(imp, bad) {
					violations = append(violations, violation{file: rel, imp: imp, rule: bad})
					break
				}
			}
		}
		return nil
	})
	if walkErr != nil {
		t.Fatalf("walk internal/: %v", walkErr)
	}

	if len(violations) > 0 {
		var b strings.Builder
		b.WriteString("import boundary violations:\n")
		for _, v := range violations {
			fmt.Fprintf(&b, "- %s imports %q (disallowed: %q)\n", v.file, v.imp, v.rule)
		}
		t.Fatal(b.String())
	}
}

func TestDisallowedImports(t *testing.T) {
	const mod = "example.com/m"
	got := disallowedImports(mod, "internal/modules/brainmap/scorer.go")
	if len(got) == 0 || !strings.HasPrefix(got[0], mod+"/internal/") {
		t.Fatalf("modules rules=%v", got)
	}
	if got := disallowedImports(mod, "cmd/brainmapctl/main.go"); got != nil {
		t.Fatalf("cmd should be unrestricted, got %v", got)
	}
}

func disallowedImports(modulePath, rel string) []string {
	for _, rule := range layerRules {
		if !strings.HasPrefix(rel, rule.prefix) {
			continue
		}
		out := make([]string, 0, len(rule.disallowed))
		for _, d := range rule.disallowed {
			out = append(out, modulePath+"/internal/"+d)
		}
		return out
	}
	return nil
}

func moduleRoot(t *testing.T) (string, string) {
	t.Helper()
	start, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	root, err := findModuleRoot(start)
	if err != nil {
		t.Fatalf("find module root: %v", err)
	}
	modulePath, err := readModulePath(filepath.Join(root, "go.mod"))
	if err != nil {
		t.Fatalf("read module path: %v", err)
	}
	return root, modulePath
}

func findModuleRoot(start string) (string, error) {
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found from %s", start)
		}
		dir = parent
	}
}

func readModulePath(goModPath string) (string, error) {
	f, err := os.Open(goModPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "module ") {
			continue
		}
		mp := strings.TrimSpace(strings.TrimPrefix(line, "module "))
		if mp == "" {
			return "", fmt.Errorf("empty module path in %s", goModPath)
		}
		return mp, nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("module path not found in %s", goModPath)
}
