package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/benedict2310/deployseo/internal/envmode"
)

const (
	wantProductionRobots  = "User-agent: *\nDisallow: /\n\n"
	wantDevelopmentRobots = "User-agent: *\nAllow: /\n\nSitemap: https://demo-astro-jocr.vercel.app/sitemap-index.xml"
)

func newProjectRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{"public", "src"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	return root
}

func executeCmd(t *testing.T, env envmode.Env, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd("test", env)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func readFile(t *testing.T, root, rel string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("read %s: %v", rel, err)
	}
	return string(b)
}

func fileExists(t *testing.T, root, rel string) bool {
	t.Helper()
	_, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	if err == nil {
		return true
	}
	if os.IsNotExist(err) {
		return false
	}
	t.Fatalf("stat %s: %v", rel, err)
	return false
}
