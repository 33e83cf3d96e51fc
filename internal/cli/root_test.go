package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/layoutfix/internal/cli"
	"github.com/MacroPower/layoutfix/pkg/layouterrors"
	"github.com/MacroPower/layoutfix/pkg/paths"
)

const (
	ordersScreen  = "return AdminLayout(\n  child: Padding(\n    padding: EdgeInsets.zero,\n  ),\n);\n"
	ordersPatched = "return AdminLayout(\n  selectedRoute: '/admin/orders',\n  title: 'Orders',\n  child: Padding(\n    padding: EdgeInsets.zero,\n  ),\n);\n"
)

func writeScreens(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	tc := cli.NewRootCmd("test_layoutfix", "", "")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// A nil slice makes cobra fall back to os.Args.
	tc.SetArgs(append([]string{}, args...))
	tc.SetOut(stdout)
	tc.SetErr(stderr)

	err := tc.Execute()

	return stdout.String(), stderr.String(), err
}

func TestPatchCmd(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "lib", "views", "admin")
	writeScreens(t, root, map[string]string{
		"admin_orders/index.dart": ordersScreen,
	})

	stdout, stderr, err := execute(t, "patch", root)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	screen := filepath.Join(root, "admin_orders", "index.dart")
	assert.Equal(t, "Updated: "+screen+"\n\nSummary: Updated 1/1 files\n", stdout)

	got, err := os.ReadFile(screen)
	require.NoError(t, err)
	assert.Equal(t, ordersPatched, string(got))

	stdout, _, err = execute(t, "patch", root)
	require.NoError(t, err)
	assert.Equal(t, "No changes needed: "+screen+"\n\nSummary: Updated 0/1 files\n", stdout)
}

func TestPatchCmdDryRun(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeScreens(t, root, map[string]string{
		"admin_orders/index.dart": ordersScreen,
	})

	stdout, _, err := execute(t, "patch", root, "--dry-run", "--diff")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Would update: ")
	assert.Contains(t, stdout, "+  selectedRoute: '/admin/orders',")
	assert.Contains(t, stdout, "Summary: Would update 1/1 files")

	got, err := os.ReadFile(filepath.Join(root, "admin_orders", "index.dart"))
	require.NoError(t, err)
	assert.Equal(t, ordersScreen, string(got))
}

func TestPatchCmdDiff(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeScreens(t, root, map[string]string{
		"admin_orders/index.dart": ordersScreen,
	})

	stdout, _, err := execute(t, "patch", root, "--diff")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Updated: ")
	assert.Contains(t, stdout, "+  selectedRoute: '/admin/orders',")
	assert.Contains(t, stdout, "Summary: Updated 1/1 files")

	got, err := os.ReadFile(filepath.Join(root, "admin_orders", "index.dart"))
	require.NoError(t, err)
	assert.Equal(t, ordersPatched, string(got))
}

func TestPatchCmdUnmapped(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeScreens(t, root, map[string]string{
		"admin_dashboard/index.dart": ordersScreen,
	})

	screen := filepath.Join(root, "admin_dashboard", "index.dart")

	stdout, _, err := execute(t, "patch", root)
	require.NoError(t, err)
	assert.Equal(t, "Warning: No route mapping found for admin_dashboard in "+screen+"\n\nSummary: Updated 0/1 files\n", stdout)

	got, err := os.ReadFile(screen)
	require.NoError(t, err)
	assert.Equal(t, ordersScreen, string(got))
}

func TestPatchCmdMapping(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	root := filepath.Join(dir, "admin")
	writeScreens(t, root, map[string]string{
		"admin_dashboard/index.dart": ordersScreen,
	})

	mapping := filepath.Join(dir, "routes.yaml")
	require.NoError(t, os.WriteFile(mapping, []byte("routes:\n  - key: admin_dashboard\n    route: /admin\n"), 0o600))

	_, _, err := execute(t, "patch", root, "--mapping", mapping, "--quiet")
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(root, "admin_dashboard", "index.dart"))
	require.NoError(t, err)
	assert.Contains(t, string(got), "selectedRoute: '/admin',\n  title: 'Dashboard',")
}

func TestPatchCmdMissingRoot(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "missing")

	stdout, _, err := execute(t, "patch", root)
	require.NoError(t, err)
	assert.Equal(t, "Directory "+root+" does not exist\n", stdout)

	_, _, err = execute(t, "patch", root, "--strict")
	require.ErrorIs(t, err, layouterrors.ErrRootNotFound)
}

func TestPatchCmdInvalidArguments(t *testing.T) {
	t.Parallel()

	tcs := map[string][]string{
		"bad match mode": {"patch", t.TempDir(), "--match", "exact"},
		"bad jobs":       {"patch", t.TempDir(), "--jobs", "0"},
		"bad color":      {"patch", t.TempDir(), "--color", "rainbow"},
		"bad log level":  {"patch", t.TempDir(), "--log_level", "loud"},
	}

	for name, args := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, _, err := execute(t, args...)
			require.ErrorIs(t, err, layouterrors.ErrInvalidArguments)
		})
	}
}

func TestPatchCmdParallel(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeScreens(t, root, map[string]string{
		"admin_orders/index.dart":    ordersScreen,
		"admin_orders_v2/index.dart": ordersScreen,
		"admin_brands/index.dart":    ordersScreen,
		"admin_banners/index.dart":   ordersScreen,
	})

	stdout, _, err := execute(t, "patch", root, "--jobs", "3", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "\nSummary: Updated 4/4 files\n", stdout)
}

//nolint:paralleltest // Changes the working directory.
func TestRootCmdDefaultRoot(t *testing.T) {
	dir := t.TempDir()
	writeScreens(t, filepath.Join(dir, "lib", "views", "admin"), map[string]string{
		"admin_orders/index.dart": ordersScreen,
	})

	t.Chdir(dir)

	stdout, _, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, "Updated: "+filepath.Join("lib", "views", "admin", "admin_orders", "index.dart")+"\n\nSummary: Updated 1/1 files\n", stdout)

	got, err := os.ReadFile(filepath.Join(dir, "lib", "views", "admin", "admin_orders", "index.dart"))
	require.NoError(t, err)
	assert.Equal(t, ordersPatched, string(got))
}

//nolint:paralleltest // Changes the working directory.
func TestPatchCmdProject(t *testing.T) {
	project := filepath.Join(t.TempDir(), "shop")
	writeScreens(t, project, map[string]string{
		"pubspec.yaml": "name: shop\n",
		"lib/views/admin/admin_orders/index.dart": ordersScreen,
	})
	require.NoError(t, os.MkdirAll(filepath.Join(project, ".git"), 0o750))

	t.Chdir(filepath.Join(project, "lib", "views"))

	_, _, err := execute(t, "patch", "--project", "--quiet")
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(project, "lib", "views", "admin", "admin_orders", "index.dart"))
	require.NoError(t, err)
	assert.Equal(t, ordersPatched, string(got))

	t.Chdir(filepath.Dir(project))

	_, _, err = execute(t, "patch", "--project")
	require.ErrorIs(t, err, paths.ErrProjectNotFound)
}
