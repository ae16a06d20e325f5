// Package testutil provides shared test helpers used across integration,
// e2e, and unit test packages.
package testutil

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Hajin-Jeon/KRGDB-parser/internal/types"
)

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// PagesDir is the directory of cached dbSNP pages used as fixtures.
func PagesDir(t *testing.T) string {
	t.Helper()
	return filepath.Join(RepoRoot(t), "fixtures", "pages")
}

// OfflineFetcher fails every fetch, keeping fixture runs off the network.
type OfflineFetcher struct{}

func (OfflineFetcher) Fetch(_ context.Context, id types.Identifier) (types.RawDocument, error) {
	return "", errors.New("offline: no cached page for " + id.String())
}
