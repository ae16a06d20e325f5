package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hajin-Jeon/KRGDB-parser/internal/adapters"
	"github.com/Hajin-Jeon/KRGDB-parser/internal/types"
)

func TestResolveActiveRecord(t *testing.T) {
	source := newMemorySource(map[types.Identifier]string{
		"rs1042522": dbsnpPage("", tp53Position,
			freqRow("gnomAD", "140098", "G=0.6649", "C=0.3351"),
			freqRow("KRGDB", "2922", "G=0.2649", "C=0.7351"),
		),
	})
	result, err := newTestEngine(source, 0).Resolve(t.Context(), "rs1042522")
	require.NoError(t, err)

	assert.Equal(t, types.OutcomeActive, result.Outcome)
	assert.Equal(t, types.Identifier("rs1042522"), result.Terminal)
	assert.Empty(t, result.Hops)
	want := []string{"rs1042522\tchr17:7676154\tGRCh38\t2922\tG\t0.2649\tC\t0.7351"}
	if diff := cmp.Diff(want, FormatResolution(result)); diff != "" {
		t.Fatalf("unexpected lines (-want +got):\n%s", diff)
	}
}

func TestResolveZeroResult(t *testing.T) {
	source := newMemorySource(map[types.Identifier]string{
		"rs7": dbsnpPage("", tp53Position, freqRow("ALFA", "9690", "G=0.7", "C=0.3")),
	})
	result, err := newTestEngine(source, 0).Resolve(t.Context(), "rs7")
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Empty(t, result.Records[0].Frequencies)
	assert.Equal(t, []string{"rs7\tchr17:7676154\tGRCh38\t0"}, FormatResolution(result))
}

func TestResolveMultipleDatasetRows(t *testing.T) {
	source := newMemorySource(map[types.Identifier]string{
		"rs8": dbsnpPage("", tp53Position,
			freqRow("KRGDB", "2922", "A=0.2", "G=0.8"),
			freqRow("KRGDB", "1100", "A=0.3", "G=0.7"),
		),
	})
	result, err := newTestEngine(source, 0).Resolve(t.Context(), "rs8")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"rs8\tchr17:7676154\tGRCh38\t2922\tA\t0.2\tG\t0.8",
		"rs8\tchr17:7676154\tGRCh38\t1100\tA\t0.3\tG\t0.7",
	}, FormatResolution(result))
}

func TestResolveFollowsMerges(t *testing.T) {
	source := newMemorySource(map[types.Identifier]string{
		"rs100": dbsnpPage(mergedStatus("rs200"), tp53Position, freqRow("KRGDB", "1", "T=1.0")),
		"rs200": dbsnpPage(mergedStatus("rs300"), ""),
		"rs300": dbsnpPage("", tp53Position, freqRow("KRGDB", "2922", "A=0.9", "T=0.1")),
	})
	result, err := newTestEngine(source, 0).Resolve(t.Context(), "rs100")
	require.NoError(t, err)

	assert.Equal(t, []types.Identifier{"rs100", "rs200", "rs300"}, source.loads)
	assert.Equal(t, []types.Identifier{"rs200", "rs300"}, result.Hops)
	assert.Equal(t, types.Identifier("rs100"), result.Requested)
	assert.Equal(t, types.Identifier("rs300"), result.Terminal)
	assert.Equal(t, []string{"rs300\tchr17:7676154\tGRCh38\t2922\tA\t0.9\tT\t0.1"}, FormatResolution(result))
}

func TestResolveUnsupportedShortCircuits(t *testing.T) {
	source := newMemorySource(map[types.Identifier]string{
		"rs55": dbsnpPage("Unsupported. This RS has no data.", tp53Position, freqRow("KRGDB", "2922", "A=0.9", "T=0.1")),
	})
	result, err := newTestEngine(source, 0).Resolve(t.Context(), "rs55")
	require.NoError(t, err)
	assert.Equal(t, types.OutcomeUnsupported, result.Outcome)
	assert.Equal(t, []string{"rs55\tUnsupported"}, FormatResolution(result))
}

func TestResolveUnsupportedAfterMerge(t *testing.T) {
	source := newMemorySource(map[types.Identifier]string{
		"rs1": dbsnpPage(mergedStatus("rs2"), ""),
		"rs2": dbsnpPage("Unsupported.", ""),
	})
	result, err := newTestEngine(source, 0).Resolve(t.Context(), "rs1")
	require.NoError(t, err)
	assert.Equal(t, []string{"rs2\tUnsupported"}, FormatResolution(result))
}

func TestResolveDetectsCycles(t *testing.T) {
	source := newMemorySource(map[types.Identifier]string{
		"rs1": dbsnpPage(mergedStatus("rs2"), ""),
		"rs2": dbsnpPage(mergedStatus("rs3"), ""),
		"rs3": dbsnpPage(mergedStatus("rs1"), ""),
	})
	_, err := newTestEngine(source, 0).Resolve(t.Context(), "rs1")
	require.Error(t, err)
	assert.Equal(t, types.ErrorKindMergeLoopSuspected, types.KindOf(err))
	assert.Len(t, source.loads, 3)
}

func TestResolveSelfMerge(t *testing.T) {
	source := newMemorySource(map[types.Identifier]string{
		"rs1": dbsnpPage(mergedStatus("rs1"), ""),
	})
	_, err := newTestEngine(source, 0).Resolve(t.Context(), "rs1")
	assert.Equal(t, types.ErrorKindMergeLoopSuspected, types.KindOf(err))
}

func mergeChain(length int) map[types.Identifier]string {
	pages := map[types.Identifier]string{}
	for i := 1; i <= length; i++ {
		pages[types.Identifier(fmt.Sprintf("rs%d", i))] = dbsnpPage(mergedStatus(fmt.Sprintf("rs%d", i+1)), "")
	}
	pages[types.Identifier(fmt.Sprintf("rs%d", length+1))] = dbsnpPage("", tp53Position)
	return pages
}

func TestResolveEnforcesHopBound(t *testing.T) {
	source := newMemorySource(mergeChain(5))
	_, err := newTestEngine(source, 4).Resolve(t.Context(), "rs1")
	require.Error(t, err)
	assert.Equal(t, types.ErrorKindMergeLoopSuspected, types.KindOf(err))
	assert.Len(t, source.loads, 5, "no document is loaded past the bound")

	source = newMemorySource(mergeChain(5))
	result, err := newTestEngine(source, 5).Resolve(t.Context(), "rs1")
	require.NoError(t, err)
	assert.Equal(t, types.Identifier("rs6"), result.Terminal)
	assert.Len(t, result.Hops, 5)
}

func TestResolveDefaultHopBound(t *testing.T) {
	source := newMemorySource(mergeChain(DefaultMaxMergeHops + 1))
	_, err := newTestEngine(source, 0).Resolve(t.Context(), "rs1")
	assert.Equal(t, types.ErrorKindMergeLoopSuspected, types.KindOf(err))
}

func TestResolveFailures(t *testing.T) {
	tests := []struct {
		name  string
		pages map[types.Identifier]string
		id    types.Identifier
		kind  types.ErrorKind
		errID types.Identifier
	}{
		{name: "fetch failed", pages: map[types.Identifier]string{}, id: "rs1", kind: types.ErrorKindFetchFailed, errID: "rs1"},
		{
			name:  "fetch failed mid chain",
			pages: map[types.Identifier]string{"rs1": dbsnpPage(mergedStatus("rs2"), "")},
			id:    "rs1",
			kind:  types.ErrorKindFetchFailed,
			errID: "rs2",
		},
		{name: "empty document", pages: map[types.Identifier]string{"rs1": "  "}, id: "rs1", kind: types.ErrorKindMalformedDocument, errID: "rs1"},
		{name: "missing position", pages: map[types.Identifier]string{"rs1": dbsnpPage("", "")}, id: "rs1", kind: types.ErrorKindMissingPosition, errID: "rs1"},
		{
			name:  "decode error",
			pages: map[types.Identifier]string{"rs1": dbsnpPage("", tp53Position, freqRow("KRGDB", "10", "G=0.5, A0.5"))},
			id:    "rs1",
			kind:  types.ErrorKindDecode,
			errID: "rs1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestEngine(newMemorySource(tt.pages), 0).Resolve(t.Context(), tt.id)
			require.Error(t, err)
			var resolveErr *types.ResolveError
			require.True(t, errors.As(err, &resolveErr))
			assert.Equal(t, tt.kind, resolveErr.Kind)
			assert.Equal(t, tt.errID, resolveErr.ID)
		})
	}
}

func TestResolveCanceledContext(t *testing.T) {
	source := newMemorySource(map[types.Identifier]string{"rs1": dbsnpPage("", tp53Position)})
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	_, err := newTestEngine(source, 0).Resolve(ctx, "rs1")
	require.Error(t, err)
	assert.Empty(t, source.loads)
}

func TestResolveRequiresPorts(t *testing.T) {
	_, err := ResolutionEngine{}.Resolve(t.Context(), "rs1")
	require.Error(t, err)
}

type failingFetcher struct{}

func (failingFetcher) Fetch(context.Context, types.Identifier) (types.RawDocument, error) {
	return "", errors.New("network disabled")
}

func TestResolveCachedDocumentIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	page := dbsnpPage("", tp53Position, freqRow("KRGDB", "2922", "A=0.0007, C=0.0164, T=0.1068", "G=0.8761"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rs334"), []byte(page), 0644))

	source := adapters.NewDocumentSourceAdapter(adapters.NewDocumentCacheAdapter(dir), failingFetcher{}, false)
	engine := newTestEngine(source, 0)

	first, err := engine.Resolve(t.Context(), "rs334")
	require.NoError(t, err)
	second, err := engine.Resolve(t.Context(), "rs334")
	require.NoError(t, err)

	firstLines := FormatResolution(first)
	if diff := cmp.Diff(firstLines, FormatResolution(second)); diff != "" {
		t.Fatalf("cached resolution is not stable (-first +second):\n%s", diff)
	}
	assert.Equal(t, []string{"rs334\tchr17:7676154\tGRCh38\t2922\tA\t0.0007\tC\t0.0164\tT\t0.1068\tG\t0.8761"}, firstLines)
}
