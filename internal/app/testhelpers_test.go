package app

import (
	"context"
	"errors"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/Hajin-Jeon/KRGDB-parser/internal/adapters"
	"github.com/Hajin-Jeon/KRGDB-parser/internal/policies"
	"github.com/Hajin-Jeon/KRGDB-parser/internal/types"
)

const testPosition = `<span>chr1:11794419</span> <span class="snp-build">(GRCh38.p14)</span>`

func activePage(rows ...string) string {
	return page(`<span>Active</span>`, rows...)
}

func mergedPage(successor string) string {
	return page(`<span>This RS was merged into <a href="/snp/` + successor + `">` + successor + `</a></span>`)
}

func unsupportedPage() string {
	return page(`<span>Unsupported.</span>`)
}

func page(status string, rows ...string) string {
	var sb strings.Builder
	sb.WriteString("<html><body><dl><dt>Position</dt><dd>" + testPosition + "</dd>")
	sb.WriteString("<dt>Status</dt><dd>" + status + "</dd></dl><table>")
	for _, row := range rows {
		sb.WriteString(row)
	}
	sb.WriteString("</table></body></html>")
	return sb.String()
}

func krgdbRow(sampleSize string, freqs string) string {
	return `<tr><td><a href="/study">KRGDB</a></td><td class="samp_s">` + sampleSize + `</td><td>` + freqs + `</td></tr>`
}

type pageSource struct {
	pages map[types.Identifier]string
	loads []types.Identifier
}

func (p *pageSource) Load(_ context.Context, id types.Identifier) (types.RawDocument, error) {
	p.loads = append(p.loads, id)
	raw, ok := p.pages[id]
	if !ok {
		return "", errors.New("page not served: " + id.String())
	}
	return types.RawDocument(raw), nil
}

type recordingSink struct {
	lines    []string
	probeErr error
	writeErr error
}

func (r *recordingSink) CheckWritable() error {
	return r.probeErr
}

func (r *recordingSink) WriteRecord(line string) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	r.lines = append(r.lines, line)
	return nil
}

func unwritable() error {
	return errbuilder.New().
		WithCode(errbuilder.CodePermissionDenied).
		WithMsg("output file is not writable")
}

func newTestService(pages map[types.Identifier]string, sink *recordingSink) (Service, *pageSource) {
	source := &pageSource{pages: pages}
	return Service{
		Source:      source,
		Parser:      adapters.NewHTMLParserAdapter(),
		Rows:        policies.NewDatasetPolicy(""),
		Sink:        sink,
		Identifiers: adapters.NewIdentifierListAdapter(),
	}, source
}
