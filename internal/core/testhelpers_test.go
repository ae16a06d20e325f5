package core

import (
	"context"
	"errors"
	"strings"

	"github.com/Hajin-Jeon/KRGDB-parser/internal/adapters"
	"github.com/Hajin-Jeon/KRGDB-parser/internal/ports"
	"github.com/Hajin-Jeon/KRGDB-parser/internal/types"
)

const tp53Position = `<span>chr17:7676154</span> <span class="snp-build">(GRCh38.p14)</span><br><span>chr17:7579472</span> <span class="snp-build">(GRCh37.p13)</span>`

// dbsnpPage renders a trimmed-down dbSNP reference page. Empty status or
// position leaves the section out.
func dbsnpPage(status string, position string, rows ...string) string {
	var sb strings.Builder
	sb.WriteString("<html><head><title>dbSNP</title></head><body>\n<div class=\"summary-box\">\n<dl class=\"usa-width-one-half\">\n")
	sb.WriteString("  <dt>Organism</dt>\n  <dd>Homo sapiens</dd>\n")
	if position != "" {
		sb.WriteString("  <dt>Position</dt>\n  <dd>" + position + "</dd>\n")
	}
	sb.WriteString("</dl>\n<dl class=\"usa-width-one-half\">\n  <dt>Variant type</dt>\n  <dd>SNV</dd>\n")
	if status != "" {
		sb.WriteString("  <dt>Status</dt>\n  <dd>" + status + "</dd>\n")
	}
	sb.WriteString("</dl>\n</div>\n<table id=\"popfreq_table\">\n")
	sb.WriteString("<tr><th>Study</th><th>Population</th><th>Group</th><th>Sample Size</th><th>Ref Allele</th><th>Alt Allele</th></tr>\n")
	for _, row := range rows {
		sb.WriteString(row + "\n")
	}
	sb.WriteString("</table>\n</body></html>\n")
	return sb.String()
}

func freqRow(study string, sampleSize string, cells ...string) string {
	var sb strings.Builder
	sb.WriteString(`<tr><td><a href="/snp/docs/study">` + study + `</a></td><td>Korean</td><td>Study-wide</td>`)
	sb.WriteString(`<td class="samp_s">` + sampleSize + `</td>`)
	for _, cell := range cells {
		sb.WriteString("<td>" + cell + "</td>")
	}
	sb.WriteString("</tr>")
	return sb.String()
}

func mergedStatus(successor string) string {
	return `<span>This RS was merged into <a href="/snp/` + successor + `">` + successor + `</a> (Build 151)</span>`
}

func parse(raw string) ports.Node {
	doc, err := adapters.NewHTMLParserAdapter().Parse(types.RawDocument(raw))
	if err != nil {
		panic(err)
	}
	return doc
}

// memorySource serves pages from a map and records every load.
type memorySource struct {
	pages map[types.Identifier]string
	loads []types.Identifier
}

func newMemorySource(pages map[types.Identifier]string) *memorySource {
	return &memorySource{pages: pages}
}

func (m *memorySource) Load(_ context.Context, id types.Identifier) (types.RawDocument, error) {
	m.loads = append(m.loads, id)
	page, ok := m.pages[id]
	if !ok {
		return "", errors.New("status=404 url=https://www.ncbi.nlm.nih.gov/snp/" + id.String())
	}
	return types.RawDocument(page), nil
}

func newTestEngine(source ports.DocumentSourcePort, maxHops int) ResolutionEngine {
	return NewResolutionEngine(source, adapters.NewHTMLParserAdapter(), nil, maxHops)
}
