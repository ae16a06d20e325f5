package core

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/Hajin-Jeon/KRGDB-parser/internal/policies"
	"github.com/Hajin-Jeon/KRGDB-parser/internal/ports"
	"github.com/Hajin-Jeon/KRGDB-parser/internal/types"
)

const (
	positionTerm    = "Position"
	sampleSizeClass = "samp_s"
	pairSeparator   = ", "
	alleleSeparator = "="
)

var buildPattern = regexp.MustCompile(`GRCh\d+`)

type FrequencyExtractor struct {
	Rows ports.RowPolicyPort
}

func NewFrequencyExtractor(rows ports.RowPolicyPort) FrequencyExtractor {
	if rows == nil {
		rows = policies.NewDatasetPolicy(policies.DefaultDatasetTag)
	}
	return FrequencyExtractor{Rows: rows}
}

// ExtractPosition returns the first span of the Position description and
// the GRCh assembly named in it. A page without a usable Position section
// cannot produce a record.
func (e FrequencyExtractor) ExtractPosition(ctx context.Context, doc ports.Node) (string, string, error) {
	desc, ok := findDescription(doc, positionTerm)
	if !ok {
		return "", "", kindError(types.ErrorKindMissingPosition, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("page has no Position section"))
	}
	spans := desc.FindAll("span")
	if len(spans) == 0 || spans[0].Text() == "" {
		return "", "", kindError(types.ErrorKindMissingPosition, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("Position section has no location"))
	}
	position := spans[0].Text()
	build := ""
	for _, span := range spans {
		if match := buildPattern.FindString(span.Text()); match != "" {
			build = match
			break
		}
	}
	if build == "" {
		log.Ctx(ctx).Warn().Str("position", position).Msg("Position section names no GRCh assembly")
	}
	return position, build, nil
}

// ExtractRows decodes every dataset-tagged table row that carries at
// least one frequency cell, in page order. No such row is not an error.
func (e FrequencyExtractor) ExtractRows(ctx context.Context, doc ports.Node) ([]types.FrequencyRow, error) {
	if doc == nil {
		return nil, nil
	}
	var rows []types.FrequencyRow
	for index, tr := range doc.FindAll("tr") {
		if !e.Rows.Qualifies(tr) {
			continue
		}
		row, err := decodeRow(tr)
		if err != nil {
			return nil, err
		}
		if len(row.Frequencies) == 0 {
			log.Ctx(ctx).Debug().Int("row", index).Str("dataset", e.Rows.Tag()).Msg("dataset row has no frequency cell")
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func decodeRow(tr ports.Node) (types.FrequencyRow, error) {
	var row types.FrequencyRow
	for _, td := range tr.FindAll("td") {
		text := td.Text()
		if td.HasClass(sampleSizeClass) {
			row.SampleSize = text
			continue
		}
		if !strings.Contains(text, alleleSeparator) {
			continue
		}
		entries, err := DecodeFrequencies(text)
		if err != nil {
			return types.FrequencyRow{}, err
		}
		row.Frequencies = append(row.Frequencies, entries...)
	}
	return row, nil
}

// DecodeFrequencies parses "A=0.0007, C=0.0164" into ordered pairs. The
// frequency text is kept verbatim and the order is never changed.
func DecodeFrequencies(text string) ([]types.FrequencyEntry, error) {
	parts := strings.Split(text, pairSeparator)
	entries := make([]types.FrequencyEntry, 0, len(parts))
	for _, part := range parts {
		allele, freq, ok := strings.Cut(part, alleleSeparator)
		if !ok {
			return nil, kindError(types.ErrorKindDecode, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("frequency part %q has no %q", part, alleleSeparator)))
		}
		if allele == "" || freq == "" {
			return nil, kindError(types.ErrorKindDecode, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("frequency part %q is incomplete", part)))
		}
		entries = append(entries, types.FrequencyEntry{Allele: allele, Frequency: freq})
	}
	return entries, nil
}
