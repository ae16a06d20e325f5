package core

import (
	"strings"

	"github.com/Hajin-Jeon/KRGDB-parser/internal/types"
)

const (
	unsupportedMarker = "Unsupported"
	zeroResultMarker  = "0"
)

// FormatRecord renders a record as one tab-separated output line without
// the trailing newline:
//
//	full:        id position build sampleSize ref refFreq alt1 altFreq1 ...
//	zero-result: id position build 0
//	unsupported: id Unsupported
func FormatRecord(record types.SnpRecord) string {
	if record.Unsupported {
		return strings.Join([]string{record.ID.String(), unsupportedMarker}, "\t")
	}
	fields := []string{record.ID.String(), record.Position, record.Build}
	if len(record.Frequencies) == 0 {
		return strings.Join(append(fields, zeroResultMarker), "\t")
	}
	fields = append(fields, record.SampleSize)
	for _, entry := range record.Frequencies {
		fields = append(fields, entry.Allele, entry.Frequency)
	}
	return strings.Join(fields, "\t")
}

// FormatResolution renders every record of a resolution in order.
func FormatResolution(resolution types.Resolution) []string {
	lines := make([]string, 0, len(resolution.Records))
	for _, record := range resolution.Records {
		lines = append(lines, FormatRecord(record))
	}
	return lines
}
