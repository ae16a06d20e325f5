package policies

import (
	"strings"

	"github.com/Hajin-Jeon/KRGDB-parser/internal/ports"
)

// DefaultDatasetTag selects the Korean Reference Genome Database rows of
// the dbSNP frequency table.
const DefaultDatasetTag = "KRGDB"

// DatasetPolicy qualifies a table row when one of its hyperlinks names
// the dataset. Other frequency sources on the same page share the table
// layout, so the link text is the only discriminator.
type DatasetPolicy struct {
	tag string
}

func NewDatasetPolicy(tag string) DatasetPolicy {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		tag = DefaultDatasetTag
	}
	return DatasetPolicy{tag: tag}
}

func (p DatasetPolicy) Tag() string {
	return p.tag
}

func (p DatasetPolicy) Qualifies(row ports.Node) bool {
	if row == nil {
		return false
	}
	for _, link := range row.FindAll("a") {
		if strings.Contains(link.Text(), p.tag) {
			return true
		}
	}
	return false
}

var _ ports.RowPolicyPort = DatasetPolicy{}
