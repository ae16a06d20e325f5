package adapters

import "github.com/Hajin-Jeon/KRGDB-parser/internal/types"

func rawDocument(value string) types.RawDocument {
	return types.RawDocument(value)
}
