package adapters

import (
	"bufio"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/Hajin-Jeon/KRGDB-parser/internal/ports"
)

type IdentifierListAdapter struct{}

func NewIdentifierListAdapter() IdentifierListAdapter {
	return IdentifierListAdapter{}
}

func (a IdentifierListAdapter) ReadIdentifiers(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("identifier list not found").
			WithCause(err)
	}
	defer file.Close()

	var ids []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ids = append(ids, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read identifier list").
			WithCause(err)
	}
	return ids, nil
}

var _ ports.IdentifierListPort = IdentifierListAdapter{}
