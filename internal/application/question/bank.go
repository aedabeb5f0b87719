package question

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aescanero/theoryq/pkg/domain"
	"gopkg.in/yaml.v3"
)

// ErrEmptyBank is returned when a bank document has no content
var ErrEmptyBank = errors.New("question bank is empty")

// bankFile is the on-disk layout of a question bank
type bankFile struct {
	Questions []domain.Pair `yaml:"questions"`
}

// LoadBank reads a question bank from a YAML file. JSON files are accepted
// as well since JSON is valid YAML.
func LoadBank(path string) ([]domain.Pair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question bank: %w", err)
	}

	bank, err := ParseBank(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse question bank %s: %w", path, err)
	}

	return bank, nil
}

// ParseBank decodes a question bank document. Unknown keys are rejected.
func ParseBank(data []byte) ([]domain.Pair, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f bankFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyBank
		}
		return nil, err
	}

	return f.Questions, nil
}
