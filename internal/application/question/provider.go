package question

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/aescanero/theoryq/pkg/domain"
)

// Provider modes reported by Mode
const (
	ModeStatic = "static"
	ModeBank   = "bank"
)

// Provider yields a question/solution pair for one request
type Provider interface {
	Next(ctx context.Context) (domain.Pair, error)
	Mode() string
}

// StaticProvider returns the same pair on every call
type StaticProvider struct {
	pair domain.Pair
}

// NewStaticProvider creates a provider serving a fixed pair
func NewStaticProvider(pair domain.Pair, validator *Validator) (*StaticProvider, error) {
	if err := validator.Validate(pair); err != nil {
		return nil, err
	}
	return &StaticProvider{pair: pair}, nil
}

// Next returns the configured pair. It never blocks, so ctx is not consulted.
func (p *StaticProvider) Next(ctx context.Context) (domain.Pair, error) {
	return p.pair, nil
}

// Mode returns ModeStatic
func (p *StaticProvider) Mode() string {
	return ModeStatic
}

// BankProvider returns a uniformly random entry from a fixed bank
type BankProvider struct {
	bank []domain.Pair

	mu  sync.Mutex
	rng *rand.Rand
}

// NewBankProvider creates a provider over a validated bank. A nil source
// seeds a fresh PCG generator.
func NewBankProvider(bank []domain.Pair, src rand.Source, validator *Validator) (*BankProvider, error) {
	if err := validator.ValidateBank(bank); err != nil {
		return nil, err
	}
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	entries := make([]domain.Pair, len(bank))
	copy(entries, bank)

	return &BankProvider{
		bank: entries,
		rng:  rand.New(src),
	}, nil
}

// Next returns a random bank entry. It never blocks, so ctx is not consulted.
func (p *BankProvider) Next(ctx context.Context) (domain.Pair, error) {
	p.mu.Lock()
	i := p.rng.IntN(len(p.bank))
	p.mu.Unlock()

	return p.bank[i], nil
}

// Mode returns ModeBank
func (p *BankProvider) Mode() string {
	return ModeBank
}

// Size returns the number of entries in the bank
func (p *BankProvider) Size() int {
	return len(p.bank)
}

// NewProvider builds the provider for the given mode
func NewProvider(mode string, static domain.Pair, bankFile string, validator *Validator) (Provider, error) {
	switch mode {
	case ModeStatic:
		return NewStaticProvider(static, validator)
	case ModeBank:
		bank, err := LoadBank(bankFile)
		if err != nil {
			return nil, err
		}
		return NewBankProvider(bank, nil, validator)
	default:
		return nil, fmt.Errorf("unsupported question mode: %s", mode)
	}
}
