package question

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/aescanero/theoryq/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var templatePair = domain.Pair{
	Question: "THE GENERATED QUESTION",
	Solution: "THE GENERATED SOLUTION",
}

func TestStaticProvider_ReturnsSamePair(t *testing.T) {
	p, err := NewStaticProvider(templatePair, NewValidator())
	require.NoError(t, err)
	assert.Equal(t, ModeStatic, p.Mode())

	for i := 0; i < 5; i++ {
		got, err := p.Next(t.Context())
		require.NoError(t, err)
		assert.Equal(t, templatePair, got)
	}
}

func TestStaticProvider_RejectsEmptyFields(t *testing.T) {
	_, err := NewStaticProvider(domain.Pair{Question: "q"}, NewValidator())
	assert.ErrorIs(t, err, domain.ErrEmptySolution)

	_, err = NewStaticProvider(domain.Pair{Solution: "s"}, NewValidator())
	assert.ErrorIs(t, err, domain.ErrEmptyQuestion)
}

func TestProviders_IgnoreCancelledContext(t *testing.T) {
	static, err := NewStaticProvider(templatePair, NewValidator())
	require.NoError(t, err)
	bank, err := NewBankProvider([]domain.Pair{templatePair}, nil, NewValidator())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	for _, p := range []Provider{static, bank} {
		got, err := p.Next(ctx)
		require.NoError(t, err, p.Mode())
		assert.Equal(t, templatePair, got, p.Mode())
	}
}

func TestBankProvider_ReturnsBankEntries(t *testing.T) {
	bank := []domain.Pair{
		{Question: "Define entropy.", Solution: "A measure of disorder."},
		{Question: "State Ohm's law.", Solution: "V = IR."},
		{Question: "What is a mole?", Solution: "6.022e23 particles."},
	}

	p, err := NewBankProvider(bank, rand.NewPCG(1, 2), NewValidator())
	require.NoError(t, err)
	assert.Equal(t, ModeBank, p.Mode())
	assert.Equal(t, 3, p.Size())

	seen := make(map[domain.Pair]bool)
	for i := 0; i < 200; i++ {
		got, err := p.Next(t.Context())
		require.NoError(t, err)
		assert.Contains(t, bank, got)
		seen[got] = true
	}
	assert.Len(t, seen, len(bank), "every entry should be picked over 200 draws")
}

func TestBankProvider_CopiesBank(t *testing.T) {
	bank := []domain.Pair{{Question: "q", Solution: "s"}}

	p, err := NewBankProvider(bank, nil, NewValidator())
	require.NoError(t, err)

	bank[0] = domain.Pair{Question: "changed", Solution: "changed"}

	got, err := p.Next(t.Context())
	require.NoError(t, err)
	assert.Equal(t, domain.Pair{Question: "q", Solution: "s"}, got)
}

func TestBankProvider_ConcurrentUse(t *testing.T) {
	bank := []domain.Pair{
		{Question: "a", Solution: "1"},
		{Question: "b", Solution: "2"},
	}
	p, err := NewBankProvider(bank, nil, NewValidator())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				got, err := p.Next(context.Background())
				if assert.NoError(t, err) {
					assert.NoError(t, got.Validate())
				}
			}
		}()
	}
	wg.Wait()
}

func TestBankProvider_RejectsInvalidBank(t *testing.T) {
	_, err := NewBankProvider(nil, nil, NewValidator())
	assert.ErrorContains(t, err, "at least one entry")

	_, err = NewBankProvider([]domain.Pair{
		{Question: "q", Solution: "s"},
		{Question: "q2"},
	}, nil, NewValidator())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptySolution)
	assert.Contains(t, err.Error(), "bank entry 1")
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(ModeStatic, templatePair, "", NewValidator())
	require.NoError(t, err)
	assert.Equal(t, ModeStatic, p.Mode())

	path := writeBank(t, "questions:\n  - question: q\n    solution: s\n")
	p, err = NewProvider(ModeBank, domain.Pair{}, path, NewValidator())
	require.NoError(t, err)
	assert.Equal(t, ModeBank, p.Mode())

	_, err = NewProvider("generated", templatePair, "", NewValidator())
	assert.ErrorContains(t, err, "unsupported question mode")
}
