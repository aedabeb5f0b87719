// Package domain contains the question/solution entity served to the exam platform.
package domain

import "errors"

var (
	// ErrEmptyQuestion is returned when a pair has no question text
	ErrEmptyQuestion = errors.New("question is empty")

	// ErrEmptySolution is returned when a pair has no solution text
	ErrEmptySolution = errors.New("solution is empty")
)

// Pair is a theory question together with the solution used for grading.
// The solution is never shown to the student; the platform only hands it
// to the lecturer marking the answer.
type Pair struct {
	Question string `json:"question" yaml:"question"`
	Solution string `json:"solution" yaml:"solution"`
}

// Validate reports whether both fields are populated
func (p Pair) Validate() error {
	if p.Question == "" {
		return ErrEmptyQuestion
	}
	if p.Solution == "" {
		return ErrEmptySolution
	}
	return nil
}
