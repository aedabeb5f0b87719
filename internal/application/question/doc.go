// Package question implements the logic behind the question endpoint.
//
// A Provider yields question/solution pairs:
//   - StaticProvider returns the same configured pair on every request
//   - BankProvider picks a pair at random from a bank loaded at startup
//
// The Service wraps a provider, validates every pair before it leaves the
// process and records metrics. It holds no per-request state.
package question
