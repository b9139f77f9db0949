// Package storage provides the S3-compatible object storage client.
//
// Completed reconciliations are exported as JSON audit reports to a
// bucket; the Client interface covers exactly the operations that
// feature needs and is small enough to mock in tests (see mocks).
package storage
