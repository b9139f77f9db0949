// Package database manages the GORM database connection.
//
// Production deployments run against MySQL; tests and local development
// can use sqlite (including ":memory:") through the same Connect call.
// Error translation is enabled so repositories can detect duplicate-key
// violations portably via gorm.ErrDuplicatedKey.
package database
