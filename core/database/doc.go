// Package database manages the optional GORM connection used to persist page
// hits.
//
// Two drivers are supported: SQLite (default, a local file next to the
// server, no setup required) and MySQL for a shared instance. Connect verifies
// the connection with a bounded ping and configures the connection pool.
package database
