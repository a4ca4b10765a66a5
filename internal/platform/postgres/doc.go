// Package postgres provides PostgreSQL implementations of the store
// interfaces. All stores speak database/sql through store.DBTX so they
// run unchanged against a *sql.DB or a *sql.Tx, and map driver errors
// into the sentinel errors defined in the store package.
package postgres
