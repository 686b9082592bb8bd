// Package testdb provides postgres test databases for integration tests.
//
// The first call to New starts a postgres container through
// testcontainers-go (or uses TEST_DATABASE_URL when set). Every New then
// creates a fresh database on that server, migrates it and drops it when
// the test ends.
//
//	//go:build integration
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    repo := repository.NewJobRepository(tdb.DB)
//	}
//
// # Shared Database
//
// For subtests that share schema:
//
//	tdb := testdb.NewShared(t)
//	t.Run("create", func(t *testing.T) { db := tdb.SetupSubtest(t); ... })
//
// The container is left to the testcontainers reaper when the test binary
// exits.
package testdb
