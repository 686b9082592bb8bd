// Package repository implements the postgres data access layer with gorm.
//
// Each repository struct handles one aggregate and satisfies the matching
// interface declared in internal/service. The in-memory implementations in
// repository/memory and the redis session store in repository/redisstore
// satisfy the same interfaces.
//
// # Conventions
//
//   - Constructor function (NewXxxRepository) accepts a *database.DB
//   - Lookups return (nil, nil) for missing rows
//   - Driver errors pass through database.Translate, so a unique violation
//     surfaces as database.ErrDuplicate
//   - Ids that are not UUIDs are treated as missing rather than sent to
//     postgres
//
// # Search
//
// JobRepository.Search compiles a search.Predicate into a WHERE clause:
// containsFold becomes ILIKE with escaped wildcards, has becomes
// "? = ANY(skills_required)", and company.name is served by a join.
//
//	repo := NewJobRepository(db)
//	jobs, total, err := repo.Search(ctx, search.NewQuery(params))
package repository
