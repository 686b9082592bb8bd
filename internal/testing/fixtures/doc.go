// Package fixtures provides test data factories for the job board.
//
// The factory writes through the repository interfaces, so the same
// fixtures work against the in-memory store and against postgres.
//
// # Factory Pattern
//
// Create a factory over a set of repositories:
//
//	f := fixtures.New(fixtures.FromMemory(store))
//
// # Creating Test Data
//
//	seeker := f.CreateUser(t)                        // job seeker
//	emp := f.CreateEmployer(t)                       // employer
//	acme := f.CreateCompany(t)                       // company
//	f.AddMember(t, emp, acme, model.MembershipAdmin) // membership
//	job := f.CreateJob(t, emp, acme)                 // active job
//
// # Customization
//
// Use option functions for customization:
//
//	job := f.CreateJob(t, emp, acme, func(o *fixtures.JobOpts) {
//	    o.Title = "Senior Go Engineer"
//	    o.SalaryMin = ptr(120000)
//	})
//
// # Random Data
//
// Emails and slugs get a random suffix so fixtures never collide.
package fixtures
