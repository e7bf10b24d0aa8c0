// Package session owns the authenticated user of the running client.
//
// A Manager is created once with its collaborators and passed to whatever
// needs it; there is no package-level state. Lifecycle:
//
//	m := session.NewManager(authService, credStore, logger)
//	go m.Init(ctx)       // startup check, runs once
//	<-m.Ready()          // Status() is now Authenticated or Unauthenticated
//	...
//	m.Close()
//
// Every successful mutation updates memory and the credential store before
// it returns. The mutex only guards memory; it is never held across a
// network call or a store write. Each mutation bumps a generation counter,
// and a profile update whose generation has been overtaken by a later
// mutation drops its own commit or rollback instead of clobbering it.
package session
