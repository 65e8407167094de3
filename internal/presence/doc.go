// Package presence tracks which users are online and tells their friends.
//
// Online state lives in Redis under user:status:<id>. Login writes the
// flag and returns the caller's currently-online friends; Logout clears
// it after a short grace period so a page reload or flaky radio does not
// spray offline/online pairs at every friend. A login during the grace
// window cancels the pending logout and, because the user never read as
// offline, suppresses the redundant online broadcast too.
//
// Status changes fan out as STATUS_UPDATE frames through the routing
// bus; friends without a live connection simply miss the broadcast and
// learn the state on their next friend-list read.
package presence
