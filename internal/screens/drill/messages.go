package drill

import (
	"github.com/aeroSapphire/greprep/internal/cluster"
	"github.com/aeroSapphire/greprep/internal/profile"
)

// initDoneMsg carries the loaded profile and the assembled drill
// session, or the load error.
type initDoneMsg struct {
	Profile *profile.Profile
	Cluster *cluster.Cluster
	Session *cluster.Session
	Err     error
}

// savedMsg reports the end-of-session snapshot write.
type savedMsg struct {
	Err error
}
