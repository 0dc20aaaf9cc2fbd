package application

import "github.com/avasile/resx-cli/internal/domain"

type Screen string

const (
	ScreenDonorHome     Screen = "donor-home"
	ScreenDonorItems    Screen = "donor-items"
	ScreenDonorAddItem  Screen = "donor-add-item"
	ScreenAdminHome     Screen = "admin-dashboard"
	ScreenRecipientHome Screen = "recipient-dashboard"
	ScreenBrowseItems   Screen = "browse-items"
	ScreenSearchItems   Screen = "search-items"
	ScreenInbox         Screen = "inbox"
	ScreenChat          Screen = "chat"
)

// Graph is the fixed set of screens reachable for one account role.
type Graph struct {
	Role    domain.Role
	Initial Screen
	Screens []Screen
}

func (g Graph) Contains(screen Screen) bool {
	for _, s := range g.Screens {
		if s == screen {
			return true
		}
	}
	return false
}

var graphs = map[domain.Role]Graph{
	domain.RoleDonor: {
		Role:    domain.RoleDonor,
		Initial: ScreenDonorHome,
		Screens: []Screen{ScreenDonorHome, ScreenDonorItems, ScreenDonorAddItem, ScreenInbox, ScreenChat},
	},
	domain.RoleAdmin: {
		Role:    domain.RoleAdmin,
		Initial: ScreenAdminHome,
		Screens: []Screen{ScreenAdminHome},
	},
	domain.RoleRecipient: {
		Role:    domain.RoleRecipient,
		Initial: ScreenRecipientHome,
		Screens: []Screen{ScreenRecipientHome, ScreenBrowseItems, ScreenSearchItems, ScreenInbox, ScreenChat},
	},
}

// ResolveGraph maps an authenticated identity to its navigation graph. The
// mapping is total: donor and admin get their own graphs, everything else
// falls through to the recipient graph. The second return reports whether
// the fallback was taken for a role the client does not recognize, so
// callers can warn without treating it as an error. The chosen graph is
// fixed for the lifetime of the session; a role change requires a fresh
// login.
func ResolveGraph(identity domain.Identity) (Graph, bool) {
	if graph, ok := graphs[identity.Role]; ok {
		return graph, false
	}

	return graphs[domain.RoleRecipient], identity.Role != ""
}
