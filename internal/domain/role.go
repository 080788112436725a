package domain

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleViewer Role = "viewer"
)

type Capability string

const (
	CapViewTasks     Capability = "view_tasks"
	CapCreateTasks   Capability = "create_tasks"
	CapUpdateTasks   Capability = "update_tasks"
	CapDeleteTasks   Capability = "delete_tasks"
	CapManageTeam    Capability = "manage_team"
	CapInviteMembers Capability = "invite_members"
	CapAssignRoles   Capability = "assign_roles"
)

// CapabilitySet - явный набор возможностей роли. Роли не упорядочены
// численно: viewer и member различаются не монотонно, поэтому каждая
// возможность задается отдельным флагом.
type CapabilitySet struct {
	CanViewTasks     bool
	CanCreateTasks   bool
	CanUpdateTasks   bool
	CanDeleteTasks   bool
	CanManageTeam    bool
	CanInviteMembers bool
	CanAssignRoles   bool
}

func (s CapabilitySet) Has(c Capability) bool {
	switch c {
	case CapViewTasks:
		return s.CanViewTasks
	case CapCreateTasks:
		return s.CanCreateTasks
	case CapUpdateTasks:
		return s.CanUpdateTasks
	case CapDeleteTasks:
		return s.CanDeleteTasks
	case CapManageTeam:
		return s.CanManageTeam
	case CapInviteMembers:
		return s.CanInviteMembers
	case CapAssignRoles:
		return s.CanAssignRoles
	default:
		return false
	}
}

// TeamRole - результат разрешения отношения принципала к команде.
// Владение командой всегда имеет приоритет над строкой участия.
type TeamRole struct {
	Role    Role
	IsOwner bool
}
