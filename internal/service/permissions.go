package service

import "github.com/bagdasarian/taskhub/internal/domain"

// Фиксированная матрица роль -> возможности. Владелец команды получает
// строку admin неявно, это решает MembershipService до обращения к матрице.
var roleCapabilities = map[domain.Role]domain.CapabilitySet{
	domain.RoleAdmin: {
		CanViewTasks:     true,
		CanCreateTasks:   true,
		CanUpdateTasks:   true,
		CanDeleteTasks:   true,
		CanManageTeam:    true,
		CanInviteMembers: true,
		CanAssignRoles:   true,
	},
	domain.RoleMember: {
		CanViewTasks:     true,
		CanCreateTasks:   true,
		CanUpdateTasks:   true,
		CanDeleteTasks:   false,
		CanManageTeam:    false,
		CanInviteMembers: true,
		CanAssignRoles:   false,
	},
	domain.RoleViewer: {
		CanViewTasks: true,
	},
}

// CapabilitiesFor возвращает набор возможностей роли. Неизвестная роль -
// ошибка целостности данных: никакого отката к наименее или наиболее
// привилегированной строке.
func CapabilitiesFor(role domain.Role) (domain.CapabilitySet, error) {
	capabilities, ok := roleCapabilities[role]
	if !ok {
		return domain.CapabilitySet{}, domain.ErrInvalidRole
	}
	return capabilities, nil
}
