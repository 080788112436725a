package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bagdasarian/taskhub/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTeamServiceForTest(
	teamRepo *MockTeamRepository,
	membershipRepo *MockMembershipRepository,
	profileRepo *MockProfileRepository,
) TeamService {
	membership := NewMembershipService(teamRepo, membershipRepo)
	enricher := NewEnricher(profileRepo, logrus.New())
	return NewTeamService(teamRepo, membershipRepo, membership, enricher)
}

func TestTeamService_CreateTeam(t *testing.T) {
	t.Run("успешное создание команды", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)

		service := newTeamServiceForTest(mockTeamRepo, new(MockMembershipRepository), new(MockProfileRepository))

		mockTeamRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		team, err := service.CreateTeam(context.Background(), &domain.Principal{ID: "u1"}, CreateTeamInput{
			Name:        "backend",
			Description: "backend team",
		})

		require.NoError(t, err)
		assert.Equal(t, "backend", team.Name)
		assert.Equal(t, "u1", team.CreatedBy)
		mockTeamRepo.AssertExpectations(t)
	})

	t.Run("ошибка: без принципала", func(t *testing.T) {
		service := newTeamServiceForTest(new(MockTeamRepository), new(MockMembershipRepository), new(MockProfileRepository))

		team, err := service.CreateTeam(context.Background(), nil, CreateTeamInput{Name: "backend"})

		require.Error(t, err)
		assert.Nil(t, team)
		assert.True(t, errors.Is(err, domain.ErrUnauthenticated))
	})
}

func TestTeamService_GetTeam(t *testing.T) {
	t.Run("владелец включается первым, его заблудшая строка отбрасывается", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockMembershipRepo := new(MockMembershipRepository)
		mockProfileRepo := new(MockProfileRepository)

		service := newTeamServiceForTest(mockTeamRepo, mockMembershipRepo, mockProfileRepo)

		team := &domain.Team{ID: 1, Name: "backend", CreatedBy: "u1", CreatedAt: time.Now()}

		// Один вызов для авторизации, второй для чтения
		mockTeamRepo.On("GetByID", mock.Anything, int64(1)).Return(team, nil).Twice()
		mockMembershipRepo.On("GetByTeamID", mock.Anything, int64(1)).Return([]*domain.TeamMembership{
			{TeamID: 1, UserID: "u1", Role: domain.RoleViewer},
			{TeamID: 1, UserID: "u2", Role: domain.RoleMember},
		}, nil).Once()
		mockProfileRepo.On("GetByIDs", mock.Anything, []string{"u1", "u2"}).Return(map[string]*domain.Profile{
			"u1": {ID: "u1", Email: "u1@example.com"},
			"u2": {ID: "u2", Email: "u2@example.com"},
		}, nil).Once()

		_, members, err := service.GetTeam(context.Background(), &domain.Principal{ID: "u1"}, 1)

		require.NoError(t, err)
		require.Len(t, members, 2)
		assert.Equal(t, "u1", members[0].UserID)
		assert.Equal(t, domain.RoleAdmin, members[0].Role)
		assert.True(t, members[0].IsOwner)
		assert.Equal(t, "u2", members[1].UserID)
		assert.Equal(t, domain.RoleMember, members[1].Role)
		require.NotNil(t, members[1].Profile)
	})

	t.Run("ошибка: посторонний не видит команду", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockMembershipRepo := new(MockMembershipRepository)

		service := newTeamServiceForTest(mockTeamRepo, mockMembershipRepo, new(MockProfileRepository))

		mockTeamRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Team{
			ID: 1, CreatedBy: "owner",
		}, nil).Once()
		mockMembershipRepo.On("Get", mock.Anything, int64(1), "stranger").Return(nil, errors.New("membership not found")).Once()

		_, _, err := service.GetTeam(context.Background(), &domain.Principal{ID: "stranger"}, 1)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotAMember))
		mockMembershipRepo.AssertNotCalled(t, "GetByTeamID", mock.Anything, mock.Anything)
	})
}

func TestTeamService_InviteMember(t *testing.T) {
	t.Run("успех: member может приглашать", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockMembershipRepo := new(MockMembershipRepository)

		service := newTeamServiceForTest(mockTeamRepo, mockMembershipRepo, new(MockProfileRepository))

		team := &domain.Team{ID: 1, CreatedBy: "owner"}
		mockTeamRepo.On("GetByID", mock.Anything, int64(1)).Return(team, nil).Twice()
		mockMembershipRepo.On("Get", mock.Anything, int64(1), "u2").Return(&domain.TeamMembership{
			TeamID: 1, UserID: "u2", Role: domain.RoleMember,
		}, nil).Once()
		mockMembershipRepo.On("Get", mock.Anything, int64(1), "u3").Return(nil, errors.New("membership not found")).Once()
		mockMembershipRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(m *domain.TeamMembership) bool {
			return m.TeamID == 1 && m.UserID == "u3" && m.Role == domain.RoleViewer
		})).Return(nil).Once()

		err := service.InviteMember(context.Background(), &domain.Principal{ID: "u2"}, 1, "u3", domain.RoleViewer)

		require.NoError(t, err)
		mockMembershipRepo.AssertExpectations(t)
	})

	t.Run("ошибка: viewer не может приглашать", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockMembershipRepo := new(MockMembershipRepository)

		service := newTeamServiceForTest(mockTeamRepo, mockMembershipRepo, new(MockProfileRepository))

		mockTeamRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Team{
			ID: 1, CreatedBy: "owner",
		}, nil).Once()
		mockMembershipRepo.On("Get", mock.Anything, int64(1), "u2").Return(&domain.TeamMembership{
			TeamID: 1, UserID: "u2", Role: domain.RoleViewer,
		}, nil).Once()

		err := service.InviteMember(context.Background(), &domain.Principal{ID: "u2"}, 1, "u3", domain.RoleMember)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrForbidden))
		mockMembershipRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("ошибка: неизвестная роль отклоняется до авторизации", func(t *testing.T) {
		service := newTeamServiceForTest(new(MockTeamRepository), new(MockMembershipRepository), new(MockProfileRepository))

		err := service.InviteMember(context.Background(), &domain.Principal{ID: "u1"}, 1, "u3", domain.Role("root"))

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidRole))
	})

	t.Run("ошибка: владельцу не нужна строка участия", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockMembershipRepo := new(MockMembershipRepository)

		service := newTeamServiceForTest(mockTeamRepo, mockMembershipRepo, new(MockProfileRepository))

		team := &domain.Team{ID: 1, CreatedBy: "owner"}
		mockTeamRepo.On("GetByID", mock.Anything, int64(1)).Return(team, nil).Twice()

		err := service.InviteMember(context.Background(), &domain.Principal{ID: "owner"}, 1, "owner", domain.RoleViewer)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrMemberExists))
		mockMembershipRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}

func TestTeamService_ChangeMemberRole(t *testing.T) {
	t.Run("ошибка: member не назначает роли", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockMembershipRepo := new(MockMembershipRepository)

		service := newTeamServiceForTest(mockTeamRepo, mockMembershipRepo, new(MockProfileRepository))

		mockTeamRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Team{
			ID: 1, CreatedBy: "owner",
		}, nil).Once()
		mockMembershipRepo.On("Get", mock.Anything, int64(1), "u2").Return(&domain.TeamMembership{
			TeamID: 1, UserID: "u2", Role: domain.RoleMember,
		}, nil).Once()

		err := service.ChangeMemberRole(context.Background(), &domain.Principal{ID: "u2"}, 1, "u3", domain.RoleAdmin)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrForbidden))
	})

	t.Run("успех: владелец меняет роль участника", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockMembershipRepo := new(MockMembershipRepository)

		service := newTeamServiceForTest(mockTeamRepo, mockMembershipRepo, new(MockProfileRepository))

		mockTeamRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Team{
			ID: 1, CreatedBy: "owner",
		}, nil).Once()
		mockMembershipRepo.On("Get", mock.Anything, int64(1), "u3").Return(&domain.TeamMembership{
			TeamID: 1, UserID: "u3", Role: domain.RoleViewer,
		}, nil).Once()
		mockMembershipRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(m *domain.TeamMembership) bool {
			return m.UserID == "u3" && m.Role == domain.RoleMember
		})).Return(nil).Once()

		err := service.ChangeMemberRole(context.Background(), &domain.Principal{ID: "owner"}, 1, "u3", domain.RoleMember)

		require.NoError(t, err)
		mockMembershipRepo.AssertExpectations(t)
	})
}

func TestTeamService_RemoveMember(t *testing.T) {
	t.Run("ошибка: удалять участников может только manage_team", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockMembershipRepo := new(MockMembershipRepository)

		service := newTeamServiceForTest(mockTeamRepo, mockMembershipRepo, new(MockProfileRepository))

		mockTeamRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Team{
			ID: 1, CreatedBy: "owner",
		}, nil).Once()
		mockMembershipRepo.On("Get", mock.Anything, int64(1), "u2").Return(&domain.TeamMembership{
			TeamID: 1, UserID: "u2", Role: domain.RoleMember,
		}, nil).Once()

		err := service.RemoveMember(context.Background(), &domain.Principal{ID: "u2"}, 1, "u3")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrForbidden))
		mockMembershipRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})
}
