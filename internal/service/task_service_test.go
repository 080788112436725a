package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bagdasarian/taskhub/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func newTaskServiceForTest(
	taskRepo *MockTaskRepository,
	teamRepo *MockTeamRepository,
	membershipRepo *MockMembershipRepository,
	profileRepo *MockProfileRepository,
) TaskService {
	membership := NewMembershipService(teamRepo, membershipRepo)
	enricher := NewEnricher(profileRepo, logrus.New())
	return NewTaskService(taskRepo, membership, enricher)
}

func TestTaskService_ListTeamTasks(t *testing.T) {
	t.Run("ошибка: не участник, задачи не читаются вовсе", func(t *testing.T) {
		mockTaskRepo := new(MockTaskRepository)
		mockTeamRepo := new(MockTeamRepository)
		mockMembershipRepo := new(MockMembershipRepository)
		mockProfileRepo := new(MockProfileRepository)

		service := newTaskServiceForTest(mockTaskRepo, mockTeamRepo, mockMembershipRepo, mockProfileRepo)

		mockTeamRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Team{
			ID: 1, CreatedBy: "owner",
		}, nil).Once()
		mockMembershipRepo.On("Get", mock.Anything, int64(1), "stranger").Return(nil, errors.New("membership not found")).Once()

		result, err := service.ListTeamTasks(context.Background(), &domain.Principal{ID: "stranger"}, 1)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrNotAMember))
		// Ни одного обращения к хранилищу задач до авторизации
		mockTaskRepo.AssertNotCalled(t, "GetByTeamID", mock.Anything, mock.Anything)
	})

	t.Run("успех: задачи возвращаются обогащенными", func(t *testing.T) {
		mockTaskRepo := new(MockTaskRepository)
		mockTeamRepo := new(MockTeamRepository)
		mockMembershipRepo := new(MockMembershipRepository)
		mockProfileRepo := new(MockProfileRepository)

		service := newTaskServiceForTest(mockTaskRepo, mockTeamRepo, mockMembershipRepo, mockProfileRepo)

		mockTeamRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Team{
			ID: 1, CreatedBy: "owner",
		}, nil).Once()
		mockTaskRepo.On("GetByTeamID", mock.Anything, int64(1)).Return([]*domain.Task{
			{ID: 10, Title: "task", TeamID: int64Ptr(1), AssignedTo: strPtr("u2")},
		}, nil).Once()
		mockProfileRepo.On("GetByIDs", mock.Anything, []string{"u2"}).Return(map[string]*domain.Profile{
			"u2": {ID: "u2", Email: "u2@example.com"},
		}, nil).Once()

		result, err := service.ListTeamTasks(context.Background(), &domain.Principal{ID: "owner"}, 1)

		require.NoError(t, err)
		require.Len(t, result, 1)
		require.NotNil(t, result[0].AssigneeData)
		assert.Equal(t, "u2@example.com", result[0].AssigneeData.Email)
	})

	t.Run("ошибка: без принципала", func(t *testing.T) {
		mockTaskRepo := new(MockTaskRepository)
		service := newTaskServiceForTest(mockTaskRepo, new(MockTeamRepository), new(MockMembershipRepository), new(MockProfileRepository))

		_, err := service.ListTeamTasks(context.Background(), nil, 1)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnauthenticated))
	})
}

func TestTaskService_CreateTask(t *testing.T) {
	t.Run("ошибка: viewer не может создавать задачи", func(t *testing.T) {
		mockTaskRepo := new(MockTaskRepository)
		mockTeamRepo := new(MockTeamRepository)
		mockMembershipRepo := new(MockMembershipRepository)

		service := newTaskServiceForTest(mockTaskRepo, mockTeamRepo, mockMembershipRepo, new(MockProfileRepository))

		mockTeamRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Team{
			ID: 1, CreatedBy: "owner",
		}, nil).Once()
		mockMembershipRepo.On("Get", mock.Anything, int64(1), "u2").Return(&domain.TeamMembership{
			TeamID: 1, UserID: "u2", Role: domain.RoleViewer,
		}, nil).Once()

		result, err := service.CreateTask(context.Background(), &domain.Principal{ID: "u2"}, TaskInput{
			Title:  "new task",
			TeamID: int64Ptr(1),
		})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrForbidden))
		mockTaskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("успех: личная задача создается без проверки команды", func(t *testing.T) {
		mockTaskRepo := new(MockTaskRepository)
		mockTeamRepo := new(MockTeamRepository)

		service := newTaskServiceForTest(mockTaskRepo, mockTeamRepo, new(MockMembershipRepository), new(MockProfileRepository))

		mockTaskRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		result, err := service.CreateTask(context.Background(), &domain.Principal{ID: "u1"}, TaskInput{
			Title: "personal",
		})

		require.NoError(t, err)
		assert.Equal(t, "u1", result.UserID)
		assert.Equal(t, domain.StatusTodo, result.Status)
		assert.Nil(t, result.TeamID)
		mockTeamRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestTaskService_GetTask(t *testing.T) {
	t.Run("личная задача чужого принципала неотличима от несуществующей", func(t *testing.T) {
		mockTaskRepo := new(MockTaskRepository)

		service := newTaskServiceForTest(mockTaskRepo, new(MockTeamRepository), new(MockMembershipRepository), new(MockProfileRepository))

		mockTaskRepo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Task{
			ID: 5, Title: "private", UserID: "u1",
		}, nil).Once()

		result, err := service.GetTask(context.Background(), &domain.Principal{ID: "u2"}, 5)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestTaskService_DeleteTask(t *testing.T) {
	t.Run("ошибка: member не может удалять командные задачи", func(t *testing.T) {
		mockTaskRepo := new(MockTaskRepository)
		mockTeamRepo := new(MockTeamRepository)
		mockMembershipRepo := new(MockMembershipRepository)

		service := newTaskServiceForTest(mockTaskRepo, mockTeamRepo, mockMembershipRepo, new(MockProfileRepository))

		mockTaskRepo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Task{
			ID: 5, TeamID: int64Ptr(1), UserID: "u2",
		}, nil).Once()
		mockTeamRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Team{
			ID: 1, CreatedBy: "owner",
		}, nil).Once()
		mockMembershipRepo.On("Get", mock.Anything, int64(1), "u2").Return(&domain.TeamMembership{
			TeamID: 1, UserID: "u2", Role: domain.RoleMember,
		}, nil).Once()

		err := service.DeleteTask(context.Background(), &domain.Principal{ID: "u2"}, 5)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrForbidden))
		mockTaskRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("успех: создатель удаляет личную задачу", func(t *testing.T) {
		mockTaskRepo := new(MockTaskRepository)

		service := newTaskServiceForTest(mockTaskRepo, new(MockTeamRepository), new(MockMembershipRepository), new(MockProfileRepository))

		mockTaskRepo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Task{
			ID: 5, UserID: "u1",
		}, nil).Once()
		mockTaskRepo.On("Delete", mock.Anything, int64(5)).Return(nil).Once()

		err := service.DeleteTask(context.Background(), &domain.Principal{ID: "u1"}, 5)

		require.NoError(t, err)
		mockTaskRepo.AssertExpectations(t)
	})
}
