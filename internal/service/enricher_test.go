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

func strPtr(s string) *string {
	return &s
}

func TestEnricher_EnrichTasks(t *testing.T) {
	t.Run("пустой вход не обращается к профилям", func(t *testing.T) {
		mockProfileRepo := new(MockProfileRepository)
		enricher := NewEnricher(mockProfileRepo, logrus.New())

		result := enricher.EnrichTasks(context.Background(), []*domain.Task{})

		assert.Empty(t, result)
		mockProfileRepo.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
	})

	t.Run("один батчевый запрос по уникальным исполнителям", func(t *testing.T) {
		mockProfileRepo := new(MockProfileRepository)
		enricher := NewEnricher(mockProfileRepo, logrus.New())

		tasks := []*domain.Task{
			{ID: 1, Title: "first", AssignedTo: strPtr("u1")},
			{ID: 2, Title: "second", AssignedTo: nil},
			{ID: 3, Title: "third", AssignedTo: strPtr("u1")},
		}

		ann := "Ann"
		mockProfileRepo.On("GetByIDs", mock.Anything, []string{"u1"}).Return(map[string]*domain.Profile{
			"u1": {ID: "u1", Email: "ann@example.com", Name: &ann},
		}, nil).Once()

		result := enricher.EnrichTasks(context.Background(), tasks)

		require.Len(t, result, 3)
		// Порядок входа сохраняется, поля задач не меняются
		assert.Equal(t, int64(1), result[0].ID)
		assert.Equal(t, int64(2), result[1].ID)
		assert.Equal(t, int64(3), result[2].ID)

		require.NotNil(t, result[0].AssigneeData)
		assert.Equal(t, "Ann", *result[0].AssigneeData.Name)
		assert.Nil(t, result[1].AssigneeData)
		require.NotNil(t, result[2].AssigneeData)
		assert.Equal(t, "u1", result[2].AssigneeData.ID)

		mockProfileRepo.AssertExpectations(t)
		mockProfileRepo.AssertNumberOfCalls(t, "GetByIDs", 1)
	})

	t.Run("отсутствующий профиль деградирует до nil, а не до ошибки", func(t *testing.T) {
		mockProfileRepo := new(MockProfileRepository)
		enricher := NewEnricher(mockProfileRepo, logrus.New())

		tasks := []*domain.Task{
			{ID: 1, AssignedTo: strPtr("deleted-user")},
		}

		mockProfileRepo.On("GetByIDs", mock.Anything, []string{"deleted-user"}).Return(map[string]*domain.Profile{}, nil).Once()

		result := enricher.EnrichTasks(context.Background(), tasks)

		require.Len(t, result, 1)
		assert.Nil(t, result[0].AssigneeData)
	})

	t.Run("ошибка выборки профилей не блокирует просмотр задач", func(t *testing.T) {
		mockProfileRepo := new(MockProfileRepository)
		enricher := NewEnricher(mockProfileRepo, logrus.New())

		tasks := []*domain.Task{
			{ID: 1, AssignedTo: strPtr("u1")},
			{ID: 2, AssignedTo: strPtr("u2")},
		}

		mockProfileRepo.On("GetByIDs", mock.Anything, []string{"u1", "u2"}).Return(nil, errors.New("connection refused")).Once()

		result := enricher.EnrichTasks(context.Background(), tasks)

		require.Len(t, result, 2)
		assert.Nil(t, result[0].AssigneeData)
		assert.Nil(t, result[1].AssigneeData)
	})

	t.Run("задачи без исполнителей не обращаются к профилям", func(t *testing.T) {
		mockProfileRepo := new(MockProfileRepository)
		enricher := NewEnricher(mockProfileRepo, logrus.New())

		tasks := []*domain.Task{
			{ID: 1},
			{ID: 2},
		}

		result := enricher.EnrichTasks(context.Background(), tasks)

		require.Len(t, result, 2)
		mockProfileRepo.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
	})
}

func TestEnricher_EnrichMembers(t *testing.T) {
	t.Run("профили присоединяются к участникам в исходном порядке", func(t *testing.T) {
		mockProfileRepo := new(MockProfileRepository)
		enricher := NewEnricher(mockProfileRepo, logrus.New())

		members := []*domain.TeamMember{
			{UserID: "u1", Role: domain.RoleAdmin, IsOwner: true},
			{UserID: "u2", Role: domain.RoleViewer},
		}

		mockProfileRepo.On("GetByIDs", mock.Anything, []string{"u1", "u2"}).Return(map[string]*domain.Profile{
			"u1": {ID: "u1", Email: "owner@example.com"},
		}, nil).Once()

		result := enricher.EnrichMembers(context.Background(), members)

		require.Len(t, result, 2)
		require.NotNil(t, result[0].Profile)
		assert.Equal(t, "owner@example.com", result[0].Profile.Email)
		assert.Nil(t, result[1].Profile)
		mockProfileRepo.AssertExpectations(t)
	})

	t.Run("пустой список участников не обращается к профилям", func(t *testing.T) {
		mockProfileRepo := new(MockProfileRepository)
		enricher := NewEnricher(mockProfileRepo, logrus.New())

		result := enricher.EnrichMembers(context.Background(), nil)

		assert.Empty(t, result)
		mockProfileRepo.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
	})
}
