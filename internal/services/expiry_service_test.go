package services

import (
	"Stocked/internal/config"
	"Stocked/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestSweeper(mockRepo *MockItemRepository, broadcaster Broadcaster, schedule string) *ExpirySweeper {
	configuration := &config.Configuration{}
	configuration.Server.SweepConfig.Schedule = schedule
	return NewExpirySweeper(
		NewItemService(mockRepo, broadcaster),
		broadcaster,
		testLogService(),
		configuration,
	)
}

func TestExpirySweeper_Sweep_OneNudgePerHousehold(t *testing.T) {
	mockRepo := new(MockItemRepository)
	broadcaster := &stubBroadcaster{}
	sweeper := newTestSweeper(mockRepo, broadcaster, "")

	expired := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []models.Item{
		{BaseModel: models.BaseModel{ID: 1}, HouseholdID: 1, Name: "Milk", ExpirationDate: &expired},
		{BaseModel: models.BaseModel{ID: 2}, HouseholdID: 1, Name: "Yoghurt", ExpirationDate: &expired},
		{BaseModel: models.BaseModel{ID: 3}, HouseholdID: 2, Name: "Ham", ExpirationDate: &expired},
	}
	mockRepo.On("FindExpiredBefore", mock.AnythingOfType("time.Time")).Return(items, nil)

	sweeper.sweep()

	assert.Len(t, broadcaster.events, 2)
	households := make(map[uint]bool)
	for _, event := range broadcaster.events {
		assert.Equal(t, "items", event.Table)
		assert.Equal(t, "update", event.Action)
		households[event.HouseholdID] = true
	}
	assert.True(t, households[1])
	assert.True(t, households[2])
	mockRepo.AssertExpectations(t)
}

func TestExpirySweeper_Sweep_NothingExpired(t *testing.T) {
	mockRepo := new(MockItemRepository)
	broadcaster := &stubBroadcaster{}
	sweeper := newTestSweeper(mockRepo, broadcaster, "")

	mockRepo.On("FindExpiredBefore", mock.AnythingOfType("time.Time")).Return([]models.Item{}, nil)

	sweeper.sweep()

	assert.Empty(t, broadcaster.events)
	mockRepo.AssertExpectations(t)
}

func TestExpirySweeper_ForceSweep_RejectsConcurrentRun(t *testing.T) {
	mockRepo := new(MockItemRepository)
	sweeper := newTestSweeper(mockRepo, &stubBroadcaster{}, "")

	release := make(chan struct{})
	started := make(chan struct{})
	mockRepo.On("FindExpiredBefore", mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			close(started)
			<-release
		}).
		Return([]models.Item{}, nil)

	err := sweeper.ForceSweep()
	assert.NoError(t, err)
	<-started
	assert.True(t, sweeper.IsSweeping())

	err = sweeper.ForceSweep()
	assert.Error(t, err)

	close(release)
	assert.Eventually(t, func() bool { return !sweeper.IsSweeping() }, time.Second, 10*time.Millisecond)
}
