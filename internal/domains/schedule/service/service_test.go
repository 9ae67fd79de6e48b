package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"bookme/config"
	"bookme/infras/docstore"
	"bookme/infras/otel/mocks"
	businessMocks "bookme/internal/domains/business/mocks"
	scheduleMocks "bookme/internal/domains/schedule/mocks"
	"bookme/internal/domains/schedule/model"
	"bookme/internal/domains/schedule/model/dto"
	"bookme/internal/domains/schedule/service"
	"bookme/shared/cache"
	"bookme/shared/failure"
)

type noopCache struct{}

func (noopCache) Save(context.Context, string, any, int) error { return nil }
func (noopCache) Get(context.Context, string, any) error       { return cache.Nil }
func (noopCache) Delete(context.Context, string) error         { return nil }
func (noopCache) Clear(context.Context, string) error          { return nil }

const testBusinessID = "biz-1"

func newService(t *testing.T) (service.Schedule, *scheduleMocks.MockSchedule, *businessMocks.MockBusiness) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := scheduleMocks.NewMockSchedule(ctrl)
	mockBusinessRepo := businessMocks.NewMockBusiness(ctrl)

	svc := service.New(mockRepo, mockBusinessRepo, &config.Config{}, noopCache{}, mocks.NewOtel())

	return svc, mockRepo, mockBusinessRepo
}

func TestScheduleService_GetWeekly(t *testing.T) {
	t.Run("returns stored schedule", func(t *testing.T) {
		svc, mockRepo, mockBusinessRepo := newService(t)

		stored := model.WeeklySchedule{
			time.Monday: {Open: 600, Close: 720},
		}

		mockBusinessRepo.EXPECT().Exist(gomock.Any(), testBusinessID).Return(true, nil)
		mockRepo.EXPECT().Get(gomock.Any(), testBusinessID).Return(stored, nil)

		weekly, err := svc.GetWeekly(context.Background(), testBusinessID)
		assert.NoError(t, err)
		assert.Equal(t, stored, weekly)
	})

	t.Run("falls back to default template when unset", func(t *testing.T) {
		svc, mockRepo, mockBusinessRepo := newService(t)

		mockBusinessRepo.EXPECT().Exist(gomock.Any(), testBusinessID).Return(true, nil)
		mockRepo.EXPECT().Get(gomock.Any(), testBusinessID).Return(nil, docstore.ErrNotFound)

		weekly, err := svc.GetWeekly(context.Background(), testBusinessID)
		assert.NoError(t, err)
		assert.Equal(t, model.DefaultTemplate(), weekly)
	})

	t.Run("unknown business", func(t *testing.T) {
		svc, _, mockBusinessRepo := newService(t)

		mockBusinessRepo.EXPECT().Exist(gomock.Any(), "ghost").Return(false, nil)

		_, err := svc.GetWeekly(context.Background(), "ghost")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("store failure propagates", func(t *testing.T) {
		svc, mockRepo, mockBusinessRepo := newService(t)

		mockBusinessRepo.EXPECT().Exist(gomock.Any(), testBusinessID).Return(true, nil)
		mockRepo.EXPECT().Get(gomock.Any(), testBusinessID).Return(nil, errors.New("store down"))

		_, err := svc.GetWeekly(context.Background(), testBusinessID)
		assert.Error(t, err)
	})
}

func TestScheduleService_Get(t *testing.T) {
	svc, mockRepo, mockBusinessRepo := newService(t)

	mockBusinessRepo.EXPECT().Exist(gomock.Any(), testBusinessID).Return(true, nil)
	mockRepo.EXPECT().Get(gomock.Any(), testBusinessID).Return(model.WeeklySchedule{
		time.Friday: {Open: 540, Close: 1080},
	}, nil)

	res, err := svc.Get(context.Background(), testBusinessID)
	assert.NoError(t, err)
	assert.Len(t, res.Days, 7)
	assert.Equal(t, "09:00", res.Days["friday"].Open)
	assert.True(t, res.Days["monday"].Closed)
}

func TestScheduleService_Update(t *testing.T) {
	validRequest := dto.UpdateScheduleRequest{
		Days: map[string]dto.DaySchedule{
			"monday": {Open: "08:00", Close: "17:00"},
		},
	}

	t.Run("stores the validated schedule", func(t *testing.T) {
		svc, mockRepo, mockBusinessRepo := newService(t)

		mockBusinessRepo.EXPECT().Exist(gomock.Any(), testBusinessID).Return(true, nil)
		mockRepo.EXPECT().
			Set(gomock.Any(), testBusinessID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, ws model.WeeklySchedule) error {
				assert.Len(t, ws, 7)
				assert.Equal(t, "08:00", ws.Day(time.Monday).Open.String())
				assert.True(t, ws.Day(time.Sunday).Closed)

				return nil
			})

		assert.NoError(t, svc.Update(context.Background(), validRequest, testBusinessID))
	})

	t.Run("rejects open at or after close", func(t *testing.T) {
		svc, _, mockBusinessRepo := newService(t)

		mockBusinessRepo.EXPECT().Exist(gomock.Any(), testBusinessID).Return(true, nil)

		err := svc.Update(context.Background(), dto.UpdateScheduleRequest{
			Days: map[string]dto.DaySchedule{
				"monday": {Open: "17:00", Close: "08:00"},
			},
		}, testBusinessID)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown business", func(t *testing.T) {
		svc, _, mockBusinessRepo := newService(t)

		mockBusinessRepo.EXPECT().Exist(gomock.Any(), "ghost").Return(false, nil)

		err := svc.Update(context.Background(), validRequest, "ghost")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
