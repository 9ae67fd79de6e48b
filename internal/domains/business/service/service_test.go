package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"bookme/config"
	"bookme/infras/docstore"
	"bookme/infras/otel/mocks"
	businessMocks "bookme/internal/domains/business/mocks"
	"bookme/internal/domains/business/model"
	"bookme/internal/domains/business/model/dto"
	"bookme/internal/domains/business/service"
	scheduleMocks "bookme/internal/domains/schedule/mocks"
	scheduleModel "bookme/internal/domains/schedule/model"
	"bookme/shared/cache"
	"bookme/shared/constant"
	"bookme/shared/failure"
)

type noopCache struct{}

func (noopCache) Save(context.Context, string, any, int) error { return nil }
func (noopCache) Get(context.Context, string, any) error       { return cache.Nil }
func (noopCache) Delete(context.Context, string) error         { return nil }
func (noopCache) Clear(context.Context, string) error          { return nil }

const testOwnerID = "owner-1"

func ownerCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, testOwnerID)
}

func newService(t *testing.T) (service.Business, *businessMocks.MockBusiness, *scheduleMocks.MockSchedule) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := businessMocks.NewMockBusiness(ctrl)
	mockScheduleRepo := scheduleMocks.NewMockSchedule(ctrl)

	svc := service.New(mockRepo, mockScheduleRepo, &config.Config{}, noopCache{}, mocks.NewOtel())

	return svc, mockRepo, mockScheduleRepo
}

func TestBusinessService_Create(t *testing.T) {
	req := dto.CreateBusinessRequest{
		Name:  "Test Salon",
		Email: "salon@example.com",
	}

	t.Run("creates business with default schedule", func(t *testing.T) {
		svc, mockRepo, mockScheduleRepo := newService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, business model.Business) error {
				assert.NotEmpty(t, business.ID)
				assert.Equal(t, testOwnerID, business.OwnerID)

				return nil
			})
		mockScheduleRepo.EXPECT().
			Set(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, ws scheduleModel.WeeklySchedule) error {
				assert.Equal(t, scheduleModel.DefaultTemplate(), ws)

				return nil
			})

		res, err := svc.Create(ownerCtx(), req)
		assert.NoError(t, err)
		assert.Equal(t, "Test Salon", res.Name)
		assert.Equal(t, testOwnerID, res.OwnerID)
	})

	t.Run("insert failure propagates", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("store down"))

		_, err := svc.Create(ownerCtx(), req)
		assert.Error(t, err)
	})
}

func TestBusinessService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), "biz-1").Return(model.Business{
			ID:   "biz-1",
			Name: "Test Salon",
		}, nil)

		res, err := svc.Get(context.Background(), "biz-1")
		assert.NoError(t, err)
		assert.Equal(t, "Test Salon", res.Name)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), "ghost").Return(model.Business{}, docstore.ErrNotFound)

		_, err := svc.Get(context.Background(), "ghost")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBusinessService_GetAll(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	mockRepo.EXPECT().GetAll(gomock.Any()).Return([]model.Business{
		{ID: "biz-1"}, {ID: "biz-2"},
	}, nil)

	res, err := svc.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, res.Businesses, 2)
	assert.Equal(t, 2, res.TotalData)
}

func TestBusinessService_CreateService(t *testing.T) {
	req := dto.CreateServiceRequest{
		Name:            "Haircut",
		Price:           25,
		DurationMinutes: 30,
	}

	t.Run("creates service for existing business", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), "biz-1").Return(true, nil)
		mockRepo.EXPECT().
			InsertService(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, service model.Service) error {
				assert.Equal(t, "biz-1", service.BusinessID)
				assert.Equal(t, 30, service.DurationMinutes)

				return nil
			})

		res, err := svc.CreateService(ownerCtx(), req, "biz-1")
		assert.NoError(t, err)
		assert.Equal(t, "Haircut", res.Name)
	})

	t.Run("unknown business", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), "ghost").Return(false, nil)

		_, err := svc.CreateService(ownerCtx(), req, "ghost")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBusinessService_GetServices(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	mockRepo.EXPECT().Exist(gomock.Any(), "biz-1").Return(true, nil)
	mockRepo.EXPECT().GetAllServices(gomock.Any(), "biz-1").Return([]model.Service{
		{ID: "svc-1", Name: "Haircut", DurationMinutes: 30},
	}, nil)

	res, err := svc.GetServices(context.Background(), "biz-1")
	assert.NoError(t, err)
	assert.Len(t, res.Services, 1)
	assert.Equal(t, "Haircut", res.Services[0].Name)
}

func TestBusinessService_GetService(t *testing.T) {
	t.Run("returns the matching service", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().GetService(gomock.Any(), "biz-1", "svc-1").Return(model.Service{
			ID: "svc-1", BusinessID: "biz-1", Name: "Haircut", DurationMinutes: 30,
		}, nil)

		res, err := svc.GetService(context.Background(), "biz-1", "svc-1")
		assert.NoError(t, err)
		assert.Equal(t, "svc-1", res.ID)
		assert.Equal(t, 30, res.DurationMinutes)
	})

	t.Run("unknown service returns not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().GetService(gomock.Any(), "biz-1", "ghost").Return(model.Service{}, docstore.ErrNotFound)

		_, err := svc.GetService(context.Background(), "biz-1", "ghost")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
