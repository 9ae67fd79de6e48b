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
	"bookme/infras/docstore/memory"
	"bookme/infras/otel/mocks"
	businessMocks "bookme/internal/domains/business/mocks"
	businessModel "bookme/internal/domains/business/model"
	businessRepo "bookme/internal/domains/business/repository"
	reviewMocks "bookme/internal/domains/review/mocks"
	"bookme/internal/domains/review/model"
	"bookme/internal/domains/review/model/dto"
	reviewRepo "bookme/internal/domains/review/repository"
	"bookme/internal/domains/review/service"
	"bookme/shared/cache"
	"bookme/shared/constant"
	"bookme/shared/failure"
	gModel "bookme/shared/model"
)

// noopCache always misses so the service hits its repositories.
type noopCache struct{}

func (noopCache) Save(context.Context, string, any, int) error { return nil }
func (noopCache) Get(context.Context, string, any) error       { return cache.Nil }
func (noopCache) Delete(context.Context, string) error         { return nil }
func (noopCache) Clear(context.Context, string) error          { return nil }

const (
	testBusinessID = "biz-1"
	testCustomerID = "cust-1"
)

func customerCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, testCustomerID)
}

func newService(t *testing.T) (service.Review, *reviewMocks.MockReview, *businessMocks.MockBusiness) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := reviewMocks.NewMockReview(ctrl)
	mockBusinessRepo := businessMocks.NewMockBusiness(ctrl)

	svc := service.New(mockRepo, mockBusinessRepo, &config.Config{}, noopCache{}, mocks.NewOtel())

	return svc, mockRepo, mockBusinessRepo
}

func TestReviewService_Upsert(t *testing.T) {
	req := dto.UpsertReviewRequest{Stars: 4, Comment: "  great cut  "}

	t.Run("first review is created with trimmed comment", func(t *testing.T) {
		svc, mockRepo, mockBusinessRepo := newService(t)

		mockBusinessRepo.EXPECT().Exist(gomock.Any(), testBusinessID).Return(true, nil)
		mockRepo.EXPECT().Get(gomock.Any(), testBusinessID, testCustomerID).Return(model.Review{}, docstore.ErrNotFound)
		mockRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, review model.Review) error {
				assert.Equal(t, testCustomerID, review.CustomerID)
				assert.Equal(t, 4, review.Stars)
				assert.Equal(t, "great cut", review.Comment)
				assert.Nil(t, review.UpdatedAt)

				return nil
			})

		res, err := svc.Upsert(customerCtx(), req, testBusinessID)
		assert.NoError(t, err)
		assert.Equal(t, "great cut", res.Comment)
		assert.Empty(t, res.UpdatedAt)
	})

	t.Run("re-review replaces in place and stamps update time", func(t *testing.T) {
		svc, mockRepo, mockBusinessRepo := newService(t)

		created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
		existing := model.Review{
			BusinessID: testBusinessID,
			CustomerID: testCustomerID,
			Stars:      2,
			Comment:    "meh",
			Metadata:   gModel.Metadata{CreatedAt: created, CreatedBy: testCustomerID},
		}

		mockBusinessRepo.EXPECT().Exist(gomock.Any(), testBusinessID).Return(true, nil)
		mockRepo.EXPECT().Get(gomock.Any(), testBusinessID, testCustomerID).Return(existing, nil)
		mockRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, review model.Review) error {
				assert.Equal(t, 4, review.Stars)
				assert.Equal(t, "great cut", review.Comment)
				assert.Equal(t, created, review.CreatedAt)
				assert.NotNil(t, review.UpdatedAt)

				return nil
			})

		res, err := svc.Upsert(customerCtx(), req, testBusinessID)
		assert.NoError(t, err)
		assert.NotEmpty(t, res.UpdatedAt)
	})

	t.Run("missing principal is unauthorized", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.Upsert(context.Background(), req, testBusinessID)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("unknown business returns not found", func(t *testing.T) {
		svc, _, mockBusinessRepo := newService(t)

		mockBusinessRepo.EXPECT().Exist(gomock.Any(), "ghost").Return(false, nil)

		_, err := svc.Upsert(customerCtx(), req, "ghost")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("store failure propagates", func(t *testing.T) {
		svc, mockRepo, mockBusinessRepo := newService(t)

		mockBusinessRepo.EXPECT().Exist(gomock.Any(), testBusinessID).Return(true, nil)
		mockRepo.EXPECT().Get(gomock.Any(), testBusinessID, testCustomerID).Return(model.Review{}, errors.New("store down"))

		_, err := svc.Upsert(customerCtx(), req, testBusinessID)
		assert.Error(t, err)
	})
}

func TestReviewService_GetAll(t *testing.T) {
	t.Run("lists reviews newest first", func(t *testing.T) {
		svc, mockRepo, mockBusinessRepo := newService(t)

		older := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
		newer := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

		mockBusinessRepo.EXPECT().Exist(gomock.Any(), testBusinessID).Return(true, nil)
		mockRepo.EXPECT().GetAll(gomock.Any(), testBusinessID).Return([]model.Review{
			{CustomerID: "cust-a", Stars: 3, Metadata: gModel.Metadata{CreatedAt: older}},
			{CustomerID: "cust-b", Stars: 5, Metadata: gModel.Metadata{CreatedAt: newer}},
		}, nil)

		res, err := svc.GetAll(context.Background(), testBusinessID)
		assert.NoError(t, err)
		assert.Equal(t, 2, res.TotalData)
		assert.Equal(t, "cust-b", res.Reviews[0].CustomerID)
		assert.Equal(t, "cust-a", res.Reviews[1].CustomerID)
	})

	t.Run("unknown business returns not found", func(t *testing.T) {
		svc, _, mockBusinessRepo := newService(t)

		mockBusinessRepo.EXPECT().Exist(gomock.Any(), "ghost").Return(false, nil)

		_, err := svc.GetAll(context.Background(), "ghost")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

// One review per customer per business, enforced by the store key.
func TestReviewService_OneReviewPerCustomer(t *testing.T) {
	store := memory.New()
	otl := mocks.NewOtel()

	businesses := businessRepo.New(store, otl)
	reviews := reviewRepo.New(store, otl)

	err := businesses.Insert(context.Background(), businessModel.Business{ID: testBusinessID, Name: "Salon"})
	assert.NoError(t, err)

	svc := service.New(reviews, businesses, &config.Config{}, noopCache{}, otl)

	_, err = svc.Upsert(customerCtx(), dto.UpsertReviewRequest{Stars: 2, Comment: "meh"}, testBusinessID)
	assert.NoError(t, err)

	res, err := svc.Upsert(customerCtx(), dto.UpsertReviewRequest{Stars: 5, Comment: "changed my mind"}, testBusinessID)
	assert.NoError(t, err)
	assert.NotEmpty(t, res.UpdatedAt)

	all, err := svc.GetAll(context.Background(), testBusinessID)
	assert.NoError(t, err)
	assert.Equal(t, 1, all.TotalData)
	assert.Equal(t, 5, all.Reviews[0].Stars)
	assert.Equal(t, "changed my mind", all.Reviews[0].Comment)
}
