package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/infras/otel/mocks"
	roomMocks "frontdesk/internal/domains/room/mocks"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/service"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
)

func TestRoomService_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	validReq := dto.SaveRoomRequest{RoomType: "Suite", PricePerNight: 250, IsAvailable: true}

	tests := []struct {
		name      string
		intent    gDto.Intent
		req       dto.SaveRoomRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name:   "create posts a new room",
			intent: gDto.Create{},
			req:    validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Create(gomock.Any(), validReq).
					Return(model.Room{RoomID: 1, RoomType: "Suite"}, nil)
			},
		},
		{
			name:   "update rewrites the named room",
			intent: gDto.Update{ID: 1},
			req:    validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), 1, validReq).
					Return(model.Room{RoomID: 1, RoomType: "Suite"}, nil)
			},
		},
		{
			name:      "missing room type is rejected",
			intent:    gDto.Create{},
			req:       dto.SaveRoomRequest{PricePerNight: 100},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:      "negative price is rejected",
			intent:    gDto.Create{},
			req:       dto.SaveRoomRequest{RoomType: "Single", PricePerNight: -5},
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			got, err := svc.Save(context.Background(), tt.intent, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Suite", got.RoomType)
		})
	}
}

func TestRoomService_GetAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().
		GetAvailable(gomock.Any()).
		Return([]model.Room{{RoomID: 1, IsAvailable: true}}, nil)

	got, err := svc.GetAvailable(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Available", got[0].AvailabilityLabel())
}

func TestRoomService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	t.Run("conflict from dependent bookings passes through", func(t *testing.T) {
		mockRepo.EXPECT().
			Delete(gomock.Any(), 2).
			Return(failure.Conflict("room has bookings"))

		assert.True(t, failure.IsConflict(svc.Delete(context.Background(), 2)))
	})

	t.Run("non-positive id is rejected locally", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(context.Background(), 0), failure.EmptyIdentifier)
	})
}
