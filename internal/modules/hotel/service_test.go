package hotel

import (
	"context"
	"testing"

	"eventstay/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockHotelRepository struct {
	mock.Mock
}

func (m *MockHotelRepository) List(ctx context.Context) ([]domain.Hotel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

func (m *MockHotelRepository) GetByID(ctx context.Context, hotelID int64) (*domain.Hotel, error) {
	args := m.Called(ctx, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

type MockEnrollmentRepository struct {
	mock.Mock
}

func (m *MockEnrollmentRepository) GetEligibilityByUserID(ctx context.Context, userID int64) (*domain.Enrollment, *domain.TicketType, error) {
	args := m.Called(ctx, userID)
	var enrollment *domain.Enrollment
	var ticketType *domain.TicketType
	if args.Get(0) != nil {
		enrollment = args.Get(0).(*domain.Enrollment)
	}
	if args.Get(1) != nil {
		ticketType = args.Get(1).(*domain.TicketType)
	}
	return enrollment, ticketType, args.Error(2)
}

func eligibleFixture() (*domain.Enrollment, *domain.TicketType) {
	enrollment := &domain.Enrollment{
		ID:     1,
		UserID: 42,
		Tickets: []domain.Ticket{
			{ID: 1, EnrollmentID: 1, TicketTypeID: 7, Status: domain.TicketPaid},
		},
	}
	ticketType := &domain.TicketType{ID: 7, IncludesHotel: true, IsRemote: false}
	return enrollment, ticketType
}

func TestService_ListHotels_Success(t *testing.T) {
	mockHotels := new(MockHotelRepository)
	mockEnrollments := new(MockEnrollmentRepository)
	service := NewService(mockHotels, mockEnrollments)

	enrollment, ticketType := eligibleFixture()
	mockEnrollments.On("GetEligibilityByUserID", mock.Anything, int64(42)).Return(enrollment, ticketType, nil)
	mockHotels.On("List", mock.Anything).Return([]domain.Hotel{
		{ID: 1, Name: "Grand Conference Hotel"},
		{ID: 2, Name: "Riverside Suites"},
	}, nil)

	hotels, err := service.ListHotels(context.Background(), 42)

	assert.NoError(t, err)
	assert.Len(t, hotels, 2)
}

func TestService_ListHotels_Ineligible(t *testing.T) {
	mockHotels := new(MockHotelRepository)
	mockEnrollments := new(MockEnrollmentRepository)
	service := NewService(mockHotels, mockEnrollments)

	enrollment, ticketType := eligibleFixture()
	enrollment.Tickets[0].Status = domain.TicketReserved
	mockEnrollments.On("GetEligibilityByUserID", mock.Anything, int64(42)).Return(enrollment, ticketType, nil)

	_, err := service.ListHotels(context.Background(), 42)

	assert.ErrorIs(t, err, ErrForbidden)
	mockHotels.AssertNotCalled(t, "List", mock.Anything)
}

func TestService_ListHotels_NoEnrollment(t *testing.T) {
	mockHotels := new(MockHotelRepository)
	mockEnrollments := new(MockEnrollmentRepository)
	service := NewService(mockHotels, mockEnrollments)

	mockEnrollments.On("GetEligibilityByUserID", mock.Anything, int64(42)).
		Return(nil, nil, gorm.ErrRecordNotFound)

	_, err := service.ListHotels(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_GetHotelWithRooms_Success(t *testing.T) {
	mockHotels := new(MockHotelRepository)
	mockEnrollments := new(MockEnrollmentRepository)
	service := NewService(mockHotels, mockEnrollments)

	enrollment, ticketType := eligibleFixture()
	mockEnrollments.On("GetEligibilityByUserID", mock.Anything, int64(42)).Return(enrollment, ticketType, nil)
	mockHotels.On("GetByID", mock.Anything, int64(1)).Return(&domain.Hotel{
		ID:   1,
		Name: "Grand Conference Hotel",
		Rooms: []domain.Room{
			{ID: 10, Name: "101", Capacity: 1, HotelID: 1},
			{ID: 11, Name: "102", Capacity: 2, HotelID: 1},
		},
	}, nil)

	hotel, err := service.GetHotelWithRooms(context.Background(), 42, 1)

	assert.NoError(t, err)
	assert.Len(t, hotel.Rooms, 2)
}

func TestService_GetHotelWithRooms_UnknownHotel(t *testing.T) {
	mockHotels := new(MockHotelRepository)
	mockEnrollments := new(MockEnrollmentRepository)
	service := NewService(mockHotels, mockEnrollments)

	enrollment, ticketType := eligibleFixture()
	mockEnrollments.On("GetEligibilityByUserID", mock.Anything, int64(42)).Return(enrollment, ticketType, nil)
	mockHotels.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.GetHotelWithRooms(context.Background(), 42, 99)

	assert.ErrorIs(t, err, ErrNotFound)
}
