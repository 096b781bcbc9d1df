package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/domain"
)

// In-memory fakes for the outbound ports.

type fakePropertyStorage struct {
	properties map[uuid.UUID]*domain.Property
	details    map[uuid.UUID]*domain.PropertyDetails

	findResult *domain.PaginatedResult
	findErr    error
	lastFilter domain.PropertyFilter

	created       *domain.Property
	createdPhotos []domain.PropertyPhoto
	updated       *domain.Property
	updatedPhotos []domain.PropertyPhoto
	deleted       []uuid.UUID

	recordedViews []uuid.UUID
	recordViewErr error
}

func newFakePropertyStorage() *fakePropertyStorage {
	return &fakePropertyStorage{
		properties: make(map[uuid.UUID]*domain.Property),
		details:    make(map[uuid.UUID]*domain.PropertyDetails),
	}
}

func (f *fakePropertyStorage) FindWithFilters(ctx context.Context, filter domain.PropertyFilter) (*domain.PaginatedResult, error) {
	f.lastFilter = filter
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.findResult != nil {
		return f.findResult, nil
	}
	return &domain.PaginatedResult{Properties: []domain.PropertyCard{}}, nil
}

func (f *fakePropertyStorage) GetByID(ctx context.Context, propertyID uuid.UUID) (*domain.Property, error) {
	property, ok := f.properties[propertyID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return property, nil
}

func (f *fakePropertyStorage) GetDetails(ctx context.Context, propertyID uuid.UUID) (*domain.PropertyDetails, error) {
	details, ok := f.details[propertyID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return details, nil
}

func (f *fakePropertyStorage) Create(ctx context.Context, property *domain.Property, photos []domain.PropertyPhoto) error {
	f.created = property
	f.createdPhotos = photos
	f.properties[property.ID] = property
	return nil
}

func (f *fakePropertyStorage) Update(ctx context.Context, property *domain.Property, photos []domain.PropertyPhoto) error {
	f.updated = property
	f.updatedPhotos = photos
	f.properties[property.ID] = property
	return nil
}

func (f *fakePropertyStorage) Delete(ctx context.Context, propertyID uuid.UUID) error {
	f.deleted = append(f.deleted, propertyID)
	delete(f.properties, propertyID)
	return nil
}

func (f *fakePropertyStorage) RecordView(ctx context.Context, propertyID uuid.UUID, viewerID *uuid.UUID) error {
	if f.recordViewErr != nil {
		return f.recordViewErr
	}
	f.recordedViews = append(f.recordedViews, propertyID)
	return nil
}

type fakeUserRepo struct {
	usersByEmail map[string]*domain.User
	usersByID    map[uuid.UUID]*domain.User
	findErr      error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		usersByEmail: make(map[string]*domain.User),
		usersByID:    make(map[uuid.UUID]*domain.User),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	f.usersByEmail[user.Email] = user
	f.usersByID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.usersByEmail[email], nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, ok := f.usersByID[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

type fakeTokenService struct {
	token string
}

func (f *fakeTokenService) GenerateToken(ctx context.Context, user *domain.User, ttl time.Duration) (string, error) {
	if f.token != "" {
		return f.token, nil
	}
	return "token-for-" + user.Email, nil
}

func (f *fakeTokenService) ValidateToken(ctx context.Context, token string) (*domain.Claims, error) {
	return nil, domain.ErrTokenInvalid
}

type fakeInquiryRepo struct {
	inquiries map[uuid.UUID]*domain.Inquiry
	created   []*domain.Inquiry

	statusUpdates map[uuid.UUID]string
}

func newFakeInquiryRepo() *fakeInquiryRepo {
	return &fakeInquiryRepo{
		inquiries:     make(map[uuid.UUID]*domain.Inquiry),
		statusUpdates: make(map[uuid.UUID]string),
	}
}

func (f *fakeInquiryRepo) Create(ctx context.Context, inquiry *domain.Inquiry) error {
	f.created = append(f.created, inquiry)
	f.inquiries[inquiry.ID] = inquiry
	return nil
}

func (f *fakeInquiryRepo) GetByID(ctx context.Context, inquiryID uuid.UUID) (*domain.Inquiry, error) {
	inquiry, ok := f.inquiries[inquiryID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return inquiry, nil
}

func (f *fakeInquiryRepo) ListSent(ctx context.Context, senderID uuid.UUID, limit, offset int) (*domain.PaginatedInquiries, error) {
	return &domain.PaginatedInquiries{}, nil
}

func (f *fakeInquiryRepo) ListReceived(ctx context.Context, recipientID uuid.UUID, limit, offset int) (*domain.PaginatedInquiries, error) {
	return &domain.PaginatedInquiries{}, nil
}

func (f *fakeInquiryRepo) UpdateStatus(ctx context.Context, inquiryID uuid.UUID, status string) error {
	f.statusUpdates[inquiryID] = status
	return nil
}

type fakeNotificationRepo struct {
	created []*domain.Notification

	markedRead    []uuid.UUID
	markedAllRead []uuid.UUID
	createErr     error
}

func (f *fakeNotificationRepo) Create(ctx context.Context, notification *domain.Notification) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, notification)
	return nil
}

func (f *fakeNotificationRepo) ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) (*domain.PaginatedNotifications, error) {
	return &domain.PaginatedNotifications{}, nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	f.markedRead = append(f.markedRead, notificationID)
	return nil
}

func (f *fakeNotificationRepo) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	f.markedAllRead = append(f.markedAllRead, userID)
	return nil
}

type fakeFavoriteRepo struct {
	favorites map[uuid.UUID]map[uuid.UUID]bool
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: make(map[uuid.UUID]map[uuid.UUID]bool)}
}

func (f *fakeFavoriteRepo) Add(ctx context.Context, userID, propertyID uuid.UUID) error {
	if f.favorites[userID] == nil {
		f.favorites[userID] = make(map[uuid.UUID]bool)
	}
	f.favorites[userID][propertyID] = true
	return nil
}

func (f *fakeFavoriteRepo) Remove(ctx context.Context, userID, propertyID uuid.UUID) error {
	delete(f.favorites[userID], propertyID)
	return nil
}

func (f *fakeFavoriteRepo) ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) (*domain.PaginatedResult, error) {
	return &domain.PaginatedResult{TotalCount: len(f.favorites[userID])}, nil
}

func (f *fakeFavoriteRepo) ListIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(f.favorites[userID]))
	for id := range f.favorites[userID] {
		ids = append(ids, id)
	}
	return ids, nil
}

type fakeDashboardRepo struct {
	buyerStats  *domain.BuyerStats
	sellerStats *domain.SellerStats

	buyerCalls  int
	sellerCalls int
}

func (f *fakeDashboardRepo) BuyerStats(ctx context.Context, userID uuid.UUID) (*domain.BuyerStats, error) {
	f.buyerCalls++
	if f.buyerStats != nil {
		return f.buyerStats, nil
	}
	return &domain.BuyerStats{}, nil
}

func (f *fakeDashboardRepo) SellerStats(ctx context.Context, userID uuid.UUID) (*domain.SellerStats, error) {
	f.sellerCalls++
	if f.sellerStats != nil {
		return f.sellerStats, nil
	}
	return &domain.SellerStats{}, nil
}

type fakeEventPublisher struct {
	published  []publishedEvent
	publishErr error
}

type publishedEvent struct {
	routingKey string
	payload    interface{}
}

func (f *fakeEventPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, publishedEvent{routingKey: routingKey, payload: payload})
	return nil
}
