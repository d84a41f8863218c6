package service

import (
	"context"
	"strings"
	"time"

	"github.com/valoriza-app/valoriza-server/internal/domain"
	"github.com/valoriza-app/valoriza-server/internal/repository"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	users     map[string]*domain.User
	createErr error
	getErr    error
	updateErr error
	deleteErr error
	listErr   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, u := range m.users {
		if u.Email == user.Email {
			return domain.ErrUserAlreadyExists
		}
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if u, exists := m.users[id]; exists {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, exists := m.users[user.ID]; !exists {
		return domain.ErrUserNotFound
	}
	for _, u := range m.users {
		if u.ID != user.ID && u.Email == user.Email {
			return domain.ErrUserAlreadyExists
		}
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, exists := m.users[id]; !exists {
		return domain.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *MockUserRepository) List(ctx context.Context, filter repository.UserFilter) ([]*domain.User, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*domain.User
	for _, u := range m.users {
		if filter.Name != "" && !strings.Contains(u.Name, filter.Name) {
			continue
		}
		if filter.Email != "" && !strings.Contains(u.Email, filter.Email) {
			continue
		}
		result = append(result, u)
	}
	return result, nil
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.listErr != nil {
		return false, m.listErr
	}
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// MockTagRepository is a mock implementation of repository.TagRepository.
type MockTagRepository struct {
	tags      map[string]*domain.Tag
	createErr error
	getErr    error
	deleteErr error
}

func NewMockTagRepository() *MockTagRepository {
	return &MockTagRepository{
		tags: make(map[string]*domain.Tag),
	}
}

func (m *MockTagRepository) Create(ctx context.Context, tag *domain.Tag) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, t := range m.tags {
		if t.Name == tag.Name {
			return domain.ErrTagAlreadyExists
		}
	}
	m.tags[tag.ID] = tag
	return nil
}

func (m *MockTagRepository) GetByID(ctx context.Context, id string) (*domain.Tag, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if t, exists := m.tags[id]; exists {
		return t, nil
	}
	return nil, domain.ErrTagNotFound
}

func (m *MockTagRepository) Update(ctx context.Context, tag *domain.Tag) error {
	if _, exists := m.tags[tag.ID]; !exists {
		return domain.ErrTagNotFound
	}
	for _, t := range m.tags {
		if t.ID != tag.ID && t.Name == tag.Name {
			return domain.ErrTagAlreadyExists
		}
	}
	m.tags[tag.ID] = tag
	return nil
}

func (m *MockTagRepository) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, exists := m.tags[id]; !exists {
		return domain.ErrTagNotFound
	}
	delete(m.tags, id)
	return nil
}

func (m *MockTagRepository) List(ctx context.Context) ([]*domain.Tag, error) {
	var result []*domain.Tag
	for _, t := range m.tags {
		result = append(result, t)
	}
	return result, nil
}

func (m *MockTagRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	for _, t := range m.tags {
		if t.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// MockComplimentRepository is a mock implementation of
// repository.ComplimentRepository.
type MockComplimentRepository struct {
	compliments map[string]*domain.Compliment
	createErr   error
	getErr      error
}

func NewMockComplimentRepository() *MockComplimentRepository {
	return &MockComplimentRepository{
		compliments: make(map[string]*domain.Compliment),
	}
}

func (m *MockComplimentRepository) Create(ctx context.Context, c *domain.Compliment) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.compliments[c.ID] = c
	return nil
}

func (m *MockComplimentRepository) GetByID(ctx context.Context, id string) (*domain.Compliment, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if c, exists := m.compliments[id]; exists {
		return c, nil
	}
	return nil, domain.ErrComplimentNotFound
}

func (m *MockComplimentRepository) GetByIDAndSender(ctx context.Context, id, senderID string) (*domain.Compliment, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if c, exists := m.compliments[id]; exists && c.UserSender == senderID {
		return c, nil
	}
	return nil, domain.ErrComplimentNotFound
}

func (m *MockComplimentRepository) ListBySender(ctx context.Context, userID string) ([]*domain.Compliment, error) {
	var result []*domain.Compliment
	for _, c := range m.compliments {
		if c.UserSender == userID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *MockComplimentRepository) ListByReceiver(ctx context.Context, userID string) ([]*domain.Compliment, error) {
	var result []*domain.Compliment
	for _, c := range m.compliments {
		if c.UserReceiver == userID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *MockComplimentRepository) UpdateMessage(ctx context.Context, id, message string) error {
	if c, exists := m.compliments[id]; exists {
		c.Message = message
		return nil
	}
	return domain.ErrComplimentNotFound
}

func (m *MockComplimentRepository) Delete(ctx context.Context, id string) error {
	if _, exists := m.compliments[id]; !exists {
		return domain.ErrComplimentNotFound
	}
	delete(m.compliments, id)
	return nil
}

// MockCache is a mock implementation of repository.Cache.
type MockCache struct {
	entries map[string][]byte
	gets    int
	sets    int
	deletes int
}

func NewMockCache() *MockCache {
	return &MockCache{
		entries: make(map[string][]byte),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.gets++
	if v, exists := m.entries[key]; exists {
		return v, nil
	}
	return nil, repository.ErrCacheMiss
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.sets++
	m.entries[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	m.deletes++
	delete(m.entries, key)
	return nil
}

func (m *MockCache) Exists(ctx context.Context, key string) (bool, error) {
	_, exists := m.entries[key]
	return exists, nil
}
