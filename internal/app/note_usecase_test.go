package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quirknotes/internal/app"
	"quirknotes/internal/domain/entities"
)

var ErrCacheUnavailable = errors.New("cache unavailable")

const testNoteID = "0b9c6f0e-8f4d-4a52-9c8e-3f1b2a7d5e61"

func storedNote() *entities.Note {
	return &entities.Note{
		ID:        testNoteID,
		Owner:     testUsername,
		Title:     "groceries",
		Content:   "milk, eggs",
		CreatedAt: time.Now().UTC(),
	}
}

func TestCreateNote(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		content     string
		setupMocks  func(repo *mockNoteRepository, cache *mockNoteCache)
		expectedID  string
		expectedErr error
	}{
		{
			name:    "success warms cache",
			title:   "groceries",
			content: "milk, eggs",
			setupMocks: func(repo *mockNoteRepository, cache *mockNoteCache) {
				repo.On("Create", mock.Anything, mock.MatchedBy(func(n *entities.Note) bool {
					_, err := entities.ParseNoteID(n.ID)
					return err == nil && n.Owner == testUsername && n.Title == "groceries" && n.Content == "milk, eggs"
				})).Return(testNoteID, nil).Once()
				cache.On("Put", mock.Anything, mock.MatchedBy(func(n *entities.Note) bool {
					return n.ID == testNoteID && n.Owner == testUsername
				})).Return(nil).Once()
			},
			expectedID: testNoteID,
		},
		{
			name:    "cache failure does not fail request",
			title:   "groceries",
			content: "milk, eggs",
			setupMocks: func(repo *mockNoteRepository, cache *mockNoteCache) {
				repo.On("Create", mock.Anything, mock.Anything).Return(testNoteID, nil).Once()
				cache.On("Put", mock.Anything, mock.Anything).Return(ErrCacheUnavailable).Once()
			},
			expectedID: testNoteID,
		},
		{
			name:        "empty title",
			title:       "",
			content:     "milk, eggs",
			setupMocks:  func(*mockNoteRepository, *mockNoteCache) {},
			expectedErr: entities.ErrEmptyTitle,
		},
		{
			name:        "empty content",
			title:       "groceries",
			content:     "",
			setupMocks:  func(*mockNoteRepository, *mockNoteCache) {},
			expectedErr: entities.ErrEmptyContent,
		},
		{
			name:    "store failure",
			title:   "groceries",
			content: "milk, eggs",
			setupMocks: func(repo *mockNoteRepository, _ *mockNoteCache) {
				repo.On("Create", mock.Anything, mock.Anything).Return("", ErrDatabaseConnection).Once()
			},
			expectedErr: ErrDatabaseConnection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockNoteRepository)
			cache := new(mockNoteCache)
			tt.setupMocks(repo, cache)

			useCase := app.NewNoteUseCase(repo, cache, time.Second)

			id, err := useCase.CreateNote(context.Background(), testUsername, tt.title, tt.content)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, id)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedID, id)
			}

			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

func TestGetNote(t *testing.T) {
	tests := []struct {
		name        string
		owner       string
		noteID      string
		setupMocks  func(repo *mockNoteRepository, cache *mockNoteCache)
		expectedErr error
	}{
		{
			name:   "cache miss reads store and fills cache",
			owner:  testUsername,
			noteID: testNoteID,
			setupMocks: func(repo *mockNoteRepository, cache *mockNoteCache) {
				cache.On("Get", mock.Anything, testUsername, testNoteID).Return(nil, nil).Once()
				repo.On("GetByID", mock.Anything, testNoteID, testUsername).Return(storedNote(), nil).Once()
				cache.On("Put", mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:   "cache hit skips store",
			owner:  testUsername,
			noteID: testNoteID,
			setupMocks: func(_ *mockNoteRepository, cache *mockNoteCache) {
				cache.On("Get", mock.Anything, testUsername, testNoteID).Return(storedNote(), nil).Once()
			},
		},
		{
			name:   "cache error falls back to store",
			owner:  testUsername,
			noteID: testNoteID,
			setupMocks: func(repo *mockNoteRepository, cache *mockNoteCache) {
				cache.On("Get", mock.Anything, testUsername, testNoteID).Return(nil, ErrCacheUnavailable).Once()
				repo.On("GetByID", mock.Anything, testNoteID, testUsername).Return(storedNote(), nil).Once()
				cache.On("Put", mock.Anything, mock.Anything).Return(ErrCacheUnavailable).Once()
			},
		},
		{
			name:   "upper case id is normalized",
			owner:  testUsername,
			noteID: strings.ToUpper(testNoteID),
			setupMocks: func(repo *mockNoteRepository, cache *mockNoteCache) {
				cache.On("Get", mock.Anything, testUsername, testNoteID).Return(nil, nil).Once()
				repo.On("GetByID", mock.Anything, testNoteID, testUsername).Return(storedNote(), nil).Once()
				cache.On("Put", mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:        "malformed id never reaches store",
			owner:       testUsername,
			noteID:      "507f1f77bcf86cd799439011",
			setupMocks:  func(*mockNoteRepository, *mockNoteCache) {},
			expectedErr: entities.ErrInvalidNoteID,
		},
		{
			name:   "another owner gets not found",
			owner:  "bob",
			noteID: testNoteID,
			setupMocks: func(repo *mockNoteRepository, cache *mockNoteCache) {
				cache.On("Get", mock.Anything, "bob", testNoteID).Return(nil, nil).Once()
				repo.On("GetByID", mock.Anything, testNoteID, "bob").Return(nil, entities.ErrNoteNotFound).Once()
			},
			expectedErr: entities.ErrNoteNotFound,
		},
		{
			name:   "store failure",
			owner:  testUsername,
			noteID: testNoteID,
			setupMocks: func(repo *mockNoteRepository, cache *mockNoteCache) {
				cache.On("Get", mock.Anything, testUsername, testNoteID).Return(nil, nil).Once()
				repo.On("GetByID", mock.Anything, testNoteID, testUsername).Return(nil, ErrDatabaseConnection).Once()
			},
			expectedErr: ErrDatabaseConnection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockNoteRepository)
			cache := new(mockNoteCache)
			tt.setupMocks(repo, cache)

			useCase := app.NewNoteUseCase(repo, cache, time.Second)

			note, err := useCase.GetNote(context.Background(), tt.owner, tt.noteID)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, note)
			} else {
				require.NoError(t, err)
				assert.Equal(t, testNoteID, note.ID)
				assert.Equal(t, testUsername, note.Owner)
			}

			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}
