package notes_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quirknotes/internal/adapters/http/middleware"
	"quirknotes/internal/adapters/http/notes"
	"quirknotes/internal/domain/entities"
)

var ErrDatabaseConnection = errors.New("database connection error")

const testNoteID = "0b9c6f0e-8f4d-4a52-9c8e-3f1b2a7d5e61"

type mockNoteUseCase struct {
	mock.Mock
}

func (m *mockNoteUseCase) CreateNote(ctx context.Context, owner, title, content string) (string, error) {
	args := m.Called(ctx, owner, title, content)
	return args.String(0), args.Error(1)
}

func (m *mockNoteUseCase) GetNote(ctx context.Context, owner, noteID string) (*entities.Note, error) {
	args := m.Called(ctx, owner, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

// newApp подставляет пользователя вместо проверки токена.
func newApp(useCase *mockNoteUseCase, username string) *fiber.App {
	app := fiber.New()
	setUser := func(c fiber.Ctx) error {
		if username != "" {
			c.Locals(middleware.LocalsUsername, username)
		}
		return c.Next()
	}
	handler := notes.NewHandler(useCase)
	app.Post("/postNote", handler.CreateNote, setUser)
	app.Get("/getNote/:noteId", handler.GetNote, setUser)
	return app
}

func do(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]any) {
	t.Helper()

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp.StatusCode, decoded
}

func postNote(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/postNote", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func TestCreateNoteHandler(t *testing.T) {
	tests := []struct {
		name           string
		username       string
		body           string
		setup          func(m *mockNoteUseCase)
		expectedStatus int
		expectedKey    string
		expectedValue  string
	}{
		{
			name:     "created",
			username: "alice",
			body:     `{"title":"groceries","content":"milk"}`,
			setup: func(m *mockNoteUseCase) {
				m.On("CreateNote", mock.Anything, "alice", "groceries", "milk").Return(testNoteID, nil).Once()
			},
			expectedStatus: fiber.StatusOK,
			expectedKey:    "insertedId",
			expectedValue:  testNoteID,
		},
		{
			name:           "missing content",
			username:       "alice",
			body:           `{"title":"groceries"}`,
			setup:          func(*mockNoteUseCase) {},
			expectedStatus: fiber.StatusBadRequest,
			expectedKey:    "error",
			expectedValue:  notes.MsgNoteFieldsMissing,
		},
		{
			name:           "empty body",
			username:       "alice",
			body:           "",
			setup:          func(*mockNoteUseCase) {},
			expectedStatus: fiber.StatusBadRequest,
			expectedKey:    "error",
			expectedValue:  notes.MsgNoteFieldsMissing,
		},
		{
			name:           "malformed body",
			username:       "alice",
			body:           `nope`,
			setup:          func(*mockNoteUseCase) {},
			expectedStatus: fiber.StatusBadRequest,
			expectedKey:    "error",
			expectedValue:  "invalid request body",
		},
		{
			name:           "no acting user",
			body:           `{"title":"groceries","content":"milk"}`,
			setup:          func(*mockNoteUseCase) {},
			expectedStatus: fiber.StatusUnauthorized,
			expectedKey:    "error",
			expectedValue:  "Unauthorized.",
		},
		{
			name:     "store failure",
			username: "alice",
			body:     `{"title":"groceries","content":"milk"}`,
			setup: func(m *mockNoteUseCase) {
				m.On("CreateNote", mock.Anything, "alice", "groceries", "milk").Return("", ErrDatabaseConnection).Once()
			},
			expectedStatus: fiber.StatusInternalServerError,
			expectedKey:    "error",
			expectedValue:  "Internal server error.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := new(mockNoteUseCase)
			tt.setup(useCase)

			status, body := do(t, newApp(useCase, tt.username), postNote(tt.body))

			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedValue, body[tt.expectedKey])
			useCase.AssertExpectations(t)
		})
	}
}

func TestGetNoteHandler(t *testing.T) {
	note := &entities.Note{
		ID:        testNoteID,
		Owner:     "alice",
		Title:     "groceries",
		Content:   "milk",
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name           string
		noteID         string
		setup          func(m *mockNoteUseCase)
		expectedStatus int
		expectedError  string
	}{
		{
			name:   "found",
			noteID: testNoteID,
			setup: func(m *mockNoteUseCase) {
				m.On("GetNote", mock.Anything, "alice", testNoteID).Return(note, nil).Once()
			},
			expectedStatus: fiber.StatusOK,
		},
		{
			name:   "invalid id",
			noteID: "not-an-id",
			setup: func(m *mockNoteUseCase) {
				m.On("GetNote", mock.Anything, "alice", "not-an-id").
					Return(nil, fmt.Errorf("validating note id: %w", entities.ErrInvalidNoteID)).Once()
			},
			expectedStatus: fiber.StatusBadRequest,
			expectedError:  notes.MsgInvalidNoteID,
		},
		{
			name:   "not found",
			noteID: testNoteID,
			setup: func(m *mockNoteUseCase) {
				m.On("GetNote", mock.Anything, "alice", testNoteID).Return(nil, entities.ErrNoteNotFound).Once()
			},
			expectedStatus: fiber.StatusNotFound,
			expectedError:  notes.MsgNoteNotFound,
		},
		{
			name:   "store failure",
			noteID: testNoteID,
			setup: func(m *mockNoteUseCase) {
				m.On("GetNote", mock.Anything, "alice", testNoteID).Return(nil, ErrDatabaseConnection).Once()
			},
			expectedStatus: fiber.StatusInternalServerError,
			expectedError:  "Internal server error.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := new(mockNoteUseCase)
			tt.setup(useCase)

			req := httptest.NewRequest(http.MethodGet, "/getNote/"+tt.noteID, nil)
			status, body := do(t, newApp(useCase, "alice"), req)

			assert.Equal(t, tt.expectedStatus, status)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
			} else {
				response, ok := body["response"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, testNoteID, response["id"])
				assert.Equal(t, "groceries", response["title"])
				assert.Equal(t, "milk", response["content"])
				assert.Equal(t, "alice", response["username"])
			}
			useCase.AssertExpectations(t)
		})
	}
}
