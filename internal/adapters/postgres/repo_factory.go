package postgres

import (
	"quirknotes/internal/ports/repositories"
)

// RepositoryFactory создает репозитории поверх общего пула соединений.
type RepositoryFactory struct {
	userRepo repositories.UserRepository
	noteRepo repositories.NoteRepository
}

// NewRepositoryFactory создает фабрику репозиториев.
func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{
		userRepo: NewUserRepository(pool),
		noteRepo: NewNoteRepository(pool),
	}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}

// NoteRepository возвращает репозиторий заметок.
func (f *RepositoryFactory) NoteRepository() repositories.NoteRepository {
	return f.noteRepo
}
