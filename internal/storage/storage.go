// Package storage содержит реализации персистентного хранилища документа бэкофиса.
package storage

import (
	"sync"

	"github.com/ayms/backoffice-system/internal/model"
)

// Backend описывает контракт персистентности: документ и запись сессии
// сохраняются целиком при каждом обращении. Отсутствующее значение
// возвращается как nil без ошибки.
type Backend interface {
	Load() (*model.Document, error)
	Save(doc *model.Document) error
	LoadSession() (*model.User, error)
	SaveSession(u *model.User) error
	ClearSession() error
	Close() error
}

// MemoryBackend хранит документ и сессию в памяти процесса.
// Используется в тестах вместо BadgerBackend.
type MemoryBackend struct {
	mu      sync.Mutex
	doc     []byte
	session []byte
}

// NewMemoryBackend создаёт пустое хранилище в памяти.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

// Load возвращает сохранённый документ или nil, если его нет.
func (m *MemoryBackend) Load() (*model.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return decodeDocument(m.doc)
}

// Save сохраняет сериализованный документ целиком.
func (m *MemoryBackend) Save(doc *model.Document) error {
	data, err := encodeValue(doc)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doc = data
	return nil
}

// LoadSession возвращает запись текущего пользователя или nil.
func (m *MemoryBackend) LoadSession() (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return decodeSession(m.session)
}

// SaveSession сохраняет запись текущего пользователя.
func (m *MemoryBackend) SaveSession(u *model.User) error {
	data, err := encodeValue(u)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = data
	return nil
}

// ClearSession удаляет запись текущего пользователя.
func (m *MemoryBackend) ClearSession() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
	return nil
}

// Close освобождает ресурсы хранилища.
func (m *MemoryBackend) Close() error {
	return nil
}
