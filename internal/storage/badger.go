package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/ayms/backoffice-system/internal/model"
)

// Ключи хранилища повторяют раскладку исходного документа: весь снимок
// под одним ключом, запись сессии под отдельным.
const (
	documentKey = "backofficeData"
	sessionKey  = "currentUser"
)

// BadgerOptions конфигурирует встроенную базу Badger.
type BadgerOptions struct {
	// Dir — каталог файлов базы данных.
	Dir string

	// InMemory создаёт базу в памяти (для тестов).
	InMemory bool

	// SyncWrites включает синхронную запись на диск. Контракт хранилища —
	// «сохранено до возврата из мутации», поэтому по умолчанию включено.
	SyncWrites bool
}

// DefaultBadgerOptions возвращает настройки для указанного каталога данных.
func DefaultBadgerOptions(dir string) BadgerOptions {
	return BadgerOptions{
		Dir:        dir,
		SyncWrites: true,
	}
}

// BadgerBackend реализует Backend поверх встроенной базы Badger.
type BadgerBackend struct {
	db *badger.DB
}

// NewBadgerBackend открывает базу данных с указанными настройками.
func NewBadgerBackend(opts BadgerOptions) (*BadgerBackend, error) {
	badgerOpts := badger.DefaultOptions(opts.Dir).
		WithSyncWrites(opts.SyncWrites).
		WithLogger(nil)

	if opts.InMemory {
		badgerOpts = badgerOpts.WithInMemory(true).WithDir("").WithValueDir("")
	}

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	return &BadgerBackend{db: db}, nil
}

// Load возвращает сохранённый документ или nil, если хранилище пусто.
func (b *BadgerBackend) Load() (*model.Document, error) {
	data, err := b.get(documentKey)
	if err != nil {
		return nil, err
	}
	return decodeDocument(data)
}

// Save сохраняет документ целиком под ключом documentKey.
func (b *BadgerBackend) Save(doc *model.Document) error {
	data, err := encodeValue(doc)
	if err != nil {
		return err
	}
	return b.set(documentKey, data)
}

// LoadSession возвращает запись текущего пользователя или nil.
func (b *BadgerBackend) LoadSession() (*model.User, error) {
	data, err := b.get(sessionKey)
	if err != nil {
		return nil, err
	}
	return decodeSession(data)
}

// SaveSession сохраняет запись текущего пользователя.
func (b *BadgerBackend) SaveSession(u *model.User) error {
	data, err := encodeValue(u)
	if err != nil {
		return err
	}
	return b.set(sessionKey, data)
}

// ClearSession удаляет запись текущего пользователя.
func (b *BadgerBackend) ClearSession() error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(sessionKey))
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", sessionKey, err)
	}
	return nil
}

// Close закрывает базу данных.
func (b *BadgerBackend) Close() error {
	return b.db.Close()
}

func (b *BadgerBackend) get(key string) ([]byte, error) {
	var data []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return data, nil
}

func (b *BadgerBackend) set(key string, data []byte) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func encodeValue(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode value: %w", err)
	}
	return data, nil
}

func decodeDocument(data []byte) (*model.Document, error) {
	if data == nil {
		return nil, nil
	}
	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &doc, nil
}

func decodeSession(data []byte) (*model.User, error) {
	if data == nil {
		return nil, nil
	}
	var u model.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &u, nil
}
