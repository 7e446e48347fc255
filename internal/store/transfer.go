package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ayms/backoffice-system/internal/model"
)

// ErrMalformedDocument возвращается, когда импортируемые данные не являются
// документом бэкофиса. Текущее состояние при этом не изменяется.
var ErrMalformedDocument = errors.New("malformed backoffice document")

// Export записывает полный документ в w как JSON с отступом в два пробела.
func (s *Store) Export(w io.Writer) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.doc); err != nil {
		return fmt.Errorf("export document: %w", err)
	}
	return nil
}

// ExportFilename возвращает имя файла экспорта с текущей датой.
func (s *Store) ExportFilename() string {
	return "backoffice-data-" + dateStamp() + ".json"
}

// Import заменяет документ целиком содержимым r. Данные сначала полностью
// разбираются и проверяются на наличие коллекций users и products; только
// затем документ подменяется и сохраняется. Частично прочитанный или
// некорректный импорт не изменяет состояние.
func (s *Store) Import(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read import: %w", err)
	}

	var shape map[string]json.RawMessage
	if err := json.Unmarshal(data, &shape); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if _, ok := shape["users"]; !ok {
		return fmt.Errorf("%w: missing users collection", ErrMalformedDocument)
	}
	if _, ok := shape["products"]; !ok {
		return fmt.Errorf("%w: missing products collection", ErrMalformedDocument)
	}

	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = &doc
	return s.persist()
}
