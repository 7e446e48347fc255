package store

import "github.com/ayms/backoffice-system/internal/model"

// Login проверяет учётные данные: пользователь существует, пароль совпадает
// байт в байт и статус ACTIVE. При успехе обновляет lastLogin, сохраняет
// запись сессии под отдельным ключом и возвращает пользователя; иначе nil.
// Сравнение паролей открытым текстом — контракт исходных данных.
func (s *Store) Login(username, password string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Users {
		u := &s.doc.Users[i]
		if u.Username != username {
			continue
		}
		if u.Password != password || u.Status != model.UserStatusActive {
			return nil, nil
		}

		today := dateStamp()
		u.LastLogin = &today

		session := *u
		s.current = &session
		if err := s.backend.SaveSession(&session); err != nil {
			return nil, err
		}
		if err := s.persist(); err != nil {
			return nil, err
		}
		out := session
		return &out, nil
	}
	return nil, nil
}

// Logout очищает запись текущего пользователя.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	return s.backend.ClearSession()
}

// CurrentUser возвращает запись текущего пользователя или nil. Если запись
// не закеширована, она перечитывается из хранилища сессии.
func (s *Store) CurrentUser() (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		session, err := s.backend.LoadSession()
		if err != nil {
			return nil, err
		}
		s.current = session
	}
	if s.current == nil {
		return nil, nil
	}
	out := *s.current
	return &out, nil
}

// IsAuthenticated сообщает, есть ли запись текущего пользователя.
func (s *Store) IsAuthenticated() bool {
	u, err := s.CurrentUser()
	return err == nil && u != nil
}
