package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/sms-temp/internal/domain"
	"github.com/bnema/sms-temp/internal/ports"
)

const (
	DefaultKey      = "sms_temp_state_v3"
	stateDirMode    = 0o700
	stateFileMode   = 0o600
	tempFilePattern = ".state-*.json.tmp"
)

// Store keeps the session snapshot in <root>/<key>.json.
type Store struct {
	path string
	mu   sync.RWMutex
}

var _ ports.SessionStore = (*Store)(nil)

func NewStore(root, key string) (*Store, error) {
	path, err := pathForKey(root, key)
	if err != nil {
		return nil, err
	}

	return &Store{path: path}, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Load(ctx context.Context) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.DefaultSession(), err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultSession(), nil
		}
		return domain.DefaultSession(), fmt.Errorf("read session file: %w: %w", domain.ErrStorageCorrupt, err)
	}

	session, err := decode(data)
	if err != nil {
		return domain.DefaultSession(), fmt.Errorf("decode session file: %w: %w", domain.ErrStorageCorrupt, err)
	}

	return session, nil
}

func (s *Store) Save(ctx context.Context, session domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encode(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), stateDirMode); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp session file: %w", err)
	}

	if err := tempFile.Chmod(stateFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp session file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp session file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}

	cleanup = false

	return nil
}

func decode(data []byte) (domain.Session, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return domain.Session{}, errors.New("snapshot is not a JSON object")
	}

	var session domain.Session
	if err := json.Unmarshal(trimmed, &session); err != nil {
		return domain.Session{}, err
	}
	if session.Messages == nil {
		session.Messages = []domain.Message{}
	}

	return session, nil
}

func encode(session domain.Session) ([]byte, error) {
	if session.Messages == nil {
		session.Messages = []domain.Message{}
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(data, '\n'), nil
}

func pathForKey(root, key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return "", errors.New("state key is empty")
	}
	if strings.ContainsAny(trimmed, `/\`) || trimmed == "." || trimmed == ".." {
		return "", fmt.Errorf("invalid state key %q", key)
	}

	if strings.TrimSpace(root) == "" {
		return "", errors.New("state directory is empty")
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve state directory: %w", err)
	}

	return filepath.Join(filepath.Clean(absRoot), trimmed+".json"), nil
}
