package blobstore

import (
	"context"
	"path/filepath"
	"sync"
)

// FakeStore — in-memory заглушка для тестов обработчиков.
type FakeStore struct {
	mu       sync.Mutex
	Uploaded []string
	Fail     error
}

func NewFake() *FakeStore {
	return &FakeStore{}
}

func (f *FakeStore) Upload(_ context.Context, localPath string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Fail != nil {
		return "", f.Fail
	}
	f.Uploaded = append(f.Uploaded, localPath)
	return "https://blobs.test/" + filepath.Base(localPath), nil
}
