package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"skilltracker/storage"
)

var ErrMediaDown = errors.New("media host unavailable")

// FakeMediaStore keeps uploads in memory and can be told to fail.
type FakeMediaStore struct {
	mu         sync.Mutex
	seq        int
	Objects    map[string]storage.File
	Deleted    []string
	FailUpload bool
	FailDelete bool
}

func NewFakeMediaStore() *FakeMediaStore {
	return &FakeMediaStore{Objects: map[string]storage.File{}}
}

func (f *FakeMediaStore) Upload(_ context.Context, folder string, file storage.File) (storage.StoredMedia, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailUpload {
		return storage.StoredMedia{}, ErrMediaDown
	}
	f.seq++
	id := fmt.Sprintf("test/%s/%d", folder, f.seq)
	f.Objects[id] = file
	return storage.StoredMedia{URL: "https://media.test/" + id, MediaID: id}, nil
}

func (f *FakeMediaStore) Delete(_ context.Context, mediaID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Deleted = append(f.Deleted, mediaID)
	if f.FailDelete {
		return ErrMediaDown
	}
	delete(f.Objects, mediaID)
	return nil
}

// Count returns how many objects are currently hosted.
func (f *FakeMediaStore) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Objects)
}
