// Package filetest provides an in-memory FileService for service tests.
package filetest

import (
	"context"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/dpkp-bogor/presensi-backend-go/internal/service/file"
)

type Fake struct {
	mu      sync.Mutex
	Uploads []string
}

func NewFake() *Fake { return &Fake{} }

var _ file.FileService = (*Fake)(nil)

func (f *Fake) record(path string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Uploads = append(f.Uploads, path)
	return path
}

func (f *Fake) UploadAttendancePhoto(_ context.Context, userID string, date string, _ io.Reader, _ string, clockType string) (string, error) {
	return f.record(filepath.Join("attendance", date, userID+"-"+clockType+".jpg")), nil
}

func (f *Fake) UploadLeaveAttachment(_ context.Context, userID string, _ io.Reader, filename string) (string, error) {
	return f.record(filepath.Join("leave", userID, filename)), nil
}

func (f *Fake) DeleteFile(context.Context, string) error { return nil }

func (f *Fake) GetFileURL(_ context.Context, path string, _ time.Duration) (string, error) {
	return path, nil
}
