package blobstore

import "context"

// Store — внешний blob-коллаборатор: принимает путь к локальному
// временному файлу, возвращает стабильный URL. Удаление временного файла —
// забота вызывающего, независимо от исхода загрузки.
type Store interface {
	Upload(ctx context.Context, localPath string) (string, error)
}
