package ports

import "context"

// ExportUploader publica un archivo exportado y devuelve su ubicación (URI).
type ExportUploader interface {
	Upload(ctx context.Context, name, contentType string, body []byte) (string, error)
}
