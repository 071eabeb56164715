// file: internals/features/downloads/model/download_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: downloads
   ========================================================= */

type DownloadModel struct {
	DownloadID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:download_id" json:"download_id"`

	DownloadTitle       string `gorm:"type:varchar(200);not null;column:download_title" json:"download_title"`
	DownloadDescription string `gorm:"type:text;not null;default:'';column:download_description" json:"download_description"`

	// Stored as an opaque path; the file itself lives in object storage.
	DownloadFileURL  string `gorm:"type:text;not null;column:download_file_url" json:"download_file_url"`
	DownloadFileType string `gorm:"type:varchar(10);not null;default:'';column:download_file_type" json:"download_file_type"`

	DownloadUploadedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:download_uploaded_at" json:"download_uploaded_at"`
	DownloadUpdatedAt  time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:download_updated_at" json:"download_updated_at"`
}

func (DownloadModel) TableName() string { return "downloads" }

// BeforeSave infers the file type tag from the stored filename's extension
// when it was not supplied explicitly.
func (m *DownloadModel) BeforeSave(tx *gorm.DB) error {
	if m.DownloadFileType == "" && m.DownloadFileURL != "" {
		if i := strings.LastIndex(m.DownloadFileURL, "."); i >= 0 && i < len(m.DownloadFileURL)-1 {
			m.DownloadFileType = strings.ToLower(m.DownloadFileURL[i+1:])
		}
	}
	return nil
}
