// file: internals/features/downloads/dto/download_dto.go
package dto

import (
	"strings"

	model "bhanjyang_backend/internals/features/downloads/model"
)

/* =========================================================
   Downloads
========================================================= */

type CreateDownloadRequest struct {
	DownloadTitle       string `json:"download_title" validate:"required,max=200"`
	DownloadDescription string `json:"download_description" validate:"omitempty"`
	DownloadFileURL     string `json:"download_file_url" validate:"required"`
}

func (r *CreateDownloadRequest) ToModel() *model.DownloadModel {
	return &model.DownloadModel{
		DownloadTitle:       strings.TrimSpace(r.DownloadTitle),
		DownloadDescription: r.DownloadDescription,
		DownloadFileURL:     strings.TrimSpace(r.DownloadFileURL),
	}
}

type PatchDownloadRequest struct {
	DownloadTitle       *string `json:"download_title" validate:"omitempty,max=200"`
	DownloadDescription *string `json:"download_description" validate:"omitempty"`
	DownloadFileURL     *string `json:"download_file_url" validate:"omitempty"`
}

func (r *PatchDownloadRequest) Apply(m *model.DownloadModel) {
	if r.DownloadTitle != nil {
		m.DownloadTitle = strings.TrimSpace(*r.DownloadTitle)
	}
	if r.DownloadDescription != nil {
		m.DownloadDescription = *r.DownloadDescription
	}
	if r.DownloadFileURL != nil {
		m.DownloadFileURL = strings.TrimSpace(*r.DownloadFileURL)
		// retype from the new filename on save
		m.DownloadFileType = ""
	}
}
