// file: internals/features/downloads/model/download_model_test.go
package model

import "testing"

func TestDownloadBeforeSaveInfersFileType(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{"pdf", "documents/annual-report-2080.pdf", "pdf"},
		{"uppercase extension", "forms/MEMBERSHIP.DOCX", "docx"},
		{"nested dots", "archive/backup.2080.tar.gz", "gz"},
		{"no extension", "documents/readme", ""},
		{"trailing dot", "documents/odd.", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := &DownloadModel{DownloadFileURL: tc.url}
			if err := m.BeforeSave(nil); err != nil {
				t.Fatalf("BeforeSave: %v", err)
			}
			if m.DownloadFileType != tc.want {
				t.Fatalf("file type = %q, want %q", m.DownloadFileType, tc.want)
			}
		})
	}
}

func TestDownloadBeforeSaveKeepsExplicitType(t *testing.T) {
	m := &DownloadModel{
		DownloadFileURL:  "documents/report.pdf",
		DownloadFileType: "report",
	}
	if err := m.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave: %v", err)
	}
	if m.DownloadFileType != "report" {
		t.Fatalf("explicit file type overwritten: %q", m.DownloadFileType)
	}
}
