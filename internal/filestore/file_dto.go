package filestore

type FileResponse struct {
	ID         string `json:"id"`
	FileName   string `json:"file_name"`
	UploadedBy string `json:"uploaded_by,omitempty"`
	UploadedAt string `json:"uploaded_at"`
	FileData   string `json:"filedata,omitempty"`
}
