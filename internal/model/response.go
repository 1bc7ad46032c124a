package model

type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// UploadResponse is returned by the upload endpoint with the stored
// path a client can reference from a record's photo_paths.
type UploadResponse struct {
	Path string `json:"path"`
}

// DocumentResponse carries a rendered PDF hex-encoded inside the JSON
// envelope, plus the filename the client should suggest when saving.
type DocumentResponse struct {
	Content  string `json:"content"`
	Filename string `json:"filename"`
}
