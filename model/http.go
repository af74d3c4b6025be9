package model

type ConvertResponse struct {
	Result
	Metadata *SongMetadata `json:"metadata,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
