package domain

import "io"

// Attachment is uploaded-file metadata attached to exactly one idea.
// The binary lives in the upload directory under Filepath.
type Attachment struct {
	Id        string `json:"id"`
	IdeaId    string `json:"idea_id"`
	Filename  string `json:"filename"`
	Filepath  string `json:"filepath"`
	Mimetype  string `json:"mimetype"`
	CreatedAt int64  `json:"created_at"`
}

// PendingFile is an uploaded file that has been received but not yet
// stored. Mimetype comes from the client and is stored verbatim.
type PendingFile struct {
	Filename string
	Mimetype string
	Size     int64
	Data     io.Reader
}
