package events

import "time"

const AttendanceFileUploadedTopic = "hr.attendance.file.uploaded.v1"

type AttendanceFileUploadedEvent struct {
	EventType  string    `json:"event_type"`
	FileID     string    `json:"file_id"`
	FileName   string    `json:"file_name"`
	UploadedBy string    `json:"uploaded_by"`
	OccurredAt time.Time `json:"occurred_at"`
}
