package models

import "time"

// ShowEventType 定義影集變動事件的類型
type ShowEventType string

const (
	ShowCreated ShowEventType = "show_created"
	ShowUpdated ShowEventType = "show_updated"
	ShowDeleted ShowEventType = "show_deleted"
)

// ShowEvent 代表推送給 feed 訂閱者的一筆變動
type ShowEvent struct {
	Type      ShowEventType `json:"type"`
	Show      Show          `json:"show"`
	Timestamp time.Time     `json:"timestamp"`
}

// NewShowEvent 建立一個新的影集事件
func NewShowEvent(eventType ShowEventType, show Show) ShowEvent {
	return ShowEvent{
		Type:      eventType,
		Show:      show,
		Timestamp: time.Now(),
	}
}
