package model

import "time"

// EventStatus 活動狀態
type EventStatus string

const (
	EventStatusActive     EventStatus = "active"
	EventStatusTerminated EventStatus = "terminated"
)

// TerminationGrace 活動開始超過此時間後，在列表讀取時會被標記為 terminated
const TerminationGrace = 3 * time.Minute

type Category struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type Event struct {
	ID          int         `json:"id" db:"id"`
	CategoryID  int         `json:"category_id" db:"category_id"`
	Title       string      `json:"title" db:"title"`
	Description *string     `json:"description,omitempty" db:"description"`
	EventDate   time.Time   `json:"event_date" db:"event_date"`
	Location    string      `json:"location" db:"location"`
	ImageURL    *string     `json:"image_url,omitempty" db:"image_url"`
	Status      EventStatus `json:"status" db:"status"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
}

// EventWithTickets 列表用，附帶票種與已售出張數
type EventWithTickets struct {
	Event
	CategoryName string    `json:"category_name"`
	TicketsSold  int       `json:"tickets_sold"`
	Tickets      []*Ticket `json:"tickets"`
}

// ExpiryCutoff 活動時間早於此時刻即視為已結束
func ExpiryCutoff(now time.Time) time.Time {
	return now.Add(-TerminationGrace)
}
