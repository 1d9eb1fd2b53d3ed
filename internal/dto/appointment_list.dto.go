package dto

import "time"

type AppointmentListDTO struct {
	ID        uint      `json:"id"`
	OwnerName string    `json:"owner_name"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	CreatedAt time.Time `json:"created_at"`
}

// ScheduleBoardDTO splits a listing into the two tabs the UI renders:
// upcoming (dated today or later) and past.
type ScheduleBoardDTO struct {
	Future []AppointmentListDTO `json:"future"`
	Past   []AppointmentListDTO `json:"past"`
}
